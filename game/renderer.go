package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	backgroundColor = color.RGBA{12, 12, 24, 255}
	baseColor       = color.RGBA{80, 160, 255, 255}
	playerShotColor = color.RGBA{255, 255, 160, 255}
	enemyShotColor  = color.RGBA{255, 90, 90, 255}
	healthBarColor  = color.RGBA{60, 220, 90, 255}
	healthBackColor = color.RGBA{70, 70, 70, 255}
	hitboxColor     = color.RGBA{255, 255, 255, 90}
	bannerColor     = color.RGBA{240, 240, 240, 255}
)

// Renderer draws the engine's entities and HUD onto an ebiten image. It
// only reads from the engine; all mutation happens in Update.
type Renderer struct {
	cfg  Config
	face text.Face

	// ShowHitboxes outlines every entity's bounding box, toggled with F1
	ShowHitboxes bool

	// colors per archetype, built from the wave table
	enemyColors map[EnemyType]color.RGBA
}

// NewRenderer creates a renderer using placeholder shapes for sprites
func NewRenderer(cfg Config, table map[int][]EnemyTypeConfig) *Renderer {
	colors := make(map[EnemyType]color.RGBA)
	for _, types := range table {
		for _, tc := range types {
			colors[tc.Type] = tc.Color
		}
	}
	return &Renderer{
		cfg:         cfg,
		face:        text.NewGoXFace(basicfont.Face7x13),
		enemyColors: colors,
	}
}

// Render draws one frame
func (r *Renderer) Render(screen *ebiten.Image, engine *Engine, now time.Time) {
	screen.Fill(backgroundColor)

	base := engine.Base()
	vector.DrawFilledRect(screen,
		float32(base.X), float32(base.Y),
		float32(base.Width), float32(base.Height),
		baseColor, false)

	for _, enemy := range engine.Enemies() {
		clr, ok := r.enemyColors[enemy.Type]
		if !ok {
			clr = color.RGBA{200, 200, 200, 255}
		}
		vector.DrawFilledRect(screen,
			float32(enemy.X), float32(enemy.Y),
			float32(enemy.Width), float32(enemy.Height),
			clr, false)
	}

	for _, b := range engine.Bullets() {
		clr := playerShotColor
		if !b.FromPlayer {
			clr = enemyShotColor
		}
		vector.DrawFilledRect(screen,
			float32(b.X), float32(b.Y),
			float32(b.Width), float32(b.Height),
			clr, false)
	}

	if r.ShowHitboxes {
		r.drawHitboxes(screen, engine)
	}

	r.drawHUD(screen, engine, now)
}

func (r *Renderer) drawHitboxes(screen *ebiten.Image, engine *Engine) {
	base := engine.Base()
	vector.StrokeRect(screen,
		float32(base.X), float32(base.Y),
		float32(base.Width), float32(base.Height),
		1, hitboxColor, false)
	for _, enemy := range engine.Enemies() {
		vector.StrokeRect(screen,
			float32(enemy.X), float32(enemy.Y),
			float32(enemy.Width), float32(enemy.Height),
			1, hitboxColor, false)
	}
	for _, b := range engine.Bullets() {
		vector.StrokeRect(screen,
			float32(b.X), float32(b.Y),
			float32(b.Width), float32(b.Height),
			1, hitboxColor, false)
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, engine *Engine, now time.Time) {
	state := engine.State()

	// Health bar
	barWidth := 150.0
	frac := 0.0
	if state.MaxHealth > 0 {
		frac = float64(state.Health) / float64(state.MaxHealth)
	}
	vector.DrawFilledRect(screen, 10, 10, float32(barWidth), 12, healthBackColor, false)
	vector.DrawFilledRect(screen, 10, 10, float32(barWidth*frac), 12, healthBarColor, false)

	remaining := state.WaveDuration - now.Sub(state.WaveStart)
	if remaining < 0 {
		remaining = 0
	}
	hud := fmt.Sprintf("Score: %d  Wave: %d/3  Time: %ds", state.Score, state.Wave, int(remaining.Seconds()))
	ebitenutil.DebugPrintAt(screen, hud, 10, 28)

	if state.Paused && !state.GameOver {
		r.drawBanner(screen, "PAUSED")
	}
	if state.GameOver {
		switch state.Outcome {
		case OutcomeVictory:
			r.drawBanner(screen, "BASE DEFENDED - press R to restart")
		default:
			r.drawBanner(screen, "BASE DESTROYED - press R to restart")
		}
	}
}

func (r *Renderer) drawMintStatus(screen *ebiten.Image, msg string) {
	ebitenutil.DebugPrintAt(screen, msg, 10, r.cfg.ScreenHeight-20)
}

func (r *Renderer) drawBanner(screen *ebiten.Image, msg string) {
	w, h := text.Measure(msg, r.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(r.cfg.ScreenWidth)/2-w/2, float64(r.cfg.ScreenHeight)/2-h/2)
	op.ColorScale.ScaleWithColor(bannerColor)
	text.Draw(screen, msg, r.face, op)
}
