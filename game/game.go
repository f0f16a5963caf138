package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// AchievementMinter requests an achievement token for an address when the
// player wins. Implemented by achievement.Client; nil disables the hook.
type AchievementMinter interface {
	Mint(address string) (string, error)
}

// Game wires the engine, renderer, and input handler into the ebiten loop.
// The engine instance is owned here and passed explicitly; nothing reaches
// it through package state.
type Game struct {
	cfg      Config
	engine   *Engine
	renderer *Renderer
	input    *InputHandler

	// Victory mint hook. Fired once per victory, best effort, display only.
	minter        AchievementMinter
	walletAddress string
	mintRequested bool
	mintStatus    string
	mintResult    chan string
}

// NewGame creates a game with the default wave table and a time-seeded RNG
func NewGame(cfg Config) *Game {
	table := DefaultWaveTable()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Game{
		cfg:        cfg,
		engine:     NewEngine(cfg, table, rng, time.Now()),
		renderer:   NewRenderer(cfg, table),
		input:      NewInputHandler(cfg),
		mintResult: make(chan string, 1),
	}
}

// SetMinter enables the victory mint hook for the given wallet address
func (g *Game) SetMinter(minter AchievementMinter, walletAddress string) {
	g.minter = minter
	g.walletAddress = walletAddress
}

// Update advances the simulation one tick
func (g *Game) Update() error {
	now := time.Now()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.renderer.ShowHitboxes = !g.renderer.ShowHitboxes
	}

	wasOver := g.engine.State().GameOver

	g.input.Update(g.engine, now)
	g.engine.Advance(now)

	select {
	case status := <-g.mintResult:
		g.mintStatus = status
	default:
	}

	state := g.engine.State()
	if !wasOver && state.GameOver && state.Outcome == OutcomeVictory {
		g.requestMint()
	}
	if !state.GameOver {
		// A reset happened or the game is still running
		g.mintRequested = false
		g.mintStatus = ""
	}

	return nil
}

// requestMint fires the achievement mint once per victory. Failures are
// logged and shown, never retried.
func (g *Game) requestMint() {
	if g.minter == nil || g.walletAddress == "" || g.mintRequested {
		return
	}
	g.mintRequested = true
	g.mintStatus = "minting achievement..."

	go func(minter AchievementMinter, address string, result chan<- string) {
		txHash, err := minter.Mint(address)
		if err != nil {
			log.Printf("achievement mint failed: %v", err)
			result <- "achievement mint failed"
			return
		}
		result <- "achievement minted: " + txHash
	}(g.minter, g.walletAddress, g.mintResult)
}

// MintStatus returns the display-only status of the victory mint
func (g *Game) MintStatus() string {
	return g.mintStatus
}

// Draw renders the current frame
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.engine, time.Now())
	if g.mintStatus != "" {
		g.renderer.drawMintStatus(screen, g.mintStatus)
	}
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
