package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"basedefender/achievement"
	"basedefender/game"
)

func main() {
	relayURL := flag.String("relay-url", "", "achievement relay URL (or set RELAY_URL env var)")
	wallet := flag.String("wallet", "", "wallet address for the victory achievement (or set WALLET_ADDRESS env var)")
	flag.Parse()

	url := *relayURL
	if url == "" {
		url = os.Getenv("RELAY_URL")
	}
	address := *wallet
	if address == "" {
		address = os.Getenv("WALLET_ADDRESS")
	}

	config := game.DefaultConfig()
	g := game.NewGame(config)

	if url != "" && address != "" {
		g.SetMinter(achievement.NewClient(url), address)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Base Defender")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
