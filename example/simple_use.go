package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/leandrodaf/tone/internal/logger"
	"github.com/leandrodaf/tone/sdk/contracts"
	"github.com/leandrodaf/tone/sdk/tone"
)

// Mary had a little lamb. C4 is the pitch three half steps above A4.
var lamb = contracts.Score{
	{Pitch: contracts.E4, Length: contracts.Quarter},
	{Pitch: contracts.D4, Length: contracts.Quarter},
	{Pitch: contracts.C4, Length: contracts.Quarter},
	{Pitch: contracts.D4, Length: contracts.Quarter},
	{Pitch: contracts.E4, Length: contracts.Quarter},
	{Pitch: contracts.E4, Length: contracts.Quarter},
	{Pitch: contracts.E4, Length: contracts.Half},
	{Pitch: contracts.D4, Length: contracts.Quarter},
	{Pitch: contracts.D4, Length: contracts.Quarter},
	{Pitch: contracts.D4, Length: contracts.Half},
	{Pitch: contracts.E4, Length: contracts.Quarter},
	{Pitch: contracts.G4, Length: contracts.Quarter},
	{Pitch: contracts.G4, Length: contracts.Half},
}

func main() {
	log := logger.NewZapLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	player, err := tone.NewPlayer(
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.DebugLevel),
		contracts.WithWAVOutput("lamb.wav"),
	)
	if err != nil {
		log.Error("Failed to initialize player", log.Field().Error("error", err))
		return
	}

	fmt.Printf("Rendering %d notes (%s) to lamb.wav...\n", len(lamb), lamb.Duration())
	if err := player.Play(ctx, lamb); err != nil {
		log.Error("Failed to play score", log.Field().Error("error", err))
		return
	}
	fmt.Println("Done. Play it back with: tone inspect lamb.wav")
}
