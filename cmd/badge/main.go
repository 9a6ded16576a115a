//go:build rp2040 || rp2350

// Command badge is the firmware entry point. Build with -tags badge_bars
// for the bar-graph variant.
package main

import (
	"context"
	"log/slog"
	"time"

	"tinygo.org/x/tinyfont/proggy"

	"envbadge/services/badge"
	"envbadge/services/config"
	"envbadge/services/oled"
	"envbadge/services/platform"
	"envbadge/services/render"
	"envbadge/services/strip"
	"envbadge/x/timex"
)

func main() {
	// Allow USB CDC to enumerate before we log.
	time.Sleep(2 * time.Second)

	cfg := config.MustLoad("")
	hw, err := platform.Open(cfg)
	if err != nil {
		panic(err)
	}
	log := slog.New(slog.NewTextHandler(hw.Console, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(log)

	pages := cfg.Layout()
	surface := oled.New(hw.Panel, &proggy.TinySZ8pt7b, render.Fields(pages))
	px := strip.New(hw.Strip, cfg.Strip.Length, cfg.Strip.Brightness)

	b := badge.New(badge.Deps{
		Config:  cfg,
		Clock:   timex.System{},
		Sensors: hw.Sensors,
		Display: surface,
		Strip:   px,
		Button:  hw.Button,
		LED:     hw.LED,
		System:  hw.System,
		Log:     log,
		Seed:    time.Now().UnixNano(),
	})
	b.Boot()
	_ = b.Run(context.Background())
}
