//go:build !(rp2040 || rp2350)

// Command badge-sim runs the badge loop on a host against simulated sensors
// and prints the panel and strip as the firmware would drive them.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"tinygo.org/x/tinyfont/proggy"

	"envbadge/services/badge"
	"envbadge/services/config"
	"envbadge/services/oled"
	"envbadge/services/render"
	"envbadge/services/strip"
	"envbadge/x/timex"
)

var (
	flagVariant    string
	flagTicks      int
	flagSeed       int64
	flagPressEvery time.Duration
	flagLux        float64
	flagFailRate   float64
	flagPrintEvery int
	flagLogLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "badge-sim",
		Short: "Run the environment badge loop against simulated sensors",
		Long: `badge-sim drives the badge run loop on a fake clock. Sensor values drift
along slow curves, the button is pressed on a fixed schedule, and the OLED
framebuffer and pixel strip are printed to the terminal.

Variants: ` + strings.Join(config.Variants(), ", "),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&flagVariant, "variant", config.Default(), "Board variant to simulate")
	rootCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Loop iterations to run")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 1, "Seed for sensor noise and sparkle")
	rootCmd.Flags().DurationVar(&flagPressEvery, "press-every", 8*time.Second, "Simulated button press period (0 disables)")
	rootCmd.Flags().Float64Var(&flagLux, "lux", -1, "Fixed ambient light in lux (negative follows a day curve)")
	rootCmd.Flags().Float64Var(&flagFailRate, "fail-rate", 0, "Probability that any single sensor read fails")
	rootCmd.Flags().IntVar(&flagPrintEvery, "print-every", 50, "Print a frame every N ticks")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "debug, info, warn or error")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level, err := parseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})).With("app", "badge-sim")

	cfg, err := config.Load(flagVariant)
	if err != nil {
		return err
	}
	if flagPrintEvery < 1 {
		flagPrintEvery = 1
	}

	clk := timex.NewFake(time.Time{})
	pages := cfg.Layout()
	panel := oled.NewBuffer(cfg.Display.Width, cfg.Display.Height)
	surface := oled.New(panel, &proggy.TinySZ8pt7b, render.Fields(pages))
	px := strip.New(nil, cfg.Strip.Length, cfg.Strip.Brightness)
	port := newSimPort(clk, flagSeed, flagLux, flagFailRate)

	b := badge.New(badge.Deps{
		Config:  cfg,
		Clock:   clk,
		Sensors: port,
		Display: surface,
		Strip:   px,
		Button:  newScriptedButton(clk, flagPressEvery, 3*cfg.Loop),
		System:  simSystem{port: port},
		Log:     log,
		Seed:    flagSeed,
	})

	out := cmd.OutOrStdout()
	start := clk.Now()
	b.Boot()
	for i := 0; i < flagTicks; i++ {
		b.Tick()
		if i%flagPrintEvery == 0 {
			title := fmt.Sprintf("%s  t=%s  page %d", cfg.Name, clk.Now().Sub(start).Truncate(time.Millisecond), b.Active())
			if b.Animator().Night() {
				title += "  night"
			}
			fmt.Fprintln(out, frameView(title, panel, px.Cells()))
		}
		clk.Sleep(cfg.Loop)
	}
	log.Info("done", "ticks", flagTicks, "elapsed", clk.Now().Sub(start), "frames", panel.Frames)
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q (allowed: debug, info, warn, error)", s)
	}
}
