package badge

import (
	"time"

	"envbadge/services/ambient"
	"envbadge/services/config"
	"envbadge/types"
)

var (
	breathColor = types.RGBW{W: 127}
	cometColor  = types.RGBW{R: 255, G: 80, W: 40}
	cometAlt    = types.RGBW{G: 120, B: 255}
	pulseColor  = types.RGBW{R: 80, G: 80, B: 80, W: 80}
	sparkles    = []types.RGBW{{R: 255, G: 60}, {R: 255, G: 160}, {G: 200, B: 255}, {W: 200}}
)

func idleFor(cfg config.Config, c *ambient.Canvas, seed int64) ambient.Animation {
	switch cfg.Idle {
	case config.IdleBreathing:
		return ambient.NewBreathing(c, breathColor, 50)
	case config.IdleSparkle:
		return ambient.NewSparklePulse(c, seed, 4*time.Second, sparkles...)
	}
	return nil
}

// Comets cross the strip in about half a second.
func transitionFor(cfg config.Config, c *ambient.Canvas) ambient.Animation {
	speed := 2 * float64(cfg.Strip.Length)
	switch cfg.Transition {
	case config.TransitionComet:
		return ambient.NewComet(c, 6, speed, cometColor)
	case config.TransitionComet2:
		return ambient.NewComet(c, 6, speed, cometColor, cometAlt)
	case config.TransitionPulse:
		return ambient.NewPulse(c, pulseColor, 600*time.Millisecond)
	}
	return nil
}
