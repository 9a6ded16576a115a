package gradient

import "envbadge/types"

// Compiled-in palettes for the pixel bars.
var (
	// Cold blue through comfortable green to hot red.
	Thermal = Must(
		Stop{0, types.RGBW{B: 255}},
		Stop{0.45, types.RGBW{G: 255}},
		Stop{0.7, types.RGBW{R: 255, G: 200}},
		Stop{1, types.RGBW{R: 255}},
	)
	// Dry amber through green to wet blue.
	Moisture = Must(
		Stop{0, types.RGBW{R: 255, G: 120}},
		Stop{0.5, types.RGBW{G: 255}},
		Stop{1, types.RGBW{B: 255, W: 40}},
	)
	// Clean air green, yellow, red, then violet at evacuation levels.
	AirQuality = Must(
		Stop{0, types.RGBW{G: 255}},
		Stop{0.5, types.RGBW{R: 255, G: 220}},
		Stop{0.8, types.RGBW{R: 255}},
		Stop{1, types.RGBW{R: 160, B: 255}},
	)
)
