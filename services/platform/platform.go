// Package platform opens the badge hardware. The RP2 build wires the real
// buses and pins; other builds only have the chip-agnostic sensor port.
package platform

import (
	"io"

	"tinygo.org/x/drivers"

	"envbadge/services/badge"
	"envbadge/services/render"
	"envbadge/services/sensors"
)

// Board is every owned hardware handle, built once at startup.
type Board struct {
	Sensors sensors.Port
	Panel   drivers.Displayer
	Strip   io.Writer // GRBW bytes
	Button  badge.Button
	LED     badge.LED
	System  render.SystemPort
	Console io.Writer // log sink
}
