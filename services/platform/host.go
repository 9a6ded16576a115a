//go:build !(rp2040 || rp2350)

package platform

import (
	"envbadge/errcode"
	"envbadge/services/config"
)

// Open is only meaningful on the badge itself.
func Open(config.Config) (*Board, error) {
	return nil, &errcode.E{C: errcode.Unsupported, Op: "platform.Open", Msg: "no badge hardware on this target"}
}
