//go:build badge_bars

package config

const defaultVariant = "bars"
