//go:build !(rp2040 || rp2350)

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"envbadge/services/oled"
	"envbadge/types"
)

var (
	styleFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00AA22"))

	styleTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF41")).
			Bold(true)

	stylePanel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8FD3FF"))
)

// panelView packs two framebuffer rows into each text line using half
// blocks.
func panelView(b *oled.Buffer) string {
	w, h := b.Size()
	var sb strings.Builder
	for y := int16(0); y < h; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := int16(0); x < w; x++ {
			top, bottom := b.At(x, y), b.At(x, y+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}

// stripView draws one block per cell in the cell's flattened colour, before
// global brightness.
func stripView(cells []types.RGBW) string {
	var sb strings.Builder
	for _, c := range cells {
		rgb := c.RGBA()
		hex := fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■"))
	}
	return sb.String()
}

func frameView(title string, panel *oled.Buffer, cells []types.RGBW) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		styleTitle.Render(title),
		stylePanel.Render(panelView(panel)),
		stripView(cells),
	)
	return styleFrame.Render(body)
}
