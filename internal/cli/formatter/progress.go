package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a completion percentage as a bar like [████░░░░]  45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct int, width int) string {
	bar := RenderCompactBar(float64(pct)/100, width, false)
	return fmt.Sprintf("[%s] %3d%%", bar, clampPct(pct))
}

// RenderCompactBar renders only the blocks, without brackets or percentage.
func RenderCompactBar(frac float64, width int, dim bool) string {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	if width < 2 {
		width = 2
	}
	filled := int(frac * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	if dim {
		return StyleDim.Render(bar)
	}
	style := StyleGreen
	if frac < 0.33 {
		style = StyleRed
	} else if frac < 0.66 {
		style = StyleYellow
	}
	return style.Render(bar)
}

func clampPct(pct int) int {
	return max(0, min(100, pct))
}
