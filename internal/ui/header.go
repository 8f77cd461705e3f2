package ui

import (
	"strings"
	"time"
)

// renderHeader draws the two-line banner: date left, library name
// centered, time right, with the catalog name centered beneath.
func renderHeader(st Styles, libraryName string, width int, now time.Time) string {
	if width <= 0 {
		width = 80
	}

	left := strings.ToUpper(now.Format("02 Jan 2006"))
	center := strings.ToUpper(libraryName)
	right := strings.ToLower(now.Format("3:04pm"))

	var line1 string
	if len(left)+len(center)+len(right)+2 <= width {
		leftPad := (width-len(center))/2 - len(left)
		if leftPad < 1 {
			leftPad = 1
		}
		rightPad := width - len(left) - leftPad - len(center) - len(right)
		if rightPad < 1 {
			rightPad = 1
		}
		line1 = left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
	} else {
		line1 = left + " " + center + " " + right
	}

	line2 := centerText("Dial Pac", width)

	return st.Header.Width(width).Render(line1 + "\n" + line2)
}

// renderStatusBar draws the bottom shortcut bar.
func renderStatusBar(st Styles, shortcuts string, width int) string {
	return st.StatusBar.Width(width).Render(shortcuts)
}

func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
