// Package textfmt renders numbers and durations for chat replies.
package textfmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration renders d as whole hours, minutes and seconds, omitting zero
// components, e.g. "1 hours, 1 minutes, 1 seconds". Anything under one
// second renders as the empty string.
func Duration(d time.Duration) string {
	seconds := int64(d / time.Second)

	parts := make([]string, 0, 3)
	if h := seconds / 3600; h >= 1 {
		parts = append(parts, fmt.Sprintf("%d hours", h))
		seconds %= 3600
	}
	if m := seconds / 60; m >= 1 {
		parts = append(parts, fmt.Sprintf("%d minutes", m))
		seconds %= 60
	}
	if seconds >= 1 {
		parts = append(parts, fmt.Sprintf("%d seconds", seconds))
	}

	return strings.Join(parts, ", ")
}

// Ordinal renders n with its English ordinal suffix: 1st, 2nd, 3rd, 4th,
// 11th, 12th, 13th, 21st.
func Ordinal(n int) string {
	s := strconv.Itoa(n)

	abs := n
	if abs < 0 {
		abs = -abs
	}

	switch abs % 100 {
	case 11, 12, 13:
		return s + "th"
	}

	switch abs % 10 {
	case 1:
		return s + "st"
	case 2:
		return s + "nd"
	case 3:
		return s + "rd"
	default:
		return s + "th"
	}
}

// Clock renders d as a playback position, "m:ss" or "h:mm:ss".
func Clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	h, m, s := total/3600, (total/60)%60, total%60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
