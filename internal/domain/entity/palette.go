package entity

// Fixed cosmetic color palettes, assigned round-robin at creation time.
// Names match the tag values the original app persisted.
var (
	GoalColors     = []string{"rose", "sky", "amber", "emerald", "indigo", "purple"}
	PaymentColors  = []string{"teal", "cyan", "blue", "lime", "fuchsia", "pink"}
	CardColors     = []string{"purple", "teal", "rose", "fuchsia", "indigo", "sky"}
	TimelessColors = []string{"cyan", "lime", "teal", "blue", "fuchsia", "pink"}
)

// PickColor returns the palette entry for the n-th created item.
func PickColor(palette []string, n int) string {
	if len(palette) == 0 {
		return ""
	}
	if n < 0 {
		n = -n
	}
	return palette[n%len(palette)]
}
