package citemark

import (
	"fmt"
	"strconv"
)

// FormatRange renders an inclusive numeric range with a prefix, using an
// en dash between the bounds: FormatRange("p.", "pp.", 7, 16) yields
// "pp. 7–16" and FormatRange("p.", "pp.", 7, 7) yields "p. 7".
// prefixSingle is used when the range covers one value, prefixMulti
// otherwise; empty prefixes produce no leading space.
func FormatRange(prefixSingle, prefixMulti string, start, end int) string {
	if start == end {
		if prefixSingle == "" {
			return strconv.Itoa(start)
		}
		return fmt.Sprintf("%s %d", prefixSingle, start)
	}
	if prefixMulti == "" {
		return fmt.Sprintf("%d–%d", start, end)
	}
	return fmt.Sprintf("%s %d–%d", prefixMulti, start, end)
}
