package academic

import (
	"strconv"
	"strings"
)

// NextID returns the next identifier for a collection: the prefix followed
// by the smallest integer strictly greater than every numeric suffix
// currently in use. This deliberately scans the live collection rather than
// keeping a counter, so after the highest-numbered entity is deleted its
// number is handed out again.
func NextID(existing []string, prefix string) string {
	maxNum := 0
	for _, id := range existing {
		suffix, ok := strings.CutPrefix(id, prefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		if n > maxNum {
			maxNum = n
		}
	}
	return prefix + strconv.Itoa(maxNum+1)
}
