package orders

import (
	"fmt"
	"strconv"
	"strings"
)

// NextOrderNumber returns ORD-<year>-<nnn> one past the highest sequence
// already used in that year.
func NextOrderNumber(existing []Order, year int) string {
	prefix := fmt.Sprintf("ORD-%d-", year)
	highest := 0
	for _, o := range existing {
		rest, ok := strings.CutPrefix(o.OrderNumber, prefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, highest+1)
}
