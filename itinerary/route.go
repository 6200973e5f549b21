package itinerary

import (
	"regexp"
	"strings"
)

var (
	routeLineRe = regexp.MustCompile(`^[-\s\p{Zs}]*旅行路线[：:]\s*(.*)$`)
	routeSepRe  = regexp.MustCompile(`\s*(?:->|→)\s*`)
)

// ParseRoute 取出最後一行 "旅行路线：A->B->C" 的各站。沒有路線時回傳空 slice。
func ParseRoute(text string) []string {
	stops := []string{}
	lines := strings.Split(text, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		m := routeLineRe.FindStringSubmatch(strings.TrimSpace(lines[i]))
		if m == nil {
			continue
		}
		for _, stop := range routeSepRe.Split(m[1], -1) {
			stop = strings.TrimSpace(stop)
			if isPlaceName(stop) {
				stops = append(stops, stop)
			}
		}
		break
	}
	return stops
}
