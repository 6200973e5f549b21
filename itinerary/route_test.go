package itinerary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"travelplanner/itinerary"
)

func TestParseRoute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"no route", "第1天\n上午：中山陵", []string{}},
		{"empty input", "", []string{}},
		{"full plan", nanjingPlan, []string{"中山陵", "明孝陵", "总统府", "夫子庙"}},
		{"ascii colon and arrow", "旅行路线:浅草寺 → 明治神宫→清水寺", []string{"浅草寺", "明治神宫", "清水寺"}},
		{"last route line wins", "旅行路线：甲->乙\n旅行路线：丙->丁", []string{"丙", "丁"}},
		{"full width space after hyphen", "-\u3000旅行路线：中山陵->总统府", []string{"中山陵", "总统府"}},
		{"empty stops dropped", "  - 旅行路线：中山陵->->总统府-> ", []string{"中山陵", "总统府"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, itinerary.ParseRoute(tt.text))
		})
	}
}
