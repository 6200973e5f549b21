package itinerary

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Day 一天的行程。Places 依第一次出現的順序排列，不重複。
type Day struct {
	Day    int      `json:"day" bson:"day"`
	Places []string `json:"places" bson:"places"`
}

// Itinerary 依原文順序排列的多天行程。
type Itinerary []Day

// PlaceCount 回傳所有天數的景點總數。
func (it Itinerary) PlaceCount() int {
	n := 0
	for _, d := range it {
		n += len(d.Places)
	}
	return n
}

// Places 回傳整份行程去重後的景點，依出現順序。
func (it Itinerary) Places() []string {
	var acc placeSet
	for _, d := range it {
		for _, p := range d.Places {
			acc.add(p)
		}
	}
	return acc.list()
}

var (
	dayMarkerRe = regexp.MustCompile(`^[-\s\p{Zs}]*第(\d+)天[：:]?`)
	timeSlotRe  = regexp.MustCompile(`^[-\s\p{Zs}]*(上午|中午|下午|晚上)[：:]?(.*)`)
)

// Parser 可以換掉地名表的解析器。零值不可用，請用 New。
type Parser struct {
	gazetteer  []string
	extractors []Extractor
}

// Option 設定 Parser。
type Option func(*Parser)

// WithGazetteer 以 names 取代內建地名表。
func WithGazetteer(names []string) Option {
	return func(p *Parser) {
		p.gazetteer = append([]string(nil), names...)
	}
}

// WithExtraGazetteer 在內建地名表之後加上 names。
func WithExtraGazetteer(names []string) Option {
	return func(p *Parser) {
		p.gazetteer = append(p.gazetteer, names...)
	}
}

// New 建立 Parser，預設使用內建地名表。
func New(opts ...Option) *Parser {
	p := &Parser{gazetteer: DefaultGazetteer()}
	for _, opt := range opts {
		opt(p)
	}
	p.extractors = []Extractor{
		gazetteerExtractor(p.gazetteer),
		extractBracketed,
		extractSingleName,
	}
	return p
}

var defaultParser = New()

// Parse 使用內建地名表解析行程文字。
func Parse(text string) Itinerary {
	return defaultParser.Parse(text)
}

// ExtractPlaces 使用內建地名表從一段描述中取出地名。
func ExtractPlaces(description string) []string {
	return defaultParser.ExtractPlaces(description)
}

// Parse 把行程文字切成逐日的景點清單。
func (p *Parser) Parse(text string) Itinerary {
	result := Itinerary{}
	if text == "" {
		return result
	}

	var (
		open    bool
		current int
		places  placeSet
	)

	flush := func() {
		if open {
			result = append(result, Day{Day: current, Places: places.list()})
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		// 第N天
		if day, ok := matchDayMarker(line); ok {
			flush()
			open = true
			current = day
			places = placeSet{}
			continue
		}

		if !open {
			continue
		}

		desc, ok := matchTimeSlot(line)
		if !ok || desc == "" {
			continue
		}
		for _, place := range p.ExtractPlaces(desc) {
			places.add(place)
		}
	}

	flush()
	return result
}

// ExtractPlaces 依序嘗試每個 Extractor，第一個有結果的為準。
func (p *Parser) ExtractPlaces(description string) []string {
	if description == "" {
		return nil
	}
	for _, extract := range p.extractors {
		if found := extract(description); len(found) > 0 {
			return found
		}
	}
	return nil
}

func matchDayMarker(line string) (int, bool) {
	m := dayMarkerRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	day, err := strconv.Atoi(m[1])
	if err != nil {
		// 只有位數過多會失敗；仍然開新的一天
		return math.MaxInt, true
	}
	return day, true
}

func matchTimeSlot(line string) (string, bool) {
	m := timeSlotRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[2]), true
}

// placeSet 保留插入順序的字串集合。
type placeSet struct {
	items []string
	seen  map[string]struct{}
}

func (s *placeSet) add(v string) bool {
	if v == "" {
		return false
	}
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[v]; ok {
		return false
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

// list 回傳副本，永遠不是 nil。
func (s *placeSet) list() []string {
	return append([]string{}, s.items...)
}
