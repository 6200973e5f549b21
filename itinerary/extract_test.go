package itinerary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"travelplanner/itinerary"
)

func TestExtractPlaces(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		desc string
		want []string
	}{
		{"empty", "", nil},
		{"gazetteer keeps list order", "游览台城城墙", []string{"台城城墙", "台城"}},
		{"gazetteer collects overlapping names", "夫子庙秦淮河风光带夜游", []string{"夫子庙秦淮河风光带", "秦淮河"}},
		{"gazetteer wins over brackets", "【秦淮河】游船", []string{"秦淮河"}},
		{"brackets skip generic and duplicates", "【免费】【夫子庙】【 】【夫子庙】", []string{"夫子庙"}},
		{"brackets keep appearance order", "【乌衣巷】与【朱雀桥】", []string{"乌衣巷", "朱雀桥"}},
		{"generic only brackets fall through", "【必吃】【人均80】", nil},
		{"heuristic drops full width parentheses", "市政广场（免费开放）", []string{"市政广场"}},
		{"heuristic drops ascii parentheses and period", "鼓楼公园(需门票)。", []string{"鼓楼公园"}},
		{"heuristic drops trailing clause", "老街，自由活动", []string{"老街"}},
		{"heuristic treats ascii period like full width", "湖心岛.自由活动", []string{"湖心岛"}},
		{"heuristic rejects transit", "乘坐地铁前往鼓楼", nil},
		{"heuristic rejects short", "休息", nil},
		{"heuristic drops leading keyword clause", "前往市政广场，自由活动", nil},
		{"heuristic strips souvenir phrase", "根据返程时间，可选购伴手礼", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, itinerary.ExtractPlaces(tt.desc))
		})
	}
}

func TestParser_Gazetteer(t *testing.T) {
	t.Parallel()

	t.Run("custom gazetteer replaces default", func(t *testing.T) {
		t.Parallel()

		p := itinerary.New(itinerary.WithGazetteer([]string{"市政广场", "钟楼"}))
		assert.Equal(t, []string{"市政广场"}, p.ExtractPlaces("前往市政广场，自由活动"))
		assert.Equal(t, []string{"老城墙"}, p.ExtractPlaces("参观【老城墙】（需预约）"))
		// 內建的名稱不再比對
		assert.Equal(t, []string{"夜游中山陵"}, p.ExtractPlaces("夜游中山陵"))
	})

	t.Run("extra gazetteer appends to default", func(t *testing.T) {
		t.Parallel()

		p := itinerary.New(itinerary.WithExtraGazetteer([]string{"市政广场", "中山陵", "、、"}))
		assert.Equal(t, []string{"中山陵", "市政广场"}, p.ExtractPlaces("中山陵与市政广场"))

		got := p.Parse("第3天：\n上午：前往市政广场，自由活动")
		assert.Equal(t, itinerary.Itinerary{{Day: 3, Places: []string{"市政广场"}}}, got)
	})

	t.Run("default gazetteer is a copy", func(t *testing.T) {
		t.Parallel()

		names := itinerary.DefaultGazetteer()
		names[0] = "changed"
		assert.NotEqual(t, "changed", itinerary.DefaultGazetteer()[0])
	})
}
