package itinerary

// defaultGazetteer 已知景點與餐廳名稱。
// 比對時依照此清單順序收集，所以必須是 slice 而不是 map。
var defaultGazetteer = []string{
	"老门东历史文化街区", "夫子庙秦淮河风光带", "中山陵", "明孝陵", "石象路",
	"总统府", "颐和路公馆区", "玄武湖公园", "南京博物院", "先锋书店", "1912街区",
	"鸡鸣寺", "台城城墙", "德云社", "科巷", "狮子桥美食街", "湖南路", "评事街",
	"三七八巷", "回味鸭血粉丝汤", "奇芳阁", "中山陵永丰诗舍", "南京大牌档",
	"许阿姨糕团店", "陶记正宗德州扒鸡", "项记面馆", "小潘记·鸭血粉丝汤",
	"金宏兴鸭子店", "小厨娘淮扬菜", "绿柳居", "左师傅梅花糕", "李记清真馆锅贴",
	"古南都·素菜馆", "鸡鸣汤包", "秦淮河", "紫金山", "台城", "新街口",
}

// DefaultGazetteer 回傳內建地名表的副本。
func DefaultGazetteer() []string {
	return append([]string(nil), defaultGazetteer...)
}

// genericTerms 出現在【】裡代表屬性說明而不是地點，例如【免费】、【人均50】。
var genericTerms = []string{"免费", "需预约", "特供", "必吃", "推荐", "建议", "人均", "老字号"}

// nonPlaceKeywords 動作或時段用語，後面接的整個子句都不是地名。
var nonPlaceKeywords = []string{
	"办理", "入住", "休息", "自由活动", "购物", "前往", "抵达",
	"参观", "游览", "体验", "欣赏", "品尝", "早餐", "午餐", "晚餐",
	"上午", "中午", "下午", "晚上", "建议", "推荐", "必吃", "根据返程时间，可选购伴手礼",
}

// transitMarker 交通指示，不會是地名。
const transitMarker = "乘坐地铁"
