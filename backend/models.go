package main

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"travelplanner/itinerary"
)

// ========== 資料模型 ==========
type TravelPlan struct {
	MongoID primitive.ObjectID `bson:"_id,omitempty" json:"-"`

	ID        string              `json:"id" bson:"id"`
	UserID    string              `json:"user_id" bson:"user_id"`
	Title     string              `json:"title" bson:"title"`
	Request   TravelRequest       `json:"request" bson:"request"`
	Content   string              `json:"content" bson:"content"`
	Itinerary itinerary.Itinerary `json:"itinerary" bson:"itinerary"`
	Route     []string            `json:"route" bson:"route"`
	Schedule  []ScheduledDay      `json:"schedule,omitempty" bson:"schedule,omitempty"`
	CreatedAt time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time           `json:"updated_at" bson:"updated_at"`
}

// TravelRequest 前端表單或語音輸入的旅行需求
type TravelRequest struct {
	Destination     string `json:"destination" bson:"destination"`
	Duration        int    `json:"duration" bson:"duration"`               // 天數
	Budget          int    `json:"budget" bson:"budget"`                   // 元
	CompanionsType  string `json:"companions_type" bson:"companions_type"` // solo / couple / group
	CompanionsCount int    `json:"companions_count" bson:"companions_count"`
	Preferences     string `json:"preferences" bson:"preferences"`
	IsVoiceInput    bool   `json:"is_voice_input" bson:"is_voice_input"`
	StartDate       string `json:"start_date,omitempty" bson:"start_date,omitempty"` // 2006-01-02
}

// ScheduledDay 解析出來的一天加上實際日期
type ScheduledDay struct {
	Day    int      `json:"day" bson:"day"`
	Date   string   `json:"date" bson:"date"`
	Places []string `json:"places" bson:"places"`
}

// PlanUpdate 部分更新，nil 代表不更新該欄位
type PlanUpdate struct {
	Title   *string        `json:"title"`
	Content *string        `json:"content"`
	Request *TravelRequest `json:"request"`
}

// PlanFilter 查詢條件
type PlanFilter struct {
	UserID string
}

// ChatPart 對話歷史的單一則訊息
type ChatPart struct {
	Role string `json:"role"` // "user" (使用者) 或 "model" (AI)
	Text string `json:"text"` // 訊息內容
}

// ParseResult /itinerary/parse 與串流結束時回傳的內容
type ParseResult struct {
	Itinerary itinerary.Itinerary `json:"itinerary"`
	Route     []string            `json:"route"`
}

func parseContent(text string) ParseResult {
	return ParseResult{
		Itinerary: itinerary.Parse(text),
		Route:     itinerary.ParseRoute(text),
	}
}

// applyContent 更新內容並重新解析行程
func (p *TravelPlan) applyContent(content string) {
	parsed := parseContent(content)
	p.Content = content
	p.Itinerary = parsed.Itinerary
	p.Route = parsed.Route
	p.Schedule = scheduleDays(p.Request.StartDate, parsed.Itinerary)
}
