package main

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var errPlanNotFound = errors.New("plan not found")

// PlanStore 旅行計畫的儲存層
type PlanStore interface {
	CreatePlan(ctx context.Context, plan *TravelPlan) error
	FindPlan(ctx context.Context, id string) (*TravelPlan, error)
	FindPlans(ctx context.Context, filter PlanFilter) ([]*TravelPlan, error)
	UpdatePlan(ctx context.Context, id string, upd PlanUpdate) (*TravelPlan, error)
	DeletePlan(ctx context.Context, id string) error
	Close(ctx context.Context) error
}

// newPlan 補上 ID、時間與解析結果
func newPlan(userID string, req TravelRequest, title, content string) *TravelPlan {
	now := time.Now()
	if title == "" {
		title = defaultTitle(req)
	}
	plan := &TravelPlan{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Request:   req,
		CreatedAt: now,
		UpdatedAt: now,
	}
	plan.applyContent(content)
	return plan
}

func defaultTitle(req TravelRequest) string {
	if d := strings.TrimSpace(req.Destination); d != "" {
		return d + "之旅"
	}
	return "旅行计划"
}

// applyUpdate 套用部分更新；內容或出發日改變時重新解析
func applyUpdate(plan *TravelPlan, upd PlanUpdate) {
	if upd.Title != nil {
		plan.Title = *upd.Title
	}
	if upd.Request != nil {
		plan.Request = *upd.Request
	}
	content := plan.Content
	if upd.Content != nil {
		content = *upd.Content
	}
	if upd.Content != nil || upd.Request != nil {
		plan.applyContent(content)
	}
	plan.UpdatedAt = time.Now()
}
