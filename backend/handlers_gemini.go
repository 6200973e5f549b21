package main

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type generateRequest struct {
	UserID  string        `json:"user_id"`
	Title   string        `json:"title"`
	Request TravelRequest `json:"request"`
	Save    bool          `json:"save"`
}

type refineRequest struct {
	Message string `json:"message"`
}

// parseItinerary 把一段行程文字解析成逐日景點
func (s *server) parseItinerary(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := parseContent(req.Text)
	s.metrics.observeParse(result)
	c.JSON(http.StatusOK, result)
}

// generatePlan 以 SSE 串流大模型的回覆。
// 事件順序：chunk*、itinerary、plan（save 為 true 時）；失敗時送出 error。
func (s *server) generatePlan(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Request.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	prompt := buildPrompt(req.Request)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	var content strings.Builder
	err := s.gen.Stream(ctx, prompt, func(chunk string) error {
		content.WriteString(chunk)
		c.SSEvent("chunk", chunk)
		c.Writer.Flush()
		return ctx.Err()
	})
	if err != nil {
		if !errors.Is(err, ctx.Err()) {
			log.Printf("Generate error: %v", err)
		}
		s.sseError(c, err)
		return
	}

	// 串流結束後才解析完整文字
	result := parseContent(content.String())
	s.metrics.generatedPlans.Inc()
	s.metrics.observeParse(result)
	c.SSEvent("itinerary", result)
	c.Writer.Flush()

	if !req.Save {
		return
	}
	plan := newPlan(req.UserID, req.Request, req.Title, content.String())
	if err := s.store.CreatePlan(ctx, plan); err != nil {
		log.Printf("Error saving plan: %v", err)
		s.sseError(c, err)
		return
	}
	c.SSEvent("plan", plan)
	c.Writer.Flush()
}

func (s *server) sseError(c *gin.Context, err error) {
	c.SSEvent("error", gin.H{"error": err.Error()})
	c.Writer.Flush()
}

// refinePlan 以原本的需求與行程當作對話歷史，請大模型依訊息修改行程
func (s *server) refinePlan(c *gin.Context) {
	var req refineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")

	plan, err := s.store.FindPlan(ctx, id)
	if err != nil {
		s.storeError(c, err)
		return
	}

	history := []ChatPart{
		{Role: "user", Text: buildPrompt(plan.Request)},
		{Role: "model", Text: plan.Content},
	}
	reply, err := s.gen.Refine(ctx, history, req.Message)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Generator error: " + err.Error()})
		return
	}
	if strings.TrimSpace(reply) == "" {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Generator returned empty reply"})
		return
	}

	updated, err := s.store.UpdatePlan(ctx, id, PlanUpdate{Content: &reply})
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
