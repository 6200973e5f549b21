package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type createPlanRequest struct {
	UserID  string        `json:"user_id"`
	Title   string        `json:"title"`
	Request TravelRequest `json:"request"`
	Content string        `json:"content"`
}

func (s *server) listPlans(c *gin.Context) {
	plans, err := s.store.FindPlans(c.Request.Context(), PlanFilter{UserID: c.Query("user_id")})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (s *server) getPlan(c *gin.Context) {
	plan, err := s.store.FindPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (s *server) createPlan(c *gin.Context) {
	var req createPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	plan := newPlan(req.UserID, req.Request, req.Title, req.Content)
	if err := s.store.CreatePlan(c.Request.Context(), plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.metrics.observeParse(ParseResult{Itinerary: plan.Itinerary, Route: plan.Route})

	c.JSON(http.StatusCreated, plan)
}

// updatePlan 只更新前端有傳的欄位；content 變動時會重新解析行程
func (s *server) updatePlan(c *gin.Context) {
	var upd PlanUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if upd.Title == nil && upd.Content == nil && upd.Request == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	plan, err := s.store.UpdatePlan(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (s *server) deletePlan(c *gin.Context) {
	if err := s.store.DeletePlan(c.Request.Context(), c.Param("id")); err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted"})
}

func (s *server) storeError(c *gin.Context, err error) {
	if errors.Is(err, errPlanNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
