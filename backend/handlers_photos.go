package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *server) photo(c *gin.Context) {
	q := c.Query("query")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query"})
		return
	}

	photo, err := s.photos.Lookup(c.Request.Context(), q)
	if err != nil {
		s.photoError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": photo})
}

// planPhotos 每個解析出來的景點各查一張圖
func (s *server) planPhotos(c *gin.Context) {
	plan, err := s.store.FindPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.storeError(c, err)
		return
	}

	photos, err := s.photos.LookupAll(c.Request.Context(), plan.Itinerary.Places())
	if err != nil {
		s.photoError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"photos": photos})
}

func (s *server) photoError(c *gin.Context, err error) {
	if errors.Is(err, errNoPhotoKey) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}
