package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type server struct {
	cfg     Config
	store   PlanStore
	gen     PlanGenerator
	photos  *photoService
	metrics *metrics
}

// ========== 主程式 ==========
func main() {
	cfg := loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(cfg)
	if err != nil {
		log.Fatal(err)
	}

	gen, closeGen := openGenerator(ctx, cfg)
	defer closeGen()

	s := &server{
		cfg:     cfg,
		store:   store,
		gen:     gen,
		photos:  newPhotoService(cfg),
		metrics: newMetrics(),
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s.router(),
	}

	go func() {
		log.Printf("Server running on http://localhost:%s", cfg.Port)
		log.Printf("API: http://localhost:%s/api", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Printf("Error closing store: %v", err)
	}
}

func openStore(cfg Config) (PlanStore, error) {
	switch cfg.StoreDriver {
	case "mongo":
		return newMongoStore(cfg.MongoURI, cfg.MongoDB)
	case "file":
		return newFileStore(cfg.DataFile)
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

// openGenerator 沒有 GEMINI_API_KEY 時只用範例資料
func openGenerator(ctx context.Context, cfg Config) (PlanGenerator, func()) {
	mock := &mockGenerator{delay: cfg.MockDelay}
	if cfg.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY not set, using mock plans")
		return mock, func() {}
	}

	gemini, err := newGeminiGenerator(ctx, cfg)
	if err != nil {
		log.Printf("Gemini client error, using mock plans: %v", err)
		return mock, func() {}
	}
	return &fallbackGenerator{primary: gemini, fallback: mock}, func() {
		if err := gemini.Close(); err != nil {
			log.Printf("Error closing Gemini client: %v", err)
		}
	}
}

func (s *server) router() *gin.Engine {
	r := gin.Default()
	r.Use(s.metrics.middleware())

	// CORS 設定 - 允許前端跨域請求
	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
				"time":   time.Now(),
			})
		})

		// 行程解析與產生
		api.POST("/itinerary/parse", s.parseItinerary)
		api.POST("/generate", s.generatePlan)

		// 旅行計畫
		api.GET("/plans", s.listPlans)
		api.GET("/plans/:id", s.getPlan)
		api.POST("/plans", s.createPlan)
		api.PATCH("/plans/:id", s.updatePlan)
		api.DELETE("/plans/:id", s.deletePlan)
		api.POST("/plans/:id/refine", s.refinePlan)

		// 圖片
		api.GET("/photos", s.photo)
		api.GET("/plans/:id/photos", s.planPhotos)
	}

	return r
}
