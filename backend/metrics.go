package main

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// metrics 每個 server 自己的 registry，測試時不會重複註冊
type metrics struct {
	registry       *prometheus.Registry
	requests       *prometheus.SummaryVec
	generatedPlans prometheus.Counter
	parsedPlaces   prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Name: "travelplanner_http_request_seconds",
			Help: "Latency of API requests",
		}, []string{"method", "route", "status"}),
		generatedPlans: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "travelplanner_generated_plans_total",
			Help: "Number of plans streamed from the generator",
		}),
		parsedPlaces: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "travelplanner_itinerary_places",
			Help:    "Places extracted per parsed itinerary",
			Buckets: prometheus.LinearBuckets(0, 5, 8),
		}),
	}
	m.registry.MustRegister(m.requests, m.generatedPlans, m.parsedPlaces)
	return m
}

func (m *metrics) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqStart := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(reqStart).Seconds())
	}
}

func (m *metrics) observeParse(r ParseResult) {
	m.parsedPlaces.Observe(float64(r.Itinerary.PlaceCount()))
}
