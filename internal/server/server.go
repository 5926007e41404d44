package server

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"SignalScout/internal/analyzer"
	"SignalScout/internal/model"
	"SignalScout/internal/recorder"
)

// SetupRoutes builds the HTTP router.
func SetupRoutes(a *analyzer.Analyzer, rec recorder.Recorder) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/analyze/:ticker", handleAnalyze(a, rec))
	r.GET("/history/:ticker", handleHistory(rec))

	return r
}

func handleAnalyze(a *analyzer.Analyzer, rec recorder.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		ticker := c.Param("ticker")

		result, err := a.Analyze(ticker)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		if err := rec.RecordAnalysis(result); err != nil {
			log.Printf("[WARN] record analysis for %s: %v", ticker, err)
		}
		c.JSON(http.StatusOK, result)
	}
}

func handleHistory(rec recorder.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		ticker := c.Param("ticker")

		limit := 20
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
				return
			}
			limit = n
		}

		entries, err := rec.RecentAnalyses(ticker, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if entries == nil {
			entries = []recorder.StoredAnalysis{}
		}
		c.JSON(http.StatusOK, gin.H{"ticker": ticker, "history": entries})
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrNoData):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInsufficientHistory), errors.Is(err, model.ErrMalformedBar):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
