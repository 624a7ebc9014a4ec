package api

import (
	"net/http"
	"time"

	limits "github.com/gin-contrib/size"
	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"

	"github.com/veriflow/kyc-backend/usecases"
)

// Uploads reference files by path, so request bodies stay small.
const DefaultMaxBodySize = 1 * 1024 * 1024 // 1MB

func timeoutMiddleware(duration time.Duration) gin.HandlerFunc {
	return timeout.New(
		timeout.WithTimeout(duration),
		timeout.WithHandler(func(c *gin.Context) {
			c.Next()
		}),
		timeout.WithResponse(func(c *gin.Context) {
			c.String(http.StatusRequestTimeout, "timeout")
		}),
	)
}

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe)

	router := r.Group("/kyc", limits.RequestSizeLimiter(conf.MaxBodySize))

	router.POST("/cases", handleCreateCase(uc))
	router.GET("/cases", handleListCases(uc))
	router.GET("/cases/:case_id", handleGetCase(uc))
	router.POST("/cases/:case_id/analysis", handleStartAnalysis(uc))

	// The synchronous path computes the risk assessment inline, so it gets an
	// explicit request timeout.
	router.POST("/process", timeoutMiddleware(conf.RequestTimeout), handleProcessKycRequest(uc))
}
