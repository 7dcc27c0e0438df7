package api

import (
	"net/http"
	"time"

	limits "github.com/gin-contrib/size"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	timeout "github.com/vearne/gin-timeout"

	"github.com/pimcore/admin-ui-classic-bundle-sub003/usecases"
)

const maxGridRequestSize = 1024 * 1024 // 1MB

func timeoutMiddleware(duration time.Duration) gin.HandlerFunc {
	return timeout.Timeout(
		timeout.WithTimeout(duration),
		timeout.WithErrorHttpCode(http.StatusRequestTimeout),
		timeout.WithDefaultMsg("Request timeout"),
	)
}

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe(uc))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	gridHandler := NewGridHandler(uc)
	router := r.Group("/grid", timeoutMiddleware(conf.DefaultTimeout), limits.RequestSizeLimiter(maxGridRequestSize))
	router.POST("/rows", gridHandler.ListRows)
	router.POST("/export", gridHandler.ExportCsv)
}
