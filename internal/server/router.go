package server

import (
	"github.com/gin-gonic/gin"

	"github.com/timeflowhq/timeflow/internal/timeclock"
)

// NewRouter builds the API routes over the timeclock service.
func NewRouter(svc *timeclock.Service) *gin.Engine {
	r := gin.Default()

	h := NewEntryHandler(svc)

	r.GET("/healthz", Health)

	api := r.Group("/api/v1")
	{
		api.GET("/status", h.Status)
		api.POST("/entries", h.Submit)
		api.GET("/entries", h.List)
		api.PATCH("/entries/:id", h.Edit)
		api.DELETE("/entries/:id", h.Delete)
		api.GET("/totals", h.Totals)
	}

	return r
}
