package http

import "github.com/gin-gonic/gin"

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/comparisons", append(append([]gin.HandlerFunc{}, h.guard...), h.CreateComparison)...)
	rg.GET("/comparisons", h.ListComparisons)
	rg.GET("/comparisons/:id", h.GetComparison)
	rg.DELETE("/comparisons/:id", h.DeleteComparison)
	rg.GET("/comparisons/:id/summary", h.GetSummary)
	rg.GET("/summaries", h.ListSummaries)
}
