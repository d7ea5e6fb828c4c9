package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"commentsift/internal/analyzer"
	"commentsift/internal/models"
)

// defaultMinLength is the request-level fallback applied when the caller does
// not supply min_length.
const defaultMinLength = 10

type CommentReducer interface {
	Reduce(comments []string, minLength int) []string
}

type CommentAnalyzer interface {
	Analyze(ctx context.Context, comments []string, productContext string, batchSize int) (*analyzer.Result, error)
}

type AnalysisHandler struct {
	reducer  CommentReducer
	analyzer CommentAnalyzer
}

func NewAnalysisHandler(reducer CommentReducer, analyzer CommentAnalyzer) *AnalysisHandler {
	return &AnalysisHandler{
		reducer:  reducer,
		analyzer: analyzer,
	}
}

type AnalyzeCommentsRequest struct {
	Comments       []string `json:"comments"`
	MinLength      *int     `json:"min_length"`
	ProductContext string   `json:"product_context"`
	BatchSize      int      `json:"batch_size"`
}

type PruningInfo struct {
	KeptComments []string          `json:"kept_comments"`
	Stats        models.PruneStats `json:"stats"`
}

type AnalyzeCommentsResponse struct {
	Analyses      []models.CommentAnalysis `json:"analyses"`
	AnalysisStats models.AnalysisStats     `json:"analysis_stats"`
	PruningInfo   PruningInfo              `json:"pruning_info"`
}

func (h *AnalysisHandler) AnalyzeComments(c *gin.Context) {
	var req AnalyzeCommentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	minLength := defaultMinLength
	if req.MinLength != nil {
		minLength = *req.MinLength
	}

	kept := h.reducer.Reduce(req.Comments, minLength)
	slog.Info("[AnalysisHandler] Reduced comments",
		slog.String("request_id", c.GetString(requestIDKey)),
		slog.Int("total", len(req.Comments)),
		slog.Int("kept", len(kept)))

	result, err := h.analyzer.Analyze(c.Request.Context(), kept, req.ProductContext, req.BatchSize)
	if err != nil {
		slog.Error("[AnalysisHandler] Comment analysis failed",
			slog.String("request_id", c.GetString(requestIDKey)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Comment analysis failed"})
		return
	}

	c.JSON(http.StatusOK, AnalyzeCommentsResponse{
		Analyses:      result.Analyses,
		AnalysisStats: result.Stats,
		PruningInfo: PruningInfo{
			KeptComments: kept,
			Stats: models.PruneStats{
				Total: len(req.Comments),
				Kept:  len(kept),
			},
		},
	})
}

func (h *AnalysisHandler) AnalyzeVideo(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"error": "Video analysis is not implemented"})
}

func (h *AnalysisHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
