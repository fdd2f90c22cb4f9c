package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shabrin335/MARKET-MIND-GENAI/internal/usecase"
)

// AnalysisHandler handles sentiment analysis HTTP requests
type AnalysisHandler struct {
	analysisUC usecase.AnalysisUsecase
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisUC usecase.AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{analysisUC: analysisUC}
}

// Analyze handles POST /api/v1/analysis
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var input usecase.AnalyzeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "please enter some text to analyze")
		return
	}

	output, err := h.analysisUC.Analyze(c.Request.Context(), &input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}
