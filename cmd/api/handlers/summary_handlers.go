package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"biorxiv-calendar/cmd/api/dto"
	"biorxiv-calendar/cmd/api/services"
)

// SummarizePaperHandler godoc
// @Summary      Summarize a paper's abstract
// @Description  One-shot AI bullet-point summary, deduplicated per DOI
// @Tags         summaries
// @Accept       json
// @Param        request  body  dto.SummarizeRequestDTO  true  "DOI and abstract text"
// @Produce      json
// @Success      200  {object}  dto.SummaryDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      409  {object}  dto.SummaryDTO
// @Router       /papers/summary [post]
func SummarizePaperHandler(svc *services.SummaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SummarizeRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "doi and abstract are required"})
			return
		}

		out, err := svc.Summarize(c.Request.Context(), req.DOI, req.Abstract)
		if err != nil {
			if errors.Is(err, services.ErrSummaryInFlight) {
				c.JSON(http.StatusConflict, out)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetSummaryHandler godoc
// @Summary      Summary state for a DOI
// @Tags         summaries
// @Param        doi  query  string  true  "Paper DOI"
// @Produce      json
// @Success      200  {object}  dto.SummaryDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /papers/summary [get]
func GetSummaryHandler(svc *services.SummaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		doi := c.Query("doi")
		if doi == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "doi is required"})
			return
		}
		c.JSON(http.StatusOK, svc.Get(doi))
	}
}

// ClearSummaryHandler godoc
// @Summary      Clear summary state for a DOI
// @Description  Drops the transient per-DOI state when the detail view closes
// @Tags         summaries
// @Param        doi  query  string  true  "Paper DOI"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /papers/summary [delete]
func ClearSummaryHandler(svc *services.SummaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		doi := c.Query("doi")
		if doi == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "doi is required"})
			return
		}
		svc.Clear(doi)
		c.JSON(http.StatusOK, gin.H{"message": "summary state cleared"})
	}
}

// ExplainJargonHandler godoc
// @Summary      Explain technical jargon
// @Description  Plain-language explanations of the most complex terms in the text
// @Tags         summaries
// @Accept       json
// @Param        request  body  dto.JargonRequestDTO  true  "Text to explain"
// @Produce      json
// @Success      200  {object}  dto.JargonDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /papers/jargon [post]
func ExplainJargonHandler(svc *services.SummaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.JargonRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
			return
		}

		out, err := svc.ExplainJargon(c.Request.Context(), req.Text)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to explain terms"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
