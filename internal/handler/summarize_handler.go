package handler

import (
	"net/http"

	"TranscriptSummarizer_Backend/internal/models"

	"github.com/gin-gonic/gin"
)

// Summarize forwards the transcription to the generative language service
// and returns its reply. Runs behind the token gate. Upstream failures are
// logged in full but answered with a fixed message.
func (h *Handler) Summarize(c *gin.Context) {
	var req models.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		msg, _ := firstValidationMessage(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	result, err := h.summarizer.Summarize(req.Transcription)
	if err != nil {
		h.log.Error().
			Err(err).
			Str("request_id", c.GetString("requestID")).
			Msg("summarize: upstream failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate summary."})
		return
	}

	c.JSON(http.StatusOK, result)
}
