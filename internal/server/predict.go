package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/Veraticus/verdict/internal/common"
	"github.com/Veraticus/verdict/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

// MessageTooLarge is returned when a request body exceeds the limit.
const MessageTooLarge = "Text zu lang."

// Predict classifies the posted text. Unparseable bodies count as empty text.
func (h *Handler) Predict(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, http.StatusRequestEntityTooLarge, MessageTooLarge)
			return
		}
		respondError(c, http.StatusBadRequest, common.MessageEmptyInput)
		return
	}

	text := ""
	if gjson.ValidBytes(body) {
		if field := gjson.GetBytes(body, "text"); field.Type == gjson.String {
			text = field.Str
		}
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		respondError(c, http.StatusBadRequest, common.MessageEmptyInput)
		return
	}

	probs, err := h.scorer.Score(c.Request.Context(), cleaned)
	if err != nil {
		common.LogError(err, "Scoring failed", common.Fields{"request_id": c.GetHeader("X-Request-ID")})
		respondError(c, http.StatusInternalServerError, common.MessageUnknownError)
		return
	}
	if len(probs) == 0 {
		respondError(c, http.StatusInternalServerError, common.MessageUnknownError)
		return
	}

	resp := Decide(probs, h.config.MinConfidence, h.config.Emoji)
	resp.TextClean = cleaned

	c.JSON(http.StatusOK, resp)
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, model.ErrorResponse{Error: message})
}
