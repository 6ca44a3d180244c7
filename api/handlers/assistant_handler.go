package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	assistantapp "github.com/bearisterai/bearister-api/api/services/assistant/app"
)

// AssistantHandler exposes the chat prediction proxy.
type AssistantHandler struct {
	svc assistantapp.Service
}

func NewAssistantHandler(svc assistantapp.Service) *AssistantHandler {
	return &AssistantHandler{svc: svc}
}

// Chat handles POST /api/chat.
func (h *AssistantHandler) Chat(c *gin.Context) {
	if h.svc == nil {
		respondError(c, http.StatusServiceUnavailable, "Assistant not configured")
		return
	}

	var req assistantapp.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := h.svc.Ask(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
