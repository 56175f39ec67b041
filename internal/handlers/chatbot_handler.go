package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-chatbot/internal/chatbot"
	"github.com/BruksfildServices01/barber-chatbot/internal/httperr"
	"github.com/BruksfildServices01/barber-chatbot/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

type Replier interface {
	Reply(ctx context.Context, prior *chatbot.SessionState, message string) (chatbot.Turn, error)
	Normalize(prior *chatbot.SessionState) chatbot.SessionState
}

type ChatbotHandler struct {
	engine Replier
	log    *zap.Logger
}

func NewChatbotHandler(engine Replier, log *zap.Logger) *ChatbotHandler {
	return &ChatbotHandler{
		engine: engine,
		log:    log,
	}
}

// ======================================================
// DTOs
// ======================================================

type ChatbotRequest struct {
	Message      string                `json:"message"`
	SessionState *chatbot.SessionState `json:"sessionState"`
}

type ChatbotErrorResponse struct {
	Error        string               `json:"error"`
	Message      string               `json:"message"`
	SessionState chatbot.SessionState `json:"sessionState"`
}

// ======================================================
// TURN
// ======================================================

func (h *ChatbotHandler) Turn(c *gin.Context) {
	var req ChatbotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos. / Invalid data.")
		return
	}

	turn, err := h.engine.Reply(c.Request.Context(), req.SessionState, req.Message)
	if err != nil {
		prior := h.engine.Normalize(req.SessionState)

		h.log.Error("chatbot turn failed",
			zap.String("session_id", prior.SessionID),
			zap.String("step", string(prior.Step)),
			zap.Error(err),
		)

		c.JSON(http.StatusInternalServerError, ChatbotErrorResponse{
			Error:        "internal_error",
			Message:      chatbot.InternalErrorMessage,
			SessionState: prior,
		})
		return
	}

	httpresp.OK(c, turn)
}
