package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/api/metrics"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/ports"
)

// ChatHandler serves the simulated chat assistant.
type ChatHandler struct {
	chat ports.Chat
}

func NewChatHandler(chat ports.Chat) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type chatRequest struct {
	Message string `json:"message" validate:"required"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Send handles POST /v1/chat. The reply arrives after the simulated typing
// delay; an abandoned request cancels the wait.
//
// @Summary      Ask the simulated assistant
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "Message"
// @Success      200   {object}  chatResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/chat [post]
func (h *ChatHandler) Send(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	reply, err := h.chat.Reply(c.Request().Context(), req.Message)
	if err != nil {
		return err
	}

	metrics.ChatRepliesTotal.Inc()
	return c.JSON(http.StatusOK, chatResponse{Reply: reply})
}
