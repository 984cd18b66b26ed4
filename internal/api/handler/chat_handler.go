package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medibook/appointment-portal/internal/core/domain"
	"github.com/medibook/appointment-portal/internal/core/ports"
)

// ChatHandler exposes the support chat. It is open to everyone.
type ChatHandler struct {
	chat ports.ChatService
}

func NewChatHandler(chat ports.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type chatMessageRequest struct {
	Text string `json:"text"`
}

type transcriptResponse struct {
	Messages []domain.ChatMessage `json:"messages"`
	// Accepted is false when a blank message was ignored.
	Accepted bool `json:"accepted"`
}

// Transcript returns the conversation so far, greeting first.
//
// @Summary      Chat transcript
// @Tags         chat
// @Produce      json
// @Success      200  {object}  transcriptResponse
// @Router       /chat [get]
func (h *ChatHandler) Transcript(c echo.Context) error {
	return c.JSON(http.StatusOK, transcriptResponse{Messages: h.chat.Transcript(), Accepted: true})
}

// Send relays a message to the hospital assistant. Backend failures are
// answered by the assistant's fallback line, never by an error status.
//
// @Summary      Send chat message
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      chatMessageRequest  true  "Message"
// @Success      200   {object}  transcriptResponse
// @Failure      400   {object}  errorBody
// @Router       /chat/messages [post]
func (h *ChatHandler) Send(c echo.Context) error {
	var req chatMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	_, accepted := h.chat.Send(c.Request().Context(), req.Text)
	return c.JSON(http.StatusOK, transcriptResponse{Messages: h.chat.Transcript(), Accepted: accepted})
}

// Reset starts a new conversation.
//
// @Summary      Reset chat
// @Tags         chat
// @Produce      json
// @Success      200  {object}  transcriptResponse
// @Router       /chat [delete]
func (h *ChatHandler) Reset(c echo.Context) error {
	if err := h.chat.Reset(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transcriptResponse{Messages: h.chat.Transcript(), Accepted: true})
}
