package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/vaishnav/edutech_backend_v1/internal/assistant"
	"github.com/vaishnav/edutech_backend_v1/internal/database"
	"github.com/vaishnav/edutech_backend_v1/internal/middleware"
	"github.com/vaishnav/edutech_backend_v1/internal/models"
	"github.com/vaishnav/edutech_backend_v1/internal/session"
	"github.com/vaishnav/edutech_backend_v1/internal/ws"
)

var ErrBlankMessage = errors.New("message is required")

type AssistantController struct {
	Store     *database.Store
	Assistant *assistant.Assistant
	Hub       *ws.ChatHub
	Clock     Clock
}

type messageRequest struct {
	Message string `json:"message"`
}

// Data snapshots the student data the assistant answers from.
func (ac *AssistantController) Data() assistant.Context {
	return assistant.Context{
		AttendanceStats:  ac.Store.AttendanceStats(),
		RecentAttendance: ac.Store.RecentAttendance(),
		Assignments:      ac.Store.ListAssignments(),
		Events:           ac.Store.ListEvents(),
		Profile:          ac.Store.Profile(),
	}
}

// Exchange appends the user's message, asks the assistant and appends the reply.
// If ctx ends while waiting the reply is dropped and ctx's error returned.
func (ac *AssistantController) Exchange(ctx context.Context, s *session.Session, text string) (models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ChatMessage{}, ErrBlankMessage
	}
	s.AppendMessage(models.SenderUser, text, ac.Clock.now())

	reply := ac.Assistant.Reply(ctx, text, ac.Data())
	if err := ctx.Err(); err != nil {
		return models.ChatMessage{}, err
	}
	return s.AppendMessage(models.SenderBot, reply.Text, ac.Clock.now()), nil
}

func (ac *AssistantController) Messages(c *gin.Context) {
	s := middleware.CurrentSession(c)
	msgs := s.Messages()
	c.JSON(http.StatusOK, gin.H{"data": msgs, "meta": gin.H{"total": len(msgs)}})
}

func (ac *AssistantController) Send(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s := middleware.CurrentSession(c)
	bot, err := ac.Exchange(c.Request.Context(), s, req.Message)
	if err != nil {
		if errors.Is(err, ErrBlankMessage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// client went away
		c.Status(499)
		return
	}
	ac.Hub.Notify(s.ID, bot)
	c.JSON(http.StatusCreated, bot)
}

// Socket upgrades to the chat websocket.
func (ac *AssistantController) Socket(c *gin.Context) {
	ws.ChatHandler(ac.Hub, ac.Exchange)(c)
}
