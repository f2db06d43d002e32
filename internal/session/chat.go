package session

import (
	"time"

	"github.com/vaishnav/edutech_backend_v1/internal/models"
)

func greeting(now time.Time) []models.ChatMessage {
	return []models.ChatMessage{
		{ID: 1, Sender: models.SenderBot, Message: "Hello! I'm Vaishnav, your AI assistant. How can I help you today?", Timestamp: now.Add(-5 * time.Second)},
		{ID: 2, Sender: models.SenderUser, Message: "Can you help me with my assignments?", Timestamp: now.Add(-3 * time.Second)},
		{ID: 3, Sender: models.SenderBot, Message: "Of course! I can help you track your assignments, set reminders, and provide study tips. What specific assignment would you like help with?", Timestamp: now.Add(-1 * time.Second)},
	}
}

// Messages returns a copy of the chat log.
func (s *Session) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ChatMessage{}, s.chat...)
}

// AppendMessage adds to the append-only log; ids are len+1.
func (s *Session) AppendMessage(sender models.Sender, text string, at time.Time) models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := models.ChatMessage{ID: len(s.chat) + 1, Sender: sender, Message: text, Timestamp: at}
	s.chat = append(s.chat, msg)
	return msg
}
