package services

import "protrain-backend-go/internal/models"

type NoticeInput struct {
	Title    string          `json:"title"`
	Content  string          `json:"content"`
	ImageURL string          `json:"imageUrl"`
	Priority models.Priority `json:"priority"`
}

// AddNotice prepends a notice. Priority from the input is ignored; new
// notices are always normal.
func (s Service) AddNotice(c models.Collections, in NoticeInput) (models.Collections, models.Notice) {
	notice := models.Notice{
		ID:        s.newID(),
		Title:     in.Title,
		Content:   in.Content,
		ImageURL:  in.ImageURL,
		Timestamp: s.now(),
		Priority:  models.PriorityNormal,
	}
	c.Notices = prependCopy(c.Notices, notice)
	return c, notice
}

func (s Service) SendContactMessage(c models.Collections, name, message string) (models.Collections, models.ContactMessage) {
	msg := models.ContactMessage{
		ID:        s.newID(),
		Name:      name,
		Message:   message,
		Timestamp: s.now(),
	}
	c.Messages = prependCopy(c.Messages, msg)
	return c, msg
}

func (s Service) DeleteContactMessage(c models.Collections, msgID string) models.Collections {
	found := false
	kept := make([]models.ContactMessage, 0, len(c.Messages))
	for _, m := range c.Messages {
		if m.ID == msgID {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return c
	}
	c.Messages = kept
	return c
}
