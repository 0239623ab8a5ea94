package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"makemodelyear/pkg/logger"
)

type ContactMessage struct {
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Publisher hands contact messages to the mailer.
type Publisher interface {
	PublishContactMessage(ctx context.Context, message interface{}) error
}

type ContactUseCase interface {
	Submit(ctx context.Context, msg ContactMessage) error
}

type contactUseCase struct {
	publisher Publisher
	logger    *logger.Logger
}

func NewContactUseCase(publisher Publisher, logger *logger.Logger) ContactUseCase {
	return &contactUseCase{publisher: publisher, logger: logger}
}

func (uc *contactUseCase) Submit(ctx context.Context, msg ContactMessage) error {
	msg.FirstName = strings.TrimSpace(msg.FirstName)
	msg.LastName = strings.TrimSpace(msg.LastName)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Phone = strings.TrimSpace(msg.Phone)
	msg.Message = strings.TrimSpace(msg.Message)

	switch {
	case msg.FirstName == "":
		return invalid("firstName", "is required")
	case msg.LastName == "":
		return invalid("lastName", "is required")
	case msg.Email == "":
		return invalid("email", "is required")
	case !validEmail(msg.Email):
		return invalid("email", "is not a valid address")
	case msg.Message == "":
		return invalid("message", "is required")
	}

	if uc.publisher == nil {
		return ErrUnavailable
	}

	msg.SubmittedAt = time.Now().UTC()
	if err := uc.publisher.PublishContactMessage(ctx, msg); err != nil {
		return fmt.Errorf("failed to queue contact message: %w", err)
	}
	uc.logger.Info("[RABBITMQ] contact message from %s queued", msg.Email)
	return nil
}

// validEmail accepts a bare address with a dotted domain.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	return at > 0 && strings.Contains(s[at+1:], ".")
}
