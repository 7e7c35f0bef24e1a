package event

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/model"
)

const TopicInquiryCreated = "inquiry.created"

type InquiryCreatedEvent struct {
	InquiryID int64     `json:"inquiry_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   *string   `json:"company,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Message   string    `json:"message"`
	ProductID *string   `json:"product_id,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func NewInquiryCreatedEvent(inquiry model.Inquiry) InquiryCreatedEvent {
	return InquiryCreatedEvent{
		InquiryID: inquiry.ID,
		Name:      inquiry.Name,
		Email:     inquiry.Email,
		Company:   inquiry.Company,
		Phone:     inquiry.Phone,
		Message:   inquiry.Message,
		ProductID: inquiry.ProductID,
		Status:    string(inquiry.Status),
		CreatedAt: inquiry.CreatedAt,
	}
}

// Inquiry converts the event back into the domain record.
func (e InquiryCreatedEvent) Inquiry() model.Inquiry {
	return model.Inquiry{
		ID:        e.InquiryID,
		Name:      e.Name,
		Email:     e.Email,
		Company:   e.Company,
		Phone:     e.Phone,
		Message:   e.Message,
		ProductID: e.ProductID,
		Status:    model.InquiryStatus(e.Status),
		CreatedAt: e.CreatedAt,
	}
}

func (s *Service) handleInquiryCreatedEvent(ctx context.Context, ev InquiryCreatedEvent) error {
	s.logger.InfoContext(ctx, "handling inquiry created event", slog.Int64("inquiry_id", ev.InquiryID))

	if err := s.mailer.SendInquiry(ctx, ev.Inquiry()); err != nil {
		return fmt.Errorf("send inquiry %d: %w", ev.InquiryID, err)
	}

	return nil
}
