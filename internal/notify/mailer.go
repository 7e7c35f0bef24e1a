package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/model"
)

// LogMailer stands in for an outbound mail transport by logging the message
// it would send.
type LogMailer struct {
	logger    *slog.Logger
	recipient string
}

func NewLogMailer(logger *slog.Logger, recipient string) *LogMailer {
	return &LogMailer{
		logger:    logger,
		recipient: recipient,
	}
}

func (m *LogMailer) SendInquiry(ctx context.Context, inquiry model.Inquiry) error {
	attrs := append([]any{
		slog.String("to", m.recipient),
		slog.String("subject", Subject(inquiry)),
	}, inquiryAttrs(inquiry)...)

	m.logger.InfoContext(ctx, "inquiry mail dispatched", attrs...)
	return nil
}

// Subject is the mail subject line for inquiry.
func Subject(inquiry model.Inquiry) string {
	if inquiry.ProductID != nil {
		return fmt.Sprintf("Inquiry #%d about %s from %s", inquiry.ID, *inquiry.ProductID, inquiry.Name)
	}
	return fmt.Sprintf("Inquiry #%d from %s", inquiry.ID, inquiry.Name)
}
