// Package notify announces new inquiries to the sales team.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/event"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/model"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/storage/mq"
	"github.com/tuanvumaihuynh/hvac-catalog/pkg/mqheader"
	"github.com/tuanvumaihuynh/hvac-catalog/pkg/ptr"
)

// Notifier is told about every persisted inquiry.
type Notifier interface {
	NotifyInquiryCreated(ctx context.Context, inquiry model.Inquiry) error
}

var (
	_ Notifier = (*LogNotifier)(nil)
	_ Notifier = (*KafkaNotifier)(nil)
)

// LogNotifier writes the notification to the structured log.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyInquiryCreated(ctx context.Context, inquiry model.Inquiry) error {
	n.logger.InfoContext(ctx, "new inquiry received", inquiryAttrs(inquiry)...)
	return nil
}

// KafkaNotifier publishes an inquiry created event, retrying transient
// produce failures with exponential backoff.
type KafkaNotifier struct {
	producer   mq.Producer
	maxRetries uint64
	baseDelay  time.Duration
}

func NewKafkaNotifier(producer mq.Producer, maxRetries uint64, baseDelay time.Duration) *KafkaNotifier {
	return &KafkaNotifier{
		producer:   producer,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
	}
}

func (n *KafkaNotifier) NotifyInquiryCreated(ctx context.Context, inquiry model.Inquiry) error {
	payload, err := json.Marshal(event.NewInquiryCreatedEvent(inquiry))
	if err != nil {
		return fmt.Errorf("marshal inquiry created event: %w", err)
	}

	msg := mq.ProduceMsg{
		Topic:        event.TopicInquiryCreated,
		Headers:      mqheader.Build(ctx),
		Payload:      payload,
		PartitionKey: ptr.New(strconv.FormatInt(inquiry.ID, 10)),
	}

	backoff := retry.WithMaxRetries(n.maxRetries, retry.NewExponential(n.baseDelay))
	if err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := n.producer.Produce(ctx, msg); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("publish inquiry %d: %w", inquiry.ID, err)
	}

	return nil
}

func inquiryAttrs(inquiry model.Inquiry) []any {
	attrs := []any{
		slog.Int64("inquiry_id", inquiry.ID),
		slog.String("name", inquiry.Name),
		slog.String("email", inquiry.Email),
	}
	if inquiry.Company != nil {
		attrs = append(attrs, slog.String("company", *inquiry.Company))
	}
	if inquiry.ProductID != nil {
		attrs = append(attrs, slog.String("product_id", *inquiry.ProductID))
	}
	return attrs
}
