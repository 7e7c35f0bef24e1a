package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/model"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/storage/mq"
)

// Mailer delivers the sales notification for a new inquiry.
type Mailer interface {
	SendInquiry(ctx context.Context, inquiry model.Inquiry) error
}

// Service is the event service.
type Service struct {
	logger     *slog.Logger
	mqConsumer mq.Consumer
	mailer     Mailer
}

// New creates a new event service.
func New(
	logger *slog.Logger,
	mqConsumer mq.Consumer,
	mailer Mailer,
) *Service {
	return &Service{
		logger:     logger,
		mqConsumer: mqConsumer,
		mailer:     mailer,
	}
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	if err := s.mqConsumer.RegisterHandler(
		TopicInquiryCreated,
		func(ctx context.Context, topic string, payload []byte) error {
			var ev InquiryCreatedEvent
			if err := json.Unmarshal(payload, &ev); err != nil {
				return fmt.Errorf("unmarshal inquiry created event: %w", err)
			}

			if err := s.handleInquiryCreatedEvent(ctx, ev); err != nil {
				return fmt.Errorf("handle inquiry created event: %w", err)
			}

			return nil
		},
	); err != nil {
		return nil, fmt.Errorf("register inquiry created event handler: %w", err)
	}

	mqCleanup, err := s.mqConsumer.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("run mq consumer: %w", err)
	}

	cleanup := func() {
		mqCleanup()
	}

	return cleanup, nil
}
