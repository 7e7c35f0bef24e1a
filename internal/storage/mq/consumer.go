package mq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/config"
	"github.com/tuanvumaihuynh/hvac-catalog/pkg/mqheader"
)

// HandlerFunc processes one record payload. ctx carries the producer's trace
// context and correlation id.
type HandlerFunc func(ctx context.Context, topic string, payload []byte) error

type CleanupFunc func()

type Consumer interface {
	RegisterHandler(topic string, handler HandlerFunc) error
	Run(ctx context.Context) (CleanupFunc, error)
}

var _ Consumer = (*KafkaConsumer)(nil)

type KafkaConsumer struct {
	cl       *kgo.Client
	handlers map[string]HandlerFunc
	log      *slog.Logger
}

func NewKafkaConsumer(ctx context.Context, cfg config.Kafka, logger *slog.Logger) (*KafkaConsumer, error) {
	cl, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Addresses...),
		kgo.ConsumerGroup(cfg.Group),
		kgo.AllowAutoTopicCreation(),
		kgo.DisableAutoCommit(),
		kgo.WithContext(ctx),
		kgo.WithHooks(newKotel().Hooks()...),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()
	if err := cl.Ping(pingCtx); err != nil {
		cl.Close()
		return nil, fmt.Errorf("ping kafka: %w", err)
	}

	return &KafkaConsumer{
		cl:       cl,
		handlers: make(map[string]HandlerFunc),
		log:      logger,
	}, nil
}

func (c *KafkaConsumer) RegisterHandler(topic string, handler HandlerFunc) error {
	if _, exists := c.handlers[topic]; exists {
		return fmt.Errorf("handler for topic %s already registered", topic)
	}

	c.cl.AddConsumeTopics(topic)
	c.handlers[topic] = handler
	return nil
}

func (c *KafkaConsumer) Run(ctx context.Context) (CleanupFunc, error) {
	ctx, cancel := context.WithCancel(ctx)
	doneChan := make(chan struct{})

	go func() {
		defer close(doneChan)

		for {
			fetches := c.cl.PollFetches(ctx)
			if ctx.Err() != nil {
				return
			}

			if errs := fetches.Errors(); len(errs) > 0 {
				if errors.Is(errs[0].Err, context.Canceled) {
					return
				}

				c.log.ErrorContext(ctx, "error fetching messages",
					slog.Any("error", errs),
				)
				continue
			}

			fetches.EachRecord(func(rec *kgo.Record) {
				c.dispatch(ctx, rec)
			})

			if err := c.cl.CommitUncommittedOffsets(ctx); err != nil {
				c.log.ErrorContext(ctx, "error committing offsets",
					slog.Any("error", err),
				)
			}
		}
	}()

	cleanup := func() {
		cancel()
		<-doneChan
		c.cl.Close()
	}

	return cleanup, nil
}

// dispatch routes rec to its topic handler. Handler errors and panics are
// logged and the record is still committed.
func (c *KafkaConsumer) dispatch(ctx context.Context, rec *kgo.Record) {
	ctx = mqheader.FromRecord(ctx, rec)

	defer func() {
		if rvr := recover(); rvr != nil {
			span := trace.SpanFromContext(ctx)
			span.RecordError(fmt.Errorf("panic: %v", rvr))
			span.SetStatus(codes.Error, "panic in handler")

			c.log.ErrorContext(ctx, "panic in message handler",
				slog.String("topic", rec.Topic),
				slog.Any("recover", rvr),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()

	fn, exists := c.handlers[rec.Topic]
	if !exists {
		c.log.WarnContext(ctx, "no handler registered for topic",
			slog.String("topic", rec.Topic),
		)
		return
	}

	if err := fn(ctx, rec.Topic, rec.Value); err != nil {
		c.log.ErrorContext(ctx, "error handling message",
			slog.String("topic", rec.Topic),
			slog.String("key", string(rec.Key)),
			slog.Any("error", err),
		)
	}
}

func (c *KafkaConsumer) Close() {
	c.cl.Close()
}
