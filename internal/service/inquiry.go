package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/model"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/notify"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/repository"
	"github.com/tuanvumaihuynh/hvac-catalog/pkg/validator"
)

type CreateInquiryParams struct {
	Name      string  `json:"name" validate:"required,notblank,max=200"`
	Email     string  `json:"email" validate:"required,email,max=320"`
	Company   *string `json:"company" validate:"omitempty,max=200"`
	Phone     *string `json:"phone" validate:"omitempty,phone"`
	Message   string  `json:"message" validate:"required,notblank,max=5000"`
	ProductID *string `json:"productId" validate:"omitempty,max=200"`
}

// normalize trims every field and turns blank optional fields into nil.
func (p CreateInquiryParams) normalize() CreateInquiryParams {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Message = strings.TrimSpace(p.Message)
	p.Company = trimOptional(p.Company)
	p.Phone = trimOptional(p.Phone)
	p.ProductID = trimOptional(p.ProductID)
	return p
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

type InquiryService interface {
	// CreateInquiry validates and persists an inquiry, then notifies in the
	// background. A notification failure never fails the call.
	CreateInquiry(ctx context.Context, params CreateInquiryParams) (model.Inquiry, error)
	// Shutdown waits for in-flight notifications or until ctx is done.
	Shutdown(ctx context.Context) error
}

type inquiryService struct {
	logger        *slog.Logger
	validator     validator.Validator
	products      ProductReader
	inquiryRepo   repository.InquiryRepository
	notifier      notify.Notifier
	notifyTimeout time.Duration

	wg sync.WaitGroup
}

func NewInquiryService(
	logger *slog.Logger,
	validator validator.Validator,
	products ProductReader,
	inquiryRepo repository.InquiryRepository,
	notifier notify.Notifier,
	notifyTimeout time.Duration,
) InquiryService {
	return &inquiryService{
		logger:        logger.With(slog.String("service", "inquiry")),
		validator:     validator,
		products:      products,
		inquiryRepo:   inquiryRepo,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
	}
}

func (s *inquiryService) CreateInquiry(ctx context.Context, params CreateInquiryParams) (model.Inquiry, error) {
	params = params.normalize()

	if err := s.validator.Validate(params); err != nil {
		return model.Inquiry{}, apperr.ValidationErr.WrapParent(err)
	}

	if params.ProductID != nil {
		if _, ok := s.products.GetByID(*params.ProductID); !ok {
			return model.Inquiry{}, apperr.ProductNotFoundErr
		}
	}

	inquiry, err := s.inquiryRepo.CreateInquiry(ctx, model.Inquiry{
		Name:      params.Name,
		Email:     params.Email,
		Company:   params.Company,
		Phone:     params.Phone,
		Message:   params.Message,
		ProductID: params.ProductID,
		Status:    model.InquiryStatusPending,
	})
	if err != nil {
		return model.Inquiry{}, fmt.Errorf("inquiry repository create inquiry: %w", err)
	}

	s.notifyAsync(ctx, inquiry)

	return inquiry, nil
}

// notifyAsync runs the notifier on a context detached from the request so the
// response does not wait for it and a client disconnect does not cancel it.
func (s *inquiryService) notifyAsync(ctx context.Context, inquiry model.Inquiry) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)

	s.wg.Go(func() {
		defer cancel()
		defer func() {
			if rvr := recover(); rvr != nil {
				s.logger.ErrorContext(ctx, "panic in inquiry notifier",
					slog.Int64("inquiry_id", inquiry.ID),
					slog.Any("recover", rvr),
				)
			}
		}()

		if err := s.notifier.NotifyInquiryCreated(ctx, inquiry); err != nil {
			s.logger.ErrorContext(ctx, "error notifying inquiry created",
				slog.Int64("inquiry_id", inquiry.ID),
				slog.Any("error", err),
			)
		}
	})
}

func (s *inquiryService) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait for notifications: %w", ctx.Err())
	}
}
