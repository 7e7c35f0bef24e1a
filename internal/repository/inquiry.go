package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/model"
)

// InquiryRepository persists inquiries. Records are append-only; the
// repository assigns the id and creation time.
type InquiryRepository interface {
	CreateInquiry(ctx context.Context, inquiry model.Inquiry) (model.Inquiry, error)
	ListInquiries(ctx context.Context) ([]model.Inquiry, error)
}

type memoryInquiryRepository struct {
	mu     sync.Mutex
	lastID int64
	items  []model.Inquiry
	now    func() time.Time
}

func NewMemoryInquiryRepository() InquiryRepository {
	return &memoryInquiryRepository{now: time.Now}
}

func (r *memoryInquiryRepository) CreateInquiry(_ context.Context, inquiry model.Inquiry) (model.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	inquiry.ID = r.lastID
	inquiry.CreatedAt = r.now().UTC()
	if inquiry.Status == "" {
		inquiry.Status = model.InquiryStatusPending
	}

	r.items = append(r.items, inquiry)

	return inquiry, nil
}

func (r *memoryInquiryRepository) ListInquiries(_ context.Context) ([]model.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.items), nil
}
