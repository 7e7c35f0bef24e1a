package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/model"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/storage/db"
)

const (
	inquiryCreateQuery = `INSERT INTO inquiries (name, email, company, phone, message, product_id, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at`

	inquiryListQuery = `SELECT id, name, email, company, phone, message, product_id, status, created_at
FROM inquiries
ORDER BY id`
)

type postgresInquiryRepository struct {
	db db.DB
}

func NewPostgresInquiryRepository(db db.DB) InquiryRepository {
	return &postgresInquiryRepository{db: db}
}

func (r postgresInquiryRepository) CreateInquiry(ctx context.Context, inquiry model.Inquiry) (model.Inquiry, error) {
	if inquiry.Status == "" {
		inquiry.Status = model.InquiryStatusPending
	}

	err := r.db.QueryRow(ctx, inquiryCreateQuery,
		inquiry.Name,
		inquiry.Email,
		inquiry.Company,
		inquiry.Phone,
		inquiry.Message,
		inquiry.ProductID,
		inquiry.Status,
	).Scan(&inquiry.ID, &inquiry.CreatedAt)
	if err != nil {
		return model.Inquiry{}, fmt.Errorf("insert inquiry: %w", err)
	}

	inquiry.CreatedAt = inquiry.CreatedAt.UTC()

	return inquiry, nil
}

func (r postgresInquiryRepository) ListInquiries(ctx context.Context) ([]model.Inquiry, error) {
	rows, err := r.db.Query(ctx, inquiryListQuery)
	if err != nil {
		return nil, fmt.Errorf("query inquiries: %w", err)
	}

	inquiries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Inquiry, error) {
		var i model.Inquiry
		err := row.Scan(&i.ID, &i.Name, &i.Email, &i.Company, &i.Phone, &i.Message, &i.ProductID, &i.Status, &i.CreatedAt)
		return i, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect inquiries: %w", err)
	}

	return inquiries, nil
}
