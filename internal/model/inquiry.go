package model

import "time"

type InquiryStatus string

const (
	InquiryStatusPending InquiryStatus = "pending"
)

// Inquiry is a customer contact or quote request, optionally tied to a product.
type Inquiry struct {
	ID        int64
	Name      string
	Email     string
	Company   *string
	Phone     *string
	Message   string
	ProductID *string
	Status    InquiryStatus
	CreatedAt time.Time
}
