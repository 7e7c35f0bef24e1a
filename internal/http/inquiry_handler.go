package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/service"
)

const maxInquiryBodyBytes = 64 << 10

type inquiryHandler struct {
	inquirySvc service.InquiryService
}

func newInquiryHandler(inquirySvc service.InquiryService) *inquiryHandler {
	return &inquiryHandler{
		inquirySvc: inquirySvc,
	}
}

func (h *inquiryHandler) CreateInquiry(w http.ResponseWriter, r *http.Request) error {
	var req createInquiryRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxInquiryBodyBytes)).Decode(&req); err != nil {
		return apperr.ValidationErr.WithMsg("invalid request body").WrapParent(err)
	}

	inquiry, err := h.inquirySvc.CreateInquiry(r.Context(), req.params())
	if err != nil {
		return fmt.Errorf("inquiry service create inquiry: %w", err)
	}

	return writeJSON(w, http.StatusCreated, newInquiryResponse(inquiry))
}
