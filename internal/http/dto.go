package http

import (
	"time"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/model"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/query"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/service"
)

type productResponse struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	ModelNumber    string            `json:"modelNumber"`
	Image          string            `json:"image"`
	Price          string            `json:"price"`
	OriginalPrice  *string           `json:"originalPrice"`
	Category       string            `json:"category"`
	Series         string            `json:"series"`
	StockStatus    model.StockStatus `json:"stockStatus"`
	Rating         string            `json:"rating"`
	ReviewCount    int               `json:"reviewCount"`
	Specifications *string           `json:"specifications"`
	Description    *string           `json:"description"`
	Tags           *string           `json:"tags"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

func newProductResponse(p model.Product) productResponse {
	res := productResponse{
		ID:             p.ID,
		Title:          p.Title,
		ModelNumber:    p.ModelNumber,
		Image:          p.Image,
		Price:          p.Price.StringFixed(2),
		Category:       p.Category,
		Series:         p.Series,
		StockStatus:    p.StockStatus,
		Rating:         p.Rating.StringFixed(1),
		ReviewCount:    p.ReviewCount,
		Specifications: documentText(p.Specifications),
		Description:    p.Description,
		Tags:           documentText(p.Tags),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}

	if p.OriginalPrice.Valid {
		originalPrice := p.OriginalPrice.Decimal.StringFixed(2)
		res.OriginalPrice = &originalPrice
	}

	return res
}

func documentText(d model.Document) *string {
	if d.IsNull() {
		return nil
	}
	text := d.Text()
	return &text
}

type productListResponse struct {
	Products []productResponse `json:"products"`
	Total    int               `json:"total"`
}

func newProductListResponse(result query.Result) productListResponse {
	items := make([]productResponse, 0, len(result.Products))
	for _, p := range result.Products {
		items = append(items, newProductResponse(p))
	}

	return productListResponse{
		Products: items,
		Total:    result.Total,
	}
}

type facetCountResponse struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type stockCountResponse struct {
	Status model.StockStatus `json:"status"`
	Count  int               `json:"count"`
}

type priceRangeResponse struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

type facetSummaryResponse struct {
	Categories  []facetCountResponse `json:"categories"`
	Series      []facetCountResponse `json:"series"`
	Price       *priceRangeResponse  `json:"price"`
	StockStatus []stockCountResponse `json:"stockStatus"`
	Total       int                  `json:"total"`
}

func newFacetSummaryResponse(summary query.FacetSummary) facetSummaryResponse {
	res := facetSummaryResponse{
		Categories:  newFacetCountResponses(summary.Categories),
		Series:      newFacetCountResponses(summary.Series),
		StockStatus: make([]stockCountResponse, 0, len(summary.StockStatus)),
		Total:       summary.Total,
	}

	for _, sc := range summary.StockStatus {
		res.StockStatus = append(res.StockStatus, stockCountResponse{Status: sc.Status, Count: sc.Count})
	}

	if summary.Price != nil {
		res.Price = &priceRangeResponse{
			Min: summary.Price.Min.StringFixed(2),
			Max: summary.Price.Max.StringFixed(2),
		}
	}

	return res
}

func newFacetCountResponses(counts []query.FacetCount) []facetCountResponse {
	res := make([]facetCountResponse, 0, len(counts))
	for _, c := range counts {
		res = append(res, facetCountResponse{Value: c.Value, Count: c.Count})
	}
	return res
}

type createInquiryRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Company   *string `json:"company"`
	Phone     *string `json:"phone"`
	Message   string  `json:"message"`
	ProductID *string `json:"productId"`
}

func (r createInquiryRequest) params() service.CreateInquiryParams {
	return service.CreateInquiryParams{
		Name:      r.Name,
		Email:     r.Email,
		Company:   r.Company,
		Phone:     r.Phone,
		Message:   r.Message,
		ProductID: r.ProductID,
	}
}

type inquiryResponse struct {
	ID        int64               `json:"id"`
	Name      string              `json:"name"`
	Email     string              `json:"email"`
	Company   *string             `json:"company"`
	Phone     *string             `json:"phone"`
	Message   string              `json:"message"`
	ProductID *string             `json:"productId"`
	Status    model.InquiryStatus `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
}

func newInquiryResponse(i model.Inquiry) inquiryResponse {
	return inquiryResponse{
		ID:        i.ID,
		Name:      i.Name,
		Email:     i.Email,
		Company:   i.Company,
		Phone:     i.Phone,
		Message:   i.Message,
		ProductID: i.ProductID,
		Status:    i.Status,
		CreatedAt: i.CreatedAt,
	}
}

type healthResponse struct {
	Status string `json:"status"`
}
