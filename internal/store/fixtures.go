package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/model"
)

//go:embed fixtures/products.json
var defaultFixtures []byte

var ErrInvalidFixture = errors.New("invalid product fixture")

// DefaultFixtures decodes the product fixtures bundled with the binary.
func DefaultFixtures() ([]model.Product, error) {
	return LoadFixtures(bytes.NewReader(defaultFixtures))
}

// LoadFixturesFile decodes product fixtures from a JSON file on disk.
func LoadFixturesFile(path string) ([]model.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures file: %w", err)
	}
	defer f.Close()

	return LoadFixtures(f)
}

// LoadFixtures decodes a JSON array of products. Records without an id or with
// an unknown stock status are rejected, malformed specifications and tags fall
// back to an empty document, and missing timestamps default to load time.
func LoadFixtures(r io.Reader) ([]model.Product, error) {
	var products []model.Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}

	now := time.Now().UTC()
	for i := range products {
		p := &products[i]

		p.ID = strings.TrimSpace(p.ID)
		if p.ID == "" {
			return nil, fmt.Errorf("%w: record %d has no id", ErrInvalidFixture, i)
		}
		if err := p.StockStatus.Validate(); err != nil {
			return nil, fmt.Errorf("%w: product %s: %w", ErrInvalidFixture, p.ID, err)
		}

		p.Specifications = p.Specifications.Sanitize(model.EmptyObject)
		p.Tags = p.Tags.Sanitize(model.EmptyArray)

		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		if p.UpdatedAt.IsZero() {
			p.UpdatedAt = p.CreatedAt
		}
	}

	return products, nil
}
