package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("product name is required")
	ErrInvalidPrice = errors.New("price must be positive")
)

// Product is a catalog item. Price here is the current list price; ledgers
// and orders snapshot their own copy at reservation time.
type Product struct {
	id          uuid.UUID
	categoryID  *uuid.UUID
	name        string
	description string
	imageURL    string
	priceCents  int64
	unit        string
	visible     bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProduct(categoryID *uuid.UUID, name, description, imageURL string, priceCents int64, unit string, visible bool, now time.Time) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if priceCents <= 0 {
		return nil, ErrInvalidPrice
	}
	return &Product{
		id:          uuid.New(),
		categoryID:  categoryID,
		name:        name,
		description: description,
		imageURL:    imageURL,
		priceCents:  priceCents,
		unit:        unit,
		visible:     visible,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructProduct(
	id uuid.UUID,
	categoryID *uuid.UUID,
	name, description, imageURL string,
	priceCents int64,
	unit string,
	visible bool,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:          id,
		categoryID:  categoryID,
		name:        name,
		description: description,
		imageURL:    imageURL,
		priceCents:  priceCents,
		unit:        unit,
		visible:     visible,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Product) ID() uuid.UUID          { return p.id }
func (p *Product) CategoryID() *uuid.UUID { return p.categoryID }
func (p *Product) Name() string           { return p.name }
func (p *Product) Description() string    { return p.description }
func (p *Product) ImageURL() string       { return p.imageURL }
func (p *Product) PriceCents() int64      { return p.priceCents }
func (p *Product) Unit() string           { return p.unit }
func (p *Product) Visible() bool          { return p.visible }
func (p *Product) CreatedAt() time.Time   { return p.createdAt }
func (p *Product) UpdatedAt() time.Time   { return p.updatedAt }

func (p *Product) Update(categoryID *uuid.UUID, name, description, imageURL string, priceCents int64, unit string, visible bool, now time.Time) error {
	if name == "" {
		return ErrEmptyName
	}
	if priceCents <= 0 {
		return ErrInvalidPrice
	}
	p.categoryID = categoryID
	p.name = name
	p.description = description
	p.imageURL = imageURL
	p.priceCents = priceCents
	p.unit = unit
	p.visible = visible
	p.updatedAt = now
	return nil
}
