package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const DefaultVariantName = "Full"

var (
	ErrVariantNotFound  = errors.New("variant not found")
	ErrVariantExists    = errors.New("variant already exists for this item")
	ErrLastVariant      = errors.New("cannot remove the only remaining variant")
	ErrInvalidItemPrice = errors.New("price should be at least 1")
)

var minPrice = decimal.NewFromInt(1)

type Variant struct {
	ID        uint            `json:"id"`
	ItemID    uint            `json:"itemId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
}

type Item struct {
	ID          uint      `json:"id"`
	StoreID     uint      `json:"storeId"`
	Name        string    `json:"itemName"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	Variants    []Variant `json:"variants"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewItem builds an available item carrying the default variant at the given price.
func NewItem(storeID uint, name, description string, price decimal.Decimal) (Item, error) {
	if price.LessThan(minPrice) {
		return Item{}, ErrInvalidItemPrice
	}

	return Item{
		StoreID:     storeID,
		Name:        name,
		Description: description,
		Available:   true,
		Variants: []Variant{{
			Name:      DefaultVariantName,
			Price:     price,
			Available: true,
		}},
	}, nil
}

// FindVariant matches a variant by name, ignoring case.
func (i Item) FindVariant(name string) (Variant, bool) {
	for _, v := range i.Variants {
		if strings.EqualFold(v.Name, name) {
			return v, true
		}
	}

	return Variant{}, false
}

func (i Item) VariantByID(id uint) (Variant, bool) {
	for _, v := range i.Variants {
		if v.ID == id {
			return v, true
		}
	}

	return Variant{}, false
}

func (i *Item) AddVariant(name string, price decimal.Decimal) (Variant, error) {
	if price.LessThan(minPrice) {
		return Variant{}, ErrInvalidItemPrice
	}
	if _, ok := i.FindVariant(name); ok {
		return Variant{}, ErrVariantExists
	}

	v := Variant{
		ItemID:    i.ID,
		Name:      name,
		Price:     price,
		Available: true,
	}
	i.Variants = append(i.Variants, v)

	return v, nil
}

// EditVariant renames and/or reprices a variant. Nil arguments are left unchanged.
func (i *Item) EditVariant(id uint, name *string, price *decimal.Decimal) (Variant, error) {
	idx := i.variantIndex(id)
	if idx < 0 {
		return Variant{}, ErrVariantNotFound
	}

	v := &i.Variants[idx]
	if name != nil && !strings.EqualFold(*name, v.Name) {
		for _, other := range i.Variants {
			if other.ID != id && strings.EqualFold(other.Name, *name) {
				return Variant{}, ErrVariantExists
			}
		}
	}
	if price != nil && price.LessThan(minPrice) {
		return Variant{}, ErrInvalidItemPrice
	}

	if name != nil {
		v.Name = *name
	}
	if price != nil {
		v.Price = *price
	}

	return *v, nil
}

func (i *Item) RemoveVariant(id uint) error {
	if len(i.Variants) <= 1 {
		return ErrLastVariant
	}

	idx := i.variantIndex(id)
	if idx < 0 {
		return ErrVariantNotFound
	}
	i.Variants = append(i.Variants[:idx:idx], i.Variants[idx+1:]...)

	return nil
}

// SetAvailability flips the item and every one of its variants.
func (i *Item) SetAvailability(available bool) {
	i.Available = available
	for idx := range i.Variants {
		i.Variants[idx].Available = available
	}
}

func (i Item) variantIndex(id uint) int {
	for idx, v := range i.Variants {
		if v.ID == id {
			return idx
		}
	}

	return -1
}
