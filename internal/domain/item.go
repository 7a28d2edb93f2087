package domain

import (
	"fmt"
	"strings"
)

// CartItem is a single rental line. Price is in minor currency units per rental period.
type CartItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
	Color    string `json:"color,omitempty"`
	Size     string `json:"size,omitempty"`
	Quantity int    `json:"quantity"`
}

// Qty returns the quantity, treating a missing value as 1.
func (i CartItem) Qty() int {
	if i.Quantity < 1 {
		return 1
	}
	return i.Quantity
}

func (i CartItem) Validate() error {
	switch {
	case strings.TrimSpace(i.ID) == "":
		return fmt.Errorf("%w: id is required", ErrInvalidItem)
	case strings.TrimSpace(i.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidItem)
	case i.Price < 0:
		return fmt.Errorf("%w: price must not be negative", ErrInvalidItem)
	case i.Quantity < 0:
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalidItem)
	}
	return nil
}
