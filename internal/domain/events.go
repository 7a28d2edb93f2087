package domain

import "time"

// ItemAddedEvent is produced by product pages when a visitor puts an item into the cart.
type ItemAddedEvent struct {
	SessionID string   `json:"session_id"`
	Item      CartItem `json:"item"`
}

// CheckoutEvent is published after the selection has been handed to the checkout view.
type CheckoutEvent struct {
	SessionID string    `json:"session_id"`
	ItemIDs   []string  `json:"item_ids"`
	Subtotal  int64     `json:"subtotal"`
	Total     int64     `json:"total"`
	At        time.Time `json:"at"`
}
