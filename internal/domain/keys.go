package domain

// Storage keys of the per-session snapshot.
const (
	KeyCart          = "cart"
	KeySelectedItems = "selectedItems"
	KeyCheckoutItems = "checkoutItems"
	KeyWishlist      = "wishlist"
)
