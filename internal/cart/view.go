package cart

import "github.com/TemirB/rental-cart/internal/domain"

const rentalPeriod = "/4 Days"

type SelectAllState int

const (
	SelectNone SelectAllState = iota
	SelectAllItems
	SelectSome
)

func (s SelectAllState) String() string {
	switch s {
	case SelectAllItems:
		return "checked"
	case SelectSome:
		return "indeterminate"
	default:
		return "unchecked"
	}
}

func (s SelectAllState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type Notification struct {
	Message string `json:"message"`
	Visible bool   `json:"visible"`
}

type Row struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Price    string `json:"price"`
	Color    string `json:"color,omitempty"`
	Size     string `json:"size,omitempty"`
	Quantity int    `json:"quantity"`
	Selected bool   `json:"selected"`
}

type Summary struct {
	SelectedCount  int            `json:"selected_count"`
	Subtotal       string         `json:"subtotal"`
	Total          string         `json:"total"`
	SubtotalAmount int64          `json:"subtotal_amount"`
	TotalAmount    int64          `json:"total_amount"`
	DeliveryFee    string         `json:"delivery_fee"`
	InsuranceFee   string         `json:"insurance_fee"`
	ProceedEnabled bool           `json:"proceed_enabled"`
	SelectAll      SelectAllState `json:"select_all"`
}

// View is everything the cart page shows, derived only from the store state.
type View struct {
	Items         []Row        `json:"items"`
	Empty         bool         `json:"empty"`
	ShowSummary   bool         `json:"show_summary"`
	CartCount     int          `json:"cart_count"`
	WishlistCount int          `json:"wishlist_count"`
	Summary       Summary      `json:"summary"`
	Notification  Notification `json:"notification"`
}

func (s *Store) Render() View {
	rows := make([]Row, 0, len(s.items))
	for _, it := range s.items {
		rows = append(rows, Row{
			ID:       it.ID,
			Name:     it.Name,
			Image:    it.Image,
			Price:    domain.FormatCurrency(it.Price) + rentalPeriod,
			Color:    it.Color,
			Size:     it.Size,
			Quantity: it.Qty(),
			Selected: s.selected.Has(it.ID),
		})
	}

	empty := len(s.items) == 0
	return View{
		Items:         rows,
		Empty:         empty,
		ShowSummary:   !empty,
		CartCount:     len(s.items),
		WishlistCount: s.wishlist,
		Summary:       s.summary(),
		Notification:  s.banner.State(),
	}
}

func (s *Store) summary() Summary {
	subtotal := s.Subtotal()
	total := subtotal + domain.DeliveryFee + domain.InsuranceFee
	return Summary{
		SelectedCount:  len(s.selected),
		Subtotal:       domain.FormatCurrency(subtotal),
		Total:          domain.FormatCurrency(total),
		SubtotalAmount: subtotal,
		TotalAmount:    total,
		DeliveryFee:    domain.FormatCurrency(domain.DeliveryFee),
		InsuranceFee:   domain.FormatCurrency(domain.InsuranceFee),
		ProceedEnabled: len(s.selected) > 0,
		SelectAll:      s.selectAllState(),
	}
}

func (s *Store) selectAllState() SelectAllState {
	if len(s.items) == 0 || len(s.selected) == 0 {
		return SelectNone
	}
	for _, it := range s.items {
		if !s.selected.Has(it.ID) {
			return SelectSome
		}
	}
	return SelectAllItems
}
