package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/TemirB/rental-cart/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source internal/cart/store.go -destination=internal/cart/store_mock_test.go -package=cart

type Storage interface {
	Get(ctx context.Context, session, key string) ([]byte, error)
	Set(ctx context.Context, session, key string, value []byte) error
}

// Store holds the cart and selection of one session. It is not safe for concurrent use;
// callers serialize access per session.
type Store struct {
	session     string
	storage     Storage
	logger      *zap.Logger
	banner      *Banner
	checkoutURL string

	items    domain.Cart
	selected domain.Selection
	wishlist int
}

func New(session string, storage Storage, checkoutURL string, logger *zap.Logger) *Store {
	return &Store{
		session:     session,
		storage:     storage,
		logger:      logger.With(zap.String("session", session)),
		banner:      NewBanner(),
		checkoutURL: checkoutURL,
	}
}

func (s *Store) Session() string { return s.session }

// Load reads the persisted snapshot. Missing or malformed data leaves empty containers.
func (s *Store) Load(ctx context.Context) {
	s.items = domain.Cart{}
	s.selected = domain.Selection{}
	s.wishlist = 0

	var items domain.Cart
	if s.read(ctx, domain.KeyCart, &items) {
		s.items = items.Normalize()
	}
	var selected domain.Selection
	if s.read(ctx, domain.KeySelectedItems, &selected) {
		s.selected = selected.Normalize()
	}
	var wishlist []json.RawMessage
	if s.read(ctx, domain.KeyWishlist, &wishlist) {
		s.wishlist = len(wishlist)
	}
}

// Refresh picks up writes made since the store was loaded, by other processes or by the
// wishlist. Unlike Load it keeps the state in memory when storage cannot be read, so a
// flaky backend never turns into an empty cart that the next action would persist.
func (s *Store) Refresh(ctx context.Context) error {
	var (
		items    domain.Cart
		selected domain.Selection
		wishlist []json.RawMessage
	)
	gotItems, err := s.fetch(ctx, domain.KeyCart, &items)
	if err != nil {
		return err
	}
	gotSelected, err := s.fetch(ctx, domain.KeySelectedItems, &selected)
	if err != nil {
		return err
	}
	gotWishlist, err := s.fetch(ctx, domain.KeyWishlist, &wishlist)
	if err != nil {
		return err
	}

	s.items, s.selected, s.wishlist = domain.Cart{}, domain.Selection{}, 0
	if gotItems {
		s.items = items.Normalize()
	}
	if gotSelected {
		s.selected = selected.Normalize()
	}
	if gotWishlist {
		s.wishlist = len(wishlist)
	}
	return nil
}

func (s *Store) read(ctx context.Context, key string, dst any) bool {
	ok, err := s.fetch(ctx, key, dst)
	if err != nil {
		s.logger.Warn("storage read failed, using empty value", zap.String("key", key), zap.Error(err))
	}
	return ok
}

// fetch decodes one snapshot into dst. Absent or malformed values report false with no
// error; only a failing backend returns one.
func (s *Store) fetch(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := s.storage.Get(ctx, s.session, key)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.Warn("malformed snapshot, using empty value", zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

// persist overwrites the cart and selection snapshots. Every mutation ends here.
func (s *Store) persist(ctx context.Context) error {
	if err := s.write(ctx, domain.KeyCart, s.items); err != nil {
		return err
	}
	return s.write(ctx, domain.KeySelectedItems, s.selected)
}

func (s *Store) write(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.storage.Set(ctx, s.session, key, raw); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// Items returns a copy of the cart in display order.
func (s *Store) Items() domain.Cart {
	return append(domain.Cart(nil), s.items...)
}

// Selected returns a copy of the selected ids.
func (s *Store) Selected() domain.Selection {
	return append(domain.Selection(nil), s.selected...)
}

// Subtotal sums the prices of selected items; ids no longer in the cart count as 0.
func (s *Store) Subtotal() int64 {
	var total int64
	for _, id := range s.selected {
		if it, ok := s.items.Find(id); ok {
			total += it.Price
		}
	}
	return total
}

func (s *Store) Total() int64 {
	return s.Subtotal() + domain.DeliveryFee + domain.InsuranceFee
}

func (s *Store) AddItem(ctx context.Context, item domain.CartItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	s.items = s.items.Add(item)
	return s.persist(ctx)
}

func (s *Store) ToggleSelect(ctx context.Context, id string, on bool) error {
	if s.items.Index(id) < 0 {
		return nil
	}
	if on {
		s.selected = s.selected.Add(id)
	} else {
		s.selected = s.selected.Remove(id)
	}
	return s.persist(ctx)
}

// ChangeQuantity moves the quantity one step in the direction of delta.
// Decrementing an item with quantity 1 removes it from the cart.
func (s *Store) ChangeQuantity(ctx context.Context, id string, delta int) error {
	it, ok := s.items.Find(id)
	if !ok || delta == 0 {
		return nil
	}

	if delta < 0 {
		if it.Qty() <= 1 {
			return s.RemoveItem(ctx, id)
		}
		it.Quantity = it.Qty() - 1
	} else {
		it.Quantity = it.Qty() + 1
	}

	name := it.Name
	if err := s.persist(ctx); err != nil {
		return err
	}
	s.Notify(fmt.Sprintf("Updated quantity for %s", name))
	return nil
}

func (s *Store) RemoveItem(ctx context.Context, id string) error {
	items, removed, ok := s.items.Remove(id)
	if !ok {
		return nil
	}
	s.items = items
	s.selected = s.selected.Remove(id)

	if err := s.persist(ctx); err != nil {
		return err
	}
	s.Notify(fmt.Sprintf("%s removed from cart!", removed.Name))
	return nil
}

// ClearCart empties the cart only when the user confirmed it.
func (s *Store) ClearCart(ctx context.Context, confirmed bool) error {
	if len(s.items) == 0 || !confirmed {
		return nil
	}
	s.items = domain.Cart{}
	s.selected = domain.Selection{}

	if err := s.persist(ctx); err != nil {
		return err
	}
	s.Notify("Cart cleared successfully!")
	return nil
}

func (s *Store) SelectAll(ctx context.Context, on bool) error {
	if on {
		s.selected = domain.Selection(s.items.IDs())
	} else {
		s.selected = domain.Selection{}
	}
	return s.persist(ctx)
}

// ProceedToCheckout hands the selection to the checkout view through the checkoutItems key.
// With nothing selected it only shows a notification and returns ok=false.
func (s *Store) ProceedToCheckout(ctx context.Context) (redirect string, ok bool, err error) {
	if len(s.selected) == 0 {
		s.Notify("Please select at least one item to proceed!")
		return "", false, nil
	}
	if err := s.write(ctx, domain.KeyCheckoutItems, s.selected); err != nil {
		return "", false, err
	}
	return s.checkoutURL, true, nil
}

func (s *Store) Notify(message string) {
	s.banner.Show(message)
}
