package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/BabyEggBot_Go/internal/catalog"
	"github.com/osse101/BabyEggBot_Go/internal/domain"
	"github.com/osse101/BabyEggBot_Go/internal/logger"
	"github.com/osse101/BabyEggBot_Go/internal/store"
)

// Item is an owned item resolved for display
type Item struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Listing partitions a user's items into pets and apparel
type Listing struct {
	Pets    []Item `json:"pets"`
	Apparel []Item `json:"apparel"`
}

// Empty reports whether the user owns nothing
func (l Listing) Empty() bool {
	return len(l.Pets) == 0 && len(l.Apparel) == 0
}

// Service manages per-user owned item lists
type Service interface {
	Add(ctx context.Context, userID, itemID string) error
	Items(userID string) []string
	List(userID string) Listing
}

type service struct {
	items *store.Store[[]string]
}

// NewService creates an inventory service over the inventory store
func NewService(items *store.Store[[]string]) Service {
	return &service{items: items}
}

// Add appends itemID to the user's inventory. Duplicates are kept.
func (s *service) Add(ctx context.Context, userID, itemID string) error {
	if itemID == "" {
		return fmt.Errorf("%w: empty item id", domain.ErrInvalidInput)
	}
	err := s.items.Update(ctx, func(m map[string][]string) error {
		owned := m[userID]
		next := make([]string, len(owned), len(owned)+1)
		copy(next, owned)
		m[userID] = append(next, itemID)
		return nil
	})
	if err != nil {
		return fmt.Errorf(ErrMsgAddItemFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgItemAdded, "user_id", userID, "item", itemID)
	return nil
}

// Items returns the raw owned ids in purchase order
func (s *service) Items(userID string) []string {
	owned, _ := s.items.Get(userID)
	return append([]string(nil), owned...)
}

// List resolves owned ids against the catalogs. Classification is by catalog
// membership only; ids not found in either catalog keep their raw id as label.
func (s *service) List(userID string) Listing {
	owned, _ := s.items.Get(userID)
	var listing Listing
	for _, id := range owned {
		item := Item{ID: id, Label: id}
		if e, ok := catalog.Lookup(catalog.KindAny, id); ok {
			item.Label = e.DisplayLabel()
		}
		if catalog.KindOf(id) == catalog.KindPet {
			listing.Pets = append(listing.Pets, item)
		} else {
			listing.Apparel = append(listing.Apparel, item)
		}
	}
	return listing
}
