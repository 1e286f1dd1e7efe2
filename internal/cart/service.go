package cart

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/shreyat81/e-com-mart/internal/cache"
	"github.com/shreyat81/e-com-mart/internal/domain"
)

// ProductGetter is the slice of the catalog the cart needs.
type ProductGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Product, error)
}

type Service struct {
	repo    CartRepository
	catalog ProductGetter
	cache   cache.CartCache
	sfg     singleflight.Group // Prevents cache stampede
}

func NewService(repo CartRepository, products ProductGetter, c cache.CartCache) *Service {
	return &Service{
		repo:    repo,
		catalog: products,
		cache:   c,
	}
}

// Items returns the user's raw line items, going through the cache.
func (s *Service) Items(ctx context.Context, userID string) ([]domain.CartItem, error) {
	// Use singleflight to prevent multiple concurrent cache misses for same key
	v, err, _ := s.sfg.Do(userID, func() (interface{}, error) {
		items, err := s.cache.Get(ctx, userID)
		if err == nil {
			return items, nil // items are in cache
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v", err) // log cache error but continue
		}

		items, errList := s.repo.ListItems(ctx, userID)
		if errList != nil {
			return nil, errList
		}

		go func() {
			if errSet := s.cache.Set(context.Background(), userID, items); errSet != nil {
				log.Printf("cache set error: %v", errSet)
			}
		}()

		return items, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]domain.CartItem), nil
}

// Lines joins the user's line items with catalog data for display. Items
// whose product has since been deleted are skipped.
func (s *Service) Lines(ctx context.Context, userID string) ([]domain.CartLine, error) {
	items, err := s.Items(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.catalog.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]domain.CartLine, 0, len(items))
	for _, item := range items {
		p, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		lines = append(lines, domain.CartLine{
			ID:           item.ID.Hex(),
			ProductID:    item.ProductID,
			ProductName:  p.Name,
			ProductImage: p.Image,
			Qty:          item.Qty,
			Price:        item.Price,
		})
	}

	return lines, nil
}

// Add puts qty units of the product into the user's cart, merging with an
// existing line item for the same product. The product's current price is
// captured on first add.
func (s *Service) Add(ctx context.Context, userID string, productID int64, qty int) (*domain.CartItem, error) {
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, err // catalog.ErrProductNotFound passes through
	}

	item, err := s.repo.AddItem(ctx, domain.CartItem{
		UserID:    userID,
		ProductID: product.ID,
		Qty:       qty,
		Price:     product.Price,
	})
	if err != nil {
		log.Printf("repo add item error: %v", err)
		return nil, err
	}

	s.invalidateCache(userID)
	return item, nil
}

func (s *Service) UpdateQuantity(ctx context.Context, userID, itemID string, qty int) (*domain.CartItem, error) {
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.repo.UpdateQuantity(ctx, userID, itemID, qty)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(userID)
	return item, nil
}

func (s *Service) Remove(ctx context.Context, userID, itemID string) error {
	if err := s.repo.RemoveItem(ctx, userID, itemID); err != nil {
		return err
	}

	s.invalidateCache(userID)
	return nil
}

func (s *Service) Clear(ctx context.Context, userID string) error {
	if err := s.repo.DeleteAll(ctx, userID); err != nil {
		log.Printf("repo delete cart error: %v", err)
		return err
	}

	s.invalidateCache(userID)
	return nil
}

func (s *Service) invalidateCache(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, userID); err != nil {
		log.Printf("cache invalidate error: %v", err)
	}
}
