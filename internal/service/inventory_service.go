package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/events"
	"github.com/spec-kit/inventory-service/internal/repository"
)

// InventoryService covers item and category management for the dashboard.
type InventoryService struct {
	items      repository.ItemRepository
	categories repository.CategoryRepository
	dispatcher events.Dispatcher
}

// NewInventoryService builds the service.
func NewInventoryService(items repository.ItemRepository, categories repository.CategoryRepository, dispatcher events.Dispatcher) *InventoryService {
	return &InventoryService{items: items, categories: categories, dispatcher: dispatcher}
}

// CreateItem stores a new item, generating a SKU when none is supplied.
func (s *InventoryService) CreateItem(ctx context.Context, item *domain.Item) error {
	if item.Name == "" {
		return errors.New("item name required")
	}
	if item.SKU == "" {
		item.SKU = uuid.NewString()
	}
	return s.items.Create(ctx, item)
}

// UpdateItem persists changes to an existing item.
func (s *InventoryService) UpdateItem(ctx context.Context, item *domain.Item) error {
	return s.items.Update(ctx, item)
}

// DeleteItem removes an item.
func (s *InventoryService) DeleteItem(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}

// GetItem returns one item.
func (s *InventoryService) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	return s.items.GetByID(ctx, id)
}

// ListItems returns all items.
func (s *InventoryService) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.items.List(ctx)
}

// AdjustStock applies a relative quantity movement and records the event
// against the acting staff user.
func (s *InventoryService) AdjustStock(ctx context.Context, actorID, itemID string, delta int) (*domain.Item, error) {
	item, err := s.items.AdjustQuantity(ctx, itemID, delta)
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventStockAdjusted,
			Actor:     events.Actor{Audience: domain.AudienceStaff, SubjectID: actorID},
			Timestamp: time.Now(),
			Payload: events.StockAdjustedPayload{
				ItemID:   item.ID,
				SKU:      item.SKU,
				Delta:    delta,
				Quantity: item.Quantity,
			},
		})
	}
	return item, nil
}

// StockReport aggregates quantity totals per category.
func (s *InventoryService) StockReport(ctx context.Context) (map[string]int, error) {
	return s.items.StockByCategory(ctx)
}

// CreateCategory stores a new category.
func (s *InventoryService) CreateCategory(ctx context.Context, category *domain.Category) error {
	if category.Name == "" {
		return errors.New("category name required")
	}
	return s.categories.Create(ctx, category)
}

// UpdateCategory persists changes to an existing category.
func (s *InventoryService) UpdateCategory(ctx context.Context, category *domain.Category) error {
	return s.categories.Update(ctx, category)
}

// DeleteCategory removes a category.
func (s *InventoryService) DeleteCategory(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}

// ListCategories returns all categories.
func (s *InventoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}
