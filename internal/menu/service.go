package menu

import (
	"context"
	"strings"

	"nebula-eats-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultImage is substituted when an admin adds an item without one.
const defaultImage = "🍽️"

// Service defines the business logic for the catalog.
type Service interface {
	List(ctx context.Context) []MenuItem
	Get(ctx context.Context, id string) (MenuItem, error)
	AddItem(ctx context.Context, params NewItemParams) (MenuItem, error)
	SetAvailability(ctx context.Context, id string, available bool) error
	RemoveItem(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) []MenuItem {
	return s.repo.List()
}

func (s *service) Get(ctx context.Context, id string) (MenuItem, error) {
	item, ok := s.repo.Get(id)
	if !ok {
		return MenuItem{}, ErrItemNotFound
	}
	return item, nil
}

// AddItem allocates an id and prepends the item to the catalog.
// New items default to available unless explicitly overridden.
func (s *service) AddItem(ctx context.Context, params NewItemParams) (MenuItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddItem"),
		zap.String("name", params.Name),
	)

	if strings.TrimSpace(params.Name) == "" {
		log.Warn("rejected menu item without a name")
		return MenuItem{}, ErrNameRequired
	}
	if params.Price < 0 {
		log.Warn("rejected menu item with negative price", zap.Float64("price", params.Price))
		return MenuItem{}, ErrNegativePrice
	}

	item := MenuItem{
		ID:          uuid.New().String(),
		Name:        params.Name,
		Price:       params.Price,
		Description: params.Description,
		Image:       params.Image,
		Category:    params.Category,
		Available:   true,
	}
	if item.Image == "" {
		item.Image = defaultImage
	}
	if params.Available != nil {
		item.Available = *params.Available
	}

	s.repo.Insert(item)

	log.Info("menu item added", zap.String("item_id", item.ID))
	return item, nil
}

func (s *service) SetAvailability(ctx context.Context, id string, available bool) error {
	if !s.repo.SetAvailability(id, available) {
		return ErrItemNotFound
	}

	logger.FromCtx(ctx).Info("menu item availability changed",
		zap.String("item_id", id),
		zap.Bool("available", available),
	)
	return nil
}

// RemoveItem deletes a catalog entry. Orders holding snapshots of the
// item are unaffected.
func (s *service) RemoveItem(ctx context.Context, id string) error {
	if !s.repo.Remove(id) {
		return ErrItemNotFound
	}

	logger.FromCtx(ctx).Info("menu item removed", zap.String("item_id", id))
	return nil
}
