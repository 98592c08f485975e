package catalog

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/procurement/backend/internal/domain/catalog"
	"github.com/procurement/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// RegisterItemRequest is the request to register a catalog item
type RegisterItemRequest struct {
	Name string `json:"name" validate:"required,max=200"`
	Unit string `json:"unit" validate:"max=20"`
}

// ItemResponse describes a catalog item
type ItemResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// ItemService handles catalog item registration and lookup
type ItemService struct {
	ids      *shared.Sequence
	items    catalog.ItemRepository
	validate *validator.Validate
	logger   *zap.Logger
}

// NewItemService creates a new ItemService
func NewItemService(ids *shared.Sequence, items catalog.ItemRepository, logger *zap.Logger) *ItemService {
	return &ItemService{
		ids:      ids,
		items:    items,
		validate: validator.New(),
		logger:   logger,
	}
}

// Register registers a new item
func (s *ItemService) Register(ctx context.Context, req RegisterItemRequest) (*ItemResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.ErrInvalidInput
	}

	item, err := catalog.NewItem(s.ids, req.Name, req.Unit)
	if err != nil {
		return nil, err
	}
	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("item registered",
		zap.Int64("item_id", item.ID),
		zap.String("name", item.Name),
		zap.String("unit", item.Unit),
	)

	return toItemResponse(item), nil
}

// Get retrieves an item by id
func (s *ItemService) Get(ctx context.Context, id int64) (*ItemResponse, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List returns all items in registration order
func (s *ItemService) List(ctx context.Context) ([]ItemResponse, error) {
	items, err := s.items.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, *toItemResponse(item))
	}
	return responses, nil
}

func toItemResponse(item *catalog.Item) *ItemResponse {
	return &ItemResponse{
		ID:   item.ID,
		Name: item.Name,
		Unit: item.Unit,
	}
}
