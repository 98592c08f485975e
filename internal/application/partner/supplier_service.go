package partner

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/procurement/backend/internal/domain/partner"
	"github.com/procurement/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// RegisterSupplierRequest is the request to register a supplier
type RegisterSupplierRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Contact string `json:"contact" validate:"max=200"`
}

// SupplierResponse describes a supplier
type SupplierResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// SupplierService handles supplier registration and lookup
type SupplierService struct {
	ids       *shared.Sequence
	suppliers partner.SupplierRepository
	validate  *validator.Validate
	logger    *zap.Logger
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(ids *shared.Sequence, suppliers partner.SupplierRepository, logger *zap.Logger) *SupplierService {
	return &SupplierService{
		ids:       ids,
		suppliers: suppliers,
		validate:  validator.New(),
		logger:    logger,
	}
}

// Register registers a new supplier
func (s *SupplierService) Register(ctx context.Context, req RegisterSupplierRequest) (*SupplierResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.ErrInvalidInput
	}

	supplier, err := partner.NewSupplier(s.ids, req.Name, req.Contact)
	if err != nil {
		return nil, err
	}
	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return nil, err
	}

	s.logger.Info("supplier registered",
		zap.Int64("supplier_id", supplier.ID),
		zap.String("name", supplier.Name),
	)

	return toSupplierResponse(supplier), nil
}

// Get retrieves a supplier by id
func (s *SupplierService) Get(ctx context.Context, id int64) (*SupplierResponse, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List returns all suppliers in registration order
func (s *SupplierService) List(ctx context.Context) ([]SupplierResponse, error) {
	suppliers, err := s.suppliers.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]SupplierResponse, 0, len(suppliers))
	for _, supplier := range suppliers {
		responses = append(responses, *toSupplierResponse(supplier))
	}
	return responses, nil
}

func toSupplierResponse(supplier *partner.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:      supplier.ID,
		Name:    supplier.Name,
		Contact: supplier.Contact,
	}
}
