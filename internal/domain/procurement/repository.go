package procurement

import "context"

// PurchaseOrderRepository defines the persistence operations for purchase orders
type PurchaseOrderRepository interface {
	FindByID(ctx context.Context, id int64) (*PurchaseOrder, error)
	FindAll(ctx context.Context) ([]*PurchaseOrder, error)
	Save(ctx context.Context, order *PurchaseOrder) error
}

// GoodsReceiptRepository defines the persistence operations for goods receipts
type GoodsReceiptRepository interface {
	FindByID(ctx context.Context, id int64) (*GoodsReceipt, error)
	FindAll(ctx context.Context) ([]*GoodsReceipt, error)
	Save(ctx context.Context, receipt *GoodsReceipt) error
}

// InspectionLotRepository defines the persistence operations for inspection lots
type InspectionLotRepository interface {
	FindByID(ctx context.Context, id int64) (*InspectionLot, error)
	FindAll(ctx context.Context) ([]*InspectionLot, error)
	Save(ctx context.Context, lot *InspectionLot) error
}

// RejectionRepository is the append-only rejection ledger. Entries are never
// updated or deleted and never read back for validation.
type RejectionRepository interface {
	Append(ctx context.Context, rejection *Rejection) error
	FindAll(ctx context.Context) ([]*Rejection, error)
}
