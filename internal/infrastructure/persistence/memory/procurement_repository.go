package memory

import (
	"context"
	"sync"

	"github.com/procurement/backend/internal/domain/procurement"
)

// PurchaseOrderRepository provides in-memory purchase order storage
type PurchaseOrderRepository struct {
	store *store[*procurement.PurchaseOrder]
}

// NewPurchaseOrderRepository creates a new in-memory purchase order repository
func NewPurchaseOrderRepository() *PurchaseOrderRepository {
	return &PurchaseOrderRepository{store: newStore[*procurement.PurchaseOrder]()}
}

// FindByID returns the purchase order with the given id
func (r *PurchaseOrderRepository) FindByID(ctx context.Context, id int64) (*procurement.PurchaseOrder, error) {
	return r.store.find(id)
}

// FindAll returns all purchase orders in creation order
func (r *PurchaseOrderRepository) FindAll(ctx context.Context) ([]*procurement.PurchaseOrder, error) {
	return r.store.all(), nil
}

// Save stores a purchase order
func (r *PurchaseOrderRepository) Save(ctx context.Context, order *procurement.PurchaseOrder) error {
	r.store.save(order)
	return nil
}

// GoodsReceiptRepository provides in-memory goods receipt storage
type GoodsReceiptRepository struct {
	store *store[*procurement.GoodsReceipt]
}

// NewGoodsReceiptRepository creates a new in-memory goods receipt repository
func NewGoodsReceiptRepository() *GoodsReceiptRepository {
	return &GoodsReceiptRepository{store: newStore[*procurement.GoodsReceipt]()}
}

// FindByID returns the goods receipt with the given id
func (r *GoodsReceiptRepository) FindByID(ctx context.Context, id int64) (*procurement.GoodsReceipt, error) {
	return r.store.find(id)
}

// FindAll returns all goods receipts in creation order
func (r *GoodsReceiptRepository) FindAll(ctx context.Context) ([]*procurement.GoodsReceipt, error) {
	return r.store.all(), nil
}

// Save stores a goods receipt
func (r *GoodsReceiptRepository) Save(ctx context.Context, receipt *procurement.GoodsReceipt) error {
	r.store.save(receipt)
	return nil
}

// InspectionLotRepository provides in-memory inspection lot storage
type InspectionLotRepository struct {
	store *store[*procurement.InspectionLot]
}

// NewInspectionLotRepository creates a new in-memory inspection lot repository
func NewInspectionLotRepository() *InspectionLotRepository {
	return &InspectionLotRepository{store: newStore[*procurement.InspectionLot]()}
}

// FindByID returns the inspection lot with the given id
func (r *InspectionLotRepository) FindByID(ctx context.Context, id int64) (*procurement.InspectionLot, error) {
	return r.store.find(id)
}

// FindAll returns all inspection lots in creation order
func (r *InspectionLotRepository) FindAll(ctx context.Context) ([]*procurement.InspectionLot, error) {
	return r.store.all(), nil
}

// Save stores an inspection lot
func (r *InspectionLotRepository) Save(ctx context.Context, lot *procurement.InspectionLot) error {
	r.store.save(lot)
	return nil
}

// RejectionLedger is the in-memory append-only rejection ledger
type RejectionLedger struct {
	mu      sync.RWMutex
	entries []*procurement.Rejection
}

// NewRejectionLedger creates a new in-memory rejection ledger
func NewRejectionLedger() *RejectionLedger {
	return &RejectionLedger{}
}

// Append adds a rejection entry to the ledger
func (r *RejectionLedger) Append(ctx context.Context, rejection *procurement.Rejection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, rejection)
	return nil
}

// FindAll returns every rejection recorded, oldest first
func (r *RejectionLedger) FindAll(ctx context.Context) ([]*procurement.Rejection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]*procurement.Rejection, len(r.entries))
	copy(entries, r.entries)
	return entries, nil
}

// Ensure the implementations satisfy the domain interfaces
var (
	_ procurement.PurchaseOrderRepository = (*PurchaseOrderRepository)(nil)
	_ procurement.GoodsReceiptRepository  = (*GoodsReceiptRepository)(nil)
	_ procurement.InspectionLotRepository = (*InspectionLotRepository)(nil)
	_ procurement.RejectionRepository     = (*RejectionLedger)(nil)
)
