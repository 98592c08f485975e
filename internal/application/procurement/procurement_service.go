package procurement

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/procurement/backend/internal/domain/partner"
	"github.com/procurement/backend/internal/domain/procurement"
	"github.com/procurement/backend/internal/domain/shared"
	"go.uber.org/zap"

	"github.com/procurement/backend/internal/domain/catalog"
)

// ProcurementService orchestrates the fulfillment pipeline: purchase orders,
// goods receipts, and inspection lots. It is the collaborator the domain
// contract holds responsible for pairing each receipt record with the order
// line credit, using the applied quantity the receipt returns.
type ProcurementService struct {
	ids       *shared.Sequence
	suppliers partner.SupplierRepository
	items     catalog.ItemRepository
	orders    procurement.PurchaseOrderRepository
	receipts  procurement.GoodsReceiptRepository
	lots      procurement.InspectionLotRepository
	ledger    procurement.RejectionRepository
	publisher shared.EventPublisher
	validate  *validator.Validate
	logger    *zap.Logger
}

// NewProcurementService creates a new ProcurementService
func NewProcurementService(
	ids *shared.Sequence,
	suppliers partner.SupplierRepository,
	items catalog.ItemRepository,
	orders procurement.PurchaseOrderRepository,
	receipts procurement.GoodsReceiptRepository,
	lots procurement.InspectionLotRepository,
	ledger procurement.RejectionRepository,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *ProcurementService {
	return &ProcurementService{
		ids:       ids,
		suppliers: suppliers,
		items:     items,
		orders:    orders,
		receipts:  receipts,
		lots:      lots,
		ledger:    ledger,
		publisher: publisher,
		validate:  validator.New(),
		logger:    logger,
	}
}

// CreateOrder creates a purchase order for a supplier, optionally with
// initial lines
func (s *ProcurementService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.ErrInvalidInput
	}

	supplier, err := s.suppliers.FindByID(ctx, req.SupplierID)
	if err != nil {
		return nil, err
	}

	order, err := procurement.NewPurchaseOrder(s.ids, supplier)
	if err != nil {
		return nil, err
	}

	for _, lineReq := range req.Lines {
		item, err := s.items.FindByID(ctx, lineReq.ItemID)
		if err != nil {
			return nil, err
		}
		if _, err := order.AddLine(item, lineReq.Qty); err != nil {
			return nil, err
		}
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, order)

	s.logger.Info("purchase order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("supplier_id", supplier.ID),
		zap.Int("lines", order.LineCount()),
	)

	response := ToOrderResponse(order)
	return &response, nil
}

// AddOrderLine appends a line to an existing order
func (s *ProcurementService) AddOrderLine(ctx context.Context, orderID, itemID, qty int64) (*OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	line, err := order.AddLine(item, qty)
	if err != nil {
		return nil, err
	}

	s.logger.Info("order line added",
		zap.Int64("order_id", order.ID),
		zap.Int("line_no", line.LineNo),
		zap.Int64("ordered_qty", line.OrderedQty),
	)

	response := ToOrderResponse(order)
	return &response, nil
}

// GetOrder retrieves a purchase order by id
func (s *ProcurementService) GetOrder(ctx context.Context, orderID int64) (*OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(order)
	return &response, nil
}

// ListOrders returns all purchase orders
func (s *ProcurementService) ListOrders(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, ToOrderResponse(order))
	}
	return responses, nil
}

// CreateReceipt opens a goods receipt event against a purchase order
func (s *ProcurementService) CreateReceipt(ctx context.Context, orderID int64) (*ReceiptResponse, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	receipt, err := procurement.NewGoodsReceipt(s.ids, order)
	if err != nil {
		return nil, err
	}
	if err := s.receipts.Save(ctx, receipt); err != nil {
		return nil, err
	}

	s.logger.Info("goods receipt created",
		zap.Int64("receipt_id", receipt.ID),
		zap.Int64("order_id", order.ID),
	)

	response := ToReceiptResponse(receipt)
	return &response, nil
}

// RecordReceiptLine records a received quantity on a receipt and credits the
// order line with exactly the applied quantity the receipt recorded. The two
// ledgers clamp once, here, and cannot drift.
func (s *ProcurementService) RecordReceiptLine(ctx context.Context, receiptID int64, lineNo int, qty int64) (*RecordLineResult, error) {
	receipt, err := s.receipts.FindByID(ctx, receiptID)
	if err != nil {
		return nil, err
	}

	applied, err := receipt.RecordLine(lineNo, qty)
	if err != nil {
		return nil, err
	}

	line, err := receipt.Order.FindLine(lineNo)
	if err != nil {
		return nil, err
	}
	if _, err := line.CreditReceived(applied); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, receipt)

	if applied < qty {
		s.logger.Warn("received quantity clamped to outstanding",
			zap.Int64("receipt_id", receipt.ID),
			zap.Int("line_no", lineNo),
			zap.Int64("requested", qty),
			zap.Int64("applied", applied),
		)
	}

	return &RecordLineResult{
		LineNo:         lineNo,
		RequestedQty:   qty,
		AppliedQty:     applied,
		OutstandingQty: line.OutstandingQty(),
	}, nil
}

// GetReceipt retrieves a goods receipt by id
func (s *ProcurementService) GetReceipt(ctx context.Context, receiptID int64) (*ReceiptResponse, error) {
	receipt, err := s.receipts.FindByID(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	response := ToReceiptResponse(receipt)
	return &response, nil
}

// ListReceipts returns all goods receipts
func (s *ProcurementService) ListReceipts(ctx context.Context) ([]ReceiptResponse, error) {
	receipts, err := s.receipts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]ReceiptResponse, 0, len(receipts))
	for _, receipt := range receipts {
		responses = append(responses, ToReceiptResponse(receipt))
	}
	return responses, nil
}

// CreateInspection opens an inspection lot against a goods receipt
func (s *ProcurementService) CreateInspection(ctx context.Context, receiptID int64) (*InspectionResponse, error) {
	receipt, err := s.receipts.FindByID(ctx, receiptID)
	if err != nil {
		return nil, err
	}

	lot, err := procurement.NewInspectionLot(s.ids, receipt)
	if err != nil {
		return nil, err
	}
	if err := s.lots.Save(ctx, lot); err != nil {
		return nil, err
	}

	s.logger.Info("inspection lot created",
		zap.Int64("lot_id", lot.ID),
		zap.Int64("receipt_id", receipt.ID),
	)

	response := ToInspectionResponse(lot)
	return &response, nil
}

// AcceptLine accepts quantity on a lot line. The accepted event carries the
// applied quantity; the inventory handler credits stock with that exact value.
func (s *ProcurementService) AcceptLine(ctx context.Context, lotID int64, lineNo int, qty int64) (*DispositionResult, error) {
	lot, err := s.lots.FindByID(ctx, lotID)
	if err != nil {
		return nil, err
	}

	applied, err := lot.AcceptLine(lineNo, qty)
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, lot)

	return &DispositionResult{LineNo: lineNo, RequestedQty: qty, AppliedQty: applied}, nil
}

// RejectLine rejects quantity on a lot line with a reason. The rejected
// event drives the ledger append; the lot itself keeps only the latest
// reason per line.
func (s *ProcurementService) RejectLine(ctx context.Context, lotID int64, lineNo int, qty int64, reason string) (*DispositionResult, error) {
	lot, err := s.lots.FindByID(ctx, lotID)
	if err != nil {
		return nil, err
	}

	applied, err := lot.RejectLine(lineNo, qty, reason)
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, lot)

	return &DispositionResult{LineNo: lineNo, RequestedQty: qty, AppliedQty: applied}, nil
}

// GetInspection retrieves an inspection lot by id
func (s *ProcurementService) GetInspection(ctx context.Context, lotID int64) (*InspectionResponse, error) {
	lot, err := s.lots.FindByID(ctx, lotID)
	if err != nil {
		return nil, err
	}
	response := ToInspectionResponse(lot)
	return &response, nil
}

// ListInspections returns all inspection lots
func (s *ProcurementService) ListInspections(ctx context.Context) ([]InspectionResponse, error) {
	lots, err := s.lots.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]InspectionResponse, 0, len(lots))
	for _, lot := range lots {
		responses = append(responses, ToInspectionResponse(lot))
	}
	return responses, nil
}

// ListRejections returns every rejection ledger entry, oldest first
func (s *ProcurementService) ListRejections(ctx context.Context) ([]RejectionResponse, error) {
	rejections, err := s.ledger.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]RejectionResponse, 0, len(rejections))
	for _, rejection := range rejections {
		responses = append(responses, ToRejectionResponse(rejection))
	}
	return responses, nil
}

// publishEvents publishes and clears an aggregate's pending events
func (s *ProcurementService) publishEvents(ctx context.Context, aggregate shared.AggregateRoot) {
	events := aggregate.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	aggregate.ClearDomainEvents()
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.Error("failed to publish domain events", zap.Error(err))
	}
}
