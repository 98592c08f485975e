package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	catalogapp "github.com/procurement/backend/internal/application/catalog"
	inventoryapp "github.com/procurement/backend/internal/application/inventory"
	partnerapp "github.com/procurement/backend/internal/application/partner"
	procurementapp "github.com/procurement/backend/internal/application/procurement"
	"github.com/procurement/backend/internal/domain/inventory"
	"github.com/procurement/backend/internal/domain/shared"
	"github.com/procurement/backend/internal/infrastructure/event"
	"github.com/procurement/backend/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// runScript wires the full pipeline, feeds the script to the shell, and
// returns everything it printed.
func runScript(t *testing.T, script string) string {
	t.Helper()
	log := zap.NewNop()

	ids := shared.NewDefaultSequence()
	suppliers := memory.NewSupplierRepository()
	items := memory.NewItemRepository()
	orders := memory.NewPurchaseOrderRepository()
	receipts := memory.NewGoodsReceiptRepository()
	lots := memory.NewInspectionLotRepository()
	ledger := memory.NewRejectionLedger()
	stock := inventory.NewInventory()

	bus := event.NewInMemoryEventBus(log)
	inventoryService := inventoryapp.NewInventoryService(stock, items, log)
	bus.Subscribe(procurementapp.NewLineAcceptedHandler(inventoryService, log))
	bus.Subscribe(procurementapp.NewLineRejectedHandler(ids, orders, ledger, log))

	supplierService := partnerapp.NewSupplierService(ids, suppliers, log)
	itemService := catalogapp.NewItemService(ids, items, log)
	procurementService := procurementapp.NewProcurementService(
		ids, suppliers, items, orders, receipts, lots, ledger, bus, log,
	)

	var out bytes.Buffer
	shell := NewShell(supplierService, itemService, procurementService, inventoryService,
		strings.NewReader(script), &out, log)

	require.NoError(t, shell.Run(context.Background()))
	return out.String()
}

// Drives the whole pipeline through the menu: register master data, order
// 10 units, receive 4, accept 3, over-reject 5 (clamps to 1), then read
// the summaries.
func TestShell_FullPipeline(t *testing.T) {
	script := strings.Join([]string{
		"1", "Fresh Farms", "orders@example.com",
		"2", "Rice", "kg",
		"3", "1000", "1001", "10", "0",
		"4", "1002", "4",
		"5", "1003",
		"6", "1004",
		"1", "A", "3",
		"1", "R", "5", "spoiled",
		"0",
		"7",
		"8",
		"0",
	}, "\n") + "\n"

	out := runScript(t, script)

	assert.Contains(t, out, `supplier #1000 "Fresh Farms" registered`)
	assert.Contains(t, out, `item #1001 "Rice" registered`)
	assert.Contains(t, out, "purchase order #1002")
	assert.Contains(t, out, "goods receipt #1003 opened for order #1002")
	assert.Contains(t, out, "recorded 4, 6 still open")
	assert.Contains(t, out, "inspection lot #1004 opened for receipt #1003")
	assert.Contains(t, out, "applied 3\n")
	assert.Contains(t, out, "applied 1 of 5 (clamped to undisposed)")
	assert.Contains(t, out, "accepted 3, rejected 1 (reason: spoiled)")
	assert.Contains(t, out, "3 kg")
	assert.Contains(t, out, "6 kg open")
	assert.Contains(t, out, "qty 5, reason: spoiled")
	assert.Contains(t, out, "bye")
}

func TestShell_SurfacesErrorsAndContinues(t *testing.T) {
	script := strings.Join([]string{
		"4", "999", // receive against unknown order
		"1", "Acme", "", // shell still works afterwards
		"0",
	}, "\n") + "\n"

	out := runScript(t, script)

	assert.Contains(t, out, "error: Resource not found")
	assert.Contains(t, out, `supplier #1000 "Acme" registered`)
}

func TestShell_ClampReportedOnOverReceipt(t *testing.T) {
	script := strings.Join([]string{
		"1", "Acme", "",
		"2", "Beans", "kg",
		"3", "1000", "1001", "5", "0",
		"4", "1002", "9",
		"0",
	}, "\n") + "\n"

	out := runScript(t, script)

	assert.Contains(t, out, "recorded 5 of 9 (clamped to outstanding), 0 still open")
}

func TestShell_ExitsOnEOF(t *testing.T) {
	out := runScript(t, "7\n") // input ends mid-session

	assert.Contains(t, out, "inventory:")
}

func TestShell_UnknownChoice(t *testing.T) {
	out := runScript(t, "42\n0\n")
	assert.Contains(t, out, "unknown choice")
}
