package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	catalogapp "github.com/procurement/backend/internal/application/catalog"
	inventoryapp "github.com/procurement/backend/internal/application/inventory"
	partnerapp "github.com/procurement/backend/internal/application/partner"
	procurementapp "github.com/procurement/backend/internal/application/procurement"
	"github.com/procurement/backend/internal/domain/inventory"
	"github.com/procurement/backend/internal/domain/shared"
	"github.com/procurement/backend/internal/infrastructure/config"
	"github.com/procurement/backend/internal/infrastructure/event"
	"github.com/procurement/backend/internal/infrastructure/logger"
	"github.com/procurement/backend/internal/infrastructure/persistence/memory"
	"github.com/procurement/backend/internal/interfaces/console"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "procurement",
		Short: "Interactive procurement fulfillment console",
		Long: "Tracks purchase orders through goods receipt and quality inspection " +
			"into on-hand inventory, reconciling quantities at every stage.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "console",
		Short: "Start the interactive shell (same as running without arguments)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("starting procurement console",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
	)

	// Repositories
	ids := shared.NewDefaultSequence()
	supplierRepo := memory.NewSupplierRepository()
	itemRepo := memory.NewItemRepository()
	orderRepo := memory.NewPurchaseOrderRepository()
	receiptRepo := memory.NewGoodsReceiptRepository()
	lotRepo := memory.NewInspectionLotRepository()
	rejectionLedger := memory.NewRejectionLedger()
	stock := inventory.NewInventory()

	// Event bus
	eventBus := event.NewInMemoryEventBus(log)

	// Application services
	supplierService := partnerapp.NewSupplierService(ids, supplierRepo, log)
	itemService := catalogapp.NewItemService(ids, itemRepo, log)
	inventoryService := inventoryapp.NewInventoryService(stock, itemRepo, log)
	procurementService := procurementapp.NewProcurementService(
		ids, supplierRepo, itemRepo, orderRepo, receiptRepo, lotRepo,
		rejectionLedger, eventBus, log,
	)

	// Cross-context integration: accepted quantity -> inventory credit,
	// rejected quantity -> rejection ledger
	lineAcceptedHandler := procurementapp.NewLineAcceptedHandler(inventoryService, log)
	eventBus.Subscribe(lineAcceptedHandler)
	lineRejectedHandler := procurementapp.NewLineRejectedHandler(ids, orderRepo, rejectionLedger, log)
	eventBus.Subscribe(lineRejectedHandler)

	log.Info("event handlers registered",
		zap.Strings("line_accepted_events", lineAcceptedHandler.EventTypes()),
		zap.Strings("line_rejected_events", lineRejectedHandler.EventTypes()),
	)

	if cfg.Console.Banner {
		figure.NewFigure(cfg.App.Name, cfg.Console.BannerFont, true).Print()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shell := console.NewShell(
		supplierService, itemService, procurementService, inventoryService,
		os.Stdin, os.Stdout, log,
	)
	if err := shell.Run(ctx); err != nil {
		log.Error("shell terminated with error", zap.Error(err))
		return err
	}

	log.Info("console exited")
	return nil
}
