package services

import (
	"context"
	"fmt"
	"javajam_server/database"
	"javajam_server/lib"
	"javajam_server/structs"
	"javajam_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
)

type OrderService struct {
	logger         *gecho.Logger
	db             *database.DB
	productService *ProductService
}

func NewOrderService(logger *gecho.Logger, db *database.DB, productService *ProductService) *OrderService {
	return &OrderService{
		logger:         logger,
		db:             db,
		productService: productService,
	}
}

// DropEmptyLines removes lines with a non-positive quantity. They are
// silently discarded, never an error.
func DropEmptyLines(lines []structs.OrderLineRequest) []structs.OrderLineRequest {
	valid := make([]structs.OrderLineRequest, 0, len(lines))
	for _, line := range lines {
		if line.Quantity > 0 {
			valid = append(valid, line)
		}
	}
	return valid
}

// validateLine checks that the line references a known product with a
// usable price for the selected size. Subtotals are client-computed and
// stored as given.
func validateLine(line structs.OrderLineRequest, catalog map[int]*tables.Product) error {
	product, ok := catalog[line.ProductID]
	if !ok {
		return fmt.Errorf("%w: %d", lib.ErrProductNotFound, line.ProductID)
	}

	if line.IsDouble {
		if product.PriceDouble == nil || *product.PriceDouble <= 0 {
			return fmt.Errorf("%w: product %d has no double price", lib.ErrNoPriceForSize, line.ProductID)
		}
	} else if product.PriceSingle <= 0 {
		return fmt.Errorf("%w: product %d", lib.ErrNoPriceForSize, line.ProductID)
	}

	return nil
}

// PlaceOrder persists an order. Lines with quantity <= 0 are dropped
// first; every surviving line is validated against the catalog before
// any write. All lines go out as one multi-row insert, so a failure
// leaves nothing behind.
func (os *OrderService) PlaceOrder(ctx context.Context, req *structs.OrderRequest) (*structs.OrderConfirmation, error) {
	startTime := time.Now()

	lines := DropEmptyLines(req.Lines)
	if len(lines) == 0 {
		os.logger.Debug("Order contained no lines with positive quantity, nothing to insert")
		return &structs.OrderConfirmation{
			Reference:   lib.GenerateOrderReference(),
			LinesPlaced: 0,
		}, nil
	}

	products, err := os.productService.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}

	catalog := make(map[int]*tables.Product, len(products))
	for i := range products {
		catalog[products[i].ProductID] = &products[i]
	}

	// Validate the whole batch before the first write.
	for _, line := range lines {
		if err := validateLine(line, catalog); err != nil {
			os.logger.Warn("Rejected order line",
				gecho.Field("product_id", line.ProductID),
				gecho.Field("error", err))
			return nil, err
		}
	}

	details := make([]tables.OrderDetail, 0, len(lines))
	for _, line := range lines {
		productID := line.ProductID
		details = append(details, tables.OrderDetail{
			ProductID: &productID,
			Quantity:  line.Quantity,
			IsDouble:  line.IsDouble,
			Subtotal:  line.Subtotal,
		})
	}

	_, err = database.Query[tables.OrderDetail](os.db).
		Timeout(5 * time.Second).
		InsertMany(ctx, details)
	if err != nil {
		os.logger.Error("Failed to insert order lines",
			gecho.Field("count", len(details)),
			gecho.Field("error", err),
			gecho.Field("duration", time.Since(startTime)))
		return nil, fmt.Errorf("failed to place order: %w", lib.MapPgError(err))
	}

	confirmation := &structs.OrderConfirmation{
		Reference:   lib.GenerateOrderReference(),
		LinesPlaced: len(details),
	}

	os.logger.Info("Order placed",
		gecho.Field("reference", confirmation.Reference),
		gecho.Field("lines", confirmation.LinesPlaced),
		gecho.Field("duration", time.Since(startTime)))
	return confirmation, nil
}
