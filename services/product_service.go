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

type ProductService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewProductService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *ProductService {
	return &ProductService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// GetAllProducts returns the full catalog ordered by product id. The
// storefront menu is small enough that there is no pagination; ordering
// by the serial key keeps insertion order stable.
func (ps *ProductService) GetAllProducts(ctx context.Context) ([]tables.Product, error) {
	startTime := time.Now()

	if ps.cacheService != nil {
		cached, err := ps.cacheService.GetProducts()
		if err != nil {
			ps.logger.Warn("Failed to read products from cache", gecho.Field("error", err))
		} else if cached != nil {
			ps.logger.Debug("Products retrieved from cache",
				gecho.Field("count", len(cached)),
				gecho.Field("duration", time.Since(startTime)))
			return cached, nil
		}
	}

	products, err := database.Query[tables.Product](ps.db).
		OrderBy("product_id", database.ASC).
		Timeout(5 * time.Second).
		All(ctx)
	if err != nil {
		ps.logger.Error("Failed to fetch products",
			gecho.Field("error", err),
			gecho.Field("duration", time.Since(startTime)))
		return nil, fmt.Errorf("failed to fetch products: %w", lib.MapPgError(err))
	}

	if ps.cacheService != nil {
		go func() {
			if err := ps.cacheService.SetProducts(products); err != nil {
				ps.logger.Warn("Failed to cache products", gecho.Field("error", err))
			}
		}()
	}

	ps.logger.Debug("Products fetched successfully",
		gecho.Field("count", len(products)),
		gecho.Field("duration", time.Since(startTime)))
	return products, nil
}

// CountProducts returns the number of rows in the products table,
// bypassing the cache.
func (ps *ProductService) CountProducts(ctx context.Context) (int, error) {
	count, err := database.Query[tables.Product](ps.db).
		Timeout(5 * time.Second).
		Count(ctx)
	if err != nil {
		ps.logger.Error("Failed to count products", gecho.Field("error", err))
		return 0, fmt.Errorf("failed to count products: %w", lib.MapPgError(err))
	}
	return count, nil
}

// ValidatePriceUpdates checks the whole batch before any write: every
// single price must be strictly positive, and a double price, when
// present, must be too. A product without a double price is exempt.
func (ps *ProductService) ValidatePriceUpdates(updates []structs.PriceUpdate) error {
	if len(updates) == 0 {
		return fmt.Errorf("no products to update")
	}
	for _, u := range updates {
		if u.PriceSingle <= 0 {
			return fmt.Errorf("product %d: %w", u.ProductID, lib.ErrInvalidPrice)
		}
		if u.PriceDouble != nil && *u.PriceDouble <= 0 {
			return fmt.Errorf("product %d: %w", u.ProductID, lib.ErrInvalidPrice)
		}
	}
	return nil
}

// UpdatePrices applies a batch of price updates. Validation is
// all-or-nothing; persistence is not: writes go out sequentially keyed
// by product id, and a failure leaves earlier updates in place.
func (ps *ProductService) UpdatePrices(ctx context.Context, updates []structs.PriceUpdate) error {
	if err := ps.ValidatePriceUpdates(updates); err != nil {
		ps.logger.Warn("Rejected price update batch", gecho.Field("error", err))
		return err
	}

	startTime := time.Now()
	written := 0
	defer func() {
		// Any write at all makes the cached catalog stale.
		if written > 0 && ps.cacheService != nil {
			if err := ps.cacheService.InvalidateProducts(); err != nil {
				ps.logger.Warn("Failed to invalidate product cache", gecho.Field("error", err))
			}
		}
	}()

	for _, u := range updates {
		set := map[string]any{
			"price_single": u.PriceSingle,
			"price_double": u.PriceDouble, // nil stores NULL, disabling the double size
		}
		if u.ProductName != nil {
			set["product_name"] = *u.ProductName
		}

		_, err := database.Query[tables.Product](ps.db).
			Where("product_id", u.ProductID).
			Timeout(5 * time.Second).
			Update(ctx, set)
		if err != nil {
			ps.logger.Error("Failed to update product price",
				gecho.Field("product_id", u.ProductID),
				gecho.Field("error", err),
				gecho.Field("duration", time.Since(startTime)))
			return fmt.Errorf("failed to update product %d: %w", u.ProductID, lib.MapPgError(err))
		}
		written++
	}

	ps.logger.Info("Product prices updated",
		gecho.Field("count", written),
		gecho.Field("duration", time.Since(startTime)))
	return nil
}
