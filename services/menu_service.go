package services

import (
	"context"
	"javajam_server/structs"
	"javajam_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

type MenuService struct {
	logger         *gecho.Logger
	productService *ProductService
}

func NewMenuService(logger *gecho.Logger, productService *ProductService) *MenuService {
	return &MenuService{
		logger:         logger,
		productService: productService,
	}
}

// GetMenu maps the product catalog onto menu items with their offered
// size options.
func (ms *MenuService) GetMenu(ctx context.Context) ([]structs.MenuItem, error) {
	products, err := ms.productService.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]structs.MenuItem, 0, len(products))
	for i := range products {
		items = append(items, MenuItemFromProduct(&products[i]))
	}
	return items, nil
}

// MenuItemFromProduct builds the menu view of one product snapshot.
func MenuItemFromProduct(p *tables.Product) structs.MenuItem {
	item := structs.MenuItem{
		ID:    p.ProductID,
		Name:  p.ProductName,
		Icon:  "Coffee",
		Price: structs.PriceOptions{Single: &p.PriceSingle, Double: p.PriceDouble},
		Sizes: OfferedSizes(p),
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Image != nil {
		item.Image = *p.Image
	}
	return item
}

// StaticMenu is the legacy menu variant served without the database.
// It is the only place the endless-cup flat price still exists; the
// persisted schema has no column for it.
func (ms *MenuService) StaticMenu() []structs.MenuItem {
	endless := 2.00
	lait := 2.00
	laitDouble := 3.00
	capp := 4.75
	cappDouble := 5.25

	return []structs.MenuItem{
		{
			ID:          1,
			Name:        "Just Java",
			Icon:        "Coffee",
			Description: "Regular house blend, decaffeinated coffee, or flavor of the day.",
			Price:       structs.PriceOptions{Endless: &endless},
			Sizes:       []structs.Size{structs.SizeEndless},
		},
		{
			ID:          2,
			Name:        "Cafe au Lait",
			Icon:        "Milk",
			Description: "House blended coffee infused with steamed milk.",
			Price:       structs.PriceOptions{Single: &lait, Double: &laitDouble},
			Sizes:       []structs.Size{structs.SizeSingle, structs.SizeDouble},
		},
		{
			ID:          3,
			Name:        "Iced Cappuccino",
			Icon:        "IceCream",
			Description: "Sweetened espresso blended with icy-cold milk and served in a chilled glass.",
			Price:       structs.PriceOptions{Single: &capp, Double: &cappDouble},
			Sizes:       []structs.Size{structs.SizeSingle, structs.SizeDouble},
		},
	}
}
