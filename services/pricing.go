package services

import (
	"javajam_server/structs"
	"javajam_server/structs/tables"
)

// Pricing is pure computation over immutable product snapshots. The
// presentation layer owns the current snapshot and re-fetches after
// every write; nothing here touches shared state.

// ResolveSize maps a requested size onto one the product actually
// offers. A product without a double price sells singles no matter what
// the caller asks for.
func ResolveSize(p *tables.Product, requested structs.Size) structs.Size {
	if requested == structs.SizeDouble && p.HasDouble() {
		return structs.SizeDouble
	}
	return structs.SizeSingle
}

// UnitPrice returns the price of one unit at the given size. An absent
// price is zero, never an error.
func UnitPrice(p *tables.Product, size structs.Size) float64 {
	if ResolveSize(p, size) == structs.SizeDouble {
		if p.PriceDouble != nil {
			return *p.PriceDouble
		}
		return 0
	}
	return p.PriceSingle
}

// LineTotal computes quantity * unit price for a product snapshot.
func LineTotal(p *tables.Product, size structs.Size, quantity int) float64 {
	if quantity <= 0 {
		return 0
	}
	return float64(quantity) * UnitPrice(p, size)
}

// OptionPrice computes one unit's price from a menu item's price
// options. Items without a single price fall back to the flat endless
// price; this only occurs on the legacy static menu.
func OptionPrice(price structs.PriceOptions, size structs.Size) float64 {
	if price.Single == nil {
		if price.Endless != nil {
			return *price.Endless
		}
		return 0
	}

	var chosen *float64
	switch size {
	case structs.SizeDouble:
		chosen = price.Double
	case structs.SizeEndless:
		chosen = price.Endless
	default:
		chosen = price.Single
	}
	if chosen == nil {
		return 0
	}
	return *chosen
}

// MenuItemTotal computes quantity * OptionPrice.
func MenuItemTotal(item structs.MenuItem, size structs.Size, quantity int) float64 {
	if quantity <= 0 {
		return 0
	}
	return float64(quantity) * OptionPrice(item.Price, size)
}

// OfferedSizes lists the size options a product presents. Double only
// appears when the product carries a double price.
func OfferedSizes(p *tables.Product) []structs.Size {
	sizes := []structs.Size{structs.SizeSingle}
	if p.HasDouble() {
		sizes = append(sizes, structs.SizeDouble)
	}
	return sizes
}
