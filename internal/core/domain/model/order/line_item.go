package order

import (
	"fmt"

	"marketplace/internal/core/domain/model/enterprise"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Product is the catalogue entry a line item ultimately points at. Its
// supplier is the enterprise that produces it; an order's suppliers are
// derived transitively through its line items and never stored on the order.
type Product struct {
	name     string
	supplier *enterprise.Enterprise
}

// NewProduct creates a product with its supplying enterprise.
func NewProduct(name string, supplier *enterprise.Enterprise) (Product, error) {
	if name == "" {
		return Product{}, errs.NewValueIsRequiredError("name")
	}
	if err := supplier.Validate(); err != nil {
		return Product{}, err
	}
	return Product{name: name, supplier: supplier}, nil
}

// Name returns the product's display name.
func (p Product) Name() string { return p.name }

// Supplier returns the enterprise producing this product.
func (p Product) Supplier() *enterprise.Enterprise { return p.supplier }

// Variant is a sellable variation of a product (size, packaging). The order
// API exposes the variant with its product name nested.
type Variant struct {
	product         Product
	unitDescription string
}

// NewVariant creates a variant of a product. unitDescription may be empty.
func NewVariant(product Product, unitDescription string) (Variant, error) {
	if product.name == "" {
		return Variant{}, errs.NewValueIsRequiredError("product")
	}
	return Variant{product: product, unitDescription: unitDescription}, nil
}

// Product returns the catalogue entry this variant belongs to.
func (v Variant) Product() Product { return v.product }

// UnitDescription returns the human-readable unit, e.g. "1kg bag".
func (v Variant) UnitDescription() string { return v.unitDescription }

// LineItem is a single variant quantity entry within an order.
type LineItem struct {
	id       kernel.UUID
	variant  Variant
	quantity int
	price    decimal.Decimal
}

// NewLineItem creates a line item for a variant. Quantity must be positive
// and the price non-negative.
func NewLineItem(id kernel.UUID, variant Variant, quantity int, price decimal.Decimal) (LineItem, error) {
	if err := id.Validate(); err != nil {
		return LineItem{}, err
	}
	if variant.product.name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("variant")
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if price.IsNegative() {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}
	return LineItem{id: id, variant: variant, quantity: quantity, price: price}, nil
}

// ID returns the line item identity.
func (li LineItem) ID() kernel.UUID { return li.id }

// Variant returns the sellable variation ordered.
func (li LineItem) Variant() Variant { return li.variant }

// Quantity returns the number of units ordered.
func (li LineItem) Quantity() int { return li.quantity }

// Price returns the unit price.
func (li LineItem) Price() decimal.Decimal { return li.price }

// Supplier returns the enterprise producing the line item's product.
func (li LineItem) Supplier() *enterprise.Enterprise { return li.variant.product.supplier }
