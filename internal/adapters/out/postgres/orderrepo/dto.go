// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
//
// Orders are persisted with their owned children (line items, payments,
// adjustments) while distributor, cycle and supplier rows are referenced by
// foreign key only: those aggregates have their own repositories and are
// never written through an order.
package orderrepo

import (
	"time"

	"marketplace/internal/adapters/out/postgres/enterpriserepo"
	"marketplace/internal/adapters/out/postgres/ordercyclerepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/ordercycle"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The number carries a unique index (it is the external lookup key); state
// and completed_at are indexed for listing scans and the cart purge.
type OrderDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number string    `gorm:"size:16;uniqueIndex"`

	DistributorID uuid.UUID                     `gorm:"type:uuid;index"`
	Distributor   *enterpriserepo.EnterpriseDTO `gorm:"foreignKey:DistributorID"`

	OrderCycleID *uuid.UUID                       `gorm:"type:uuid;index"`
	OrderCycle   *ordercyclerepo.OrderCycleDTO    `gorm:"foreignKey:OrderCycleID"`

	State       string `gorm:"index"`
	CompletedAt *time.Time `gorm:"index"`
	CreatedAt   time.Time  `gorm:"index"`

	Email               string
	SpecialInstructions string

	ItemTotal       decimal.Decimal `gorm:"type:numeric(12,2)"`
	AdjustmentTotal decimal.Decimal `gorm:"type:numeric(12,2)"`
	PaymentTotal    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2)"`

	PaymentState  string
	ShipmentState string

	BillAddress        AddressDTO `gorm:"embedded;embeddedPrefix:bill_"`
	ShipAddress        AddressDTO `gorm:"embedded;embeddedPrefix:ship_"`
	ShippingMethodName string

	LineItems   []LineItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payments    []PaymentDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Adjustments []AdjustmentDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents an embedded billing or shipping address.
type AddressDTO struct {
	FirstName string
	LastName  string
	Address1  string
	Address2  string
	City      string
	Zipcode   string
	Phone     string
}

// LineItemDTO represents one variant quantity entry within an order. The
// supplier association resolves the order's suppliers transitively.
type LineItemDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;index"`

	SupplierID uuid.UUID                     `gorm:"type:uuid;index"`
	Supplier   *enterpriserepo.EnterpriseDTO `gorm:"foreignKey:SupplierID"`

	ProductName     string
	UnitDescription string
	Quantity        int
	Price           decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for line item entities.
func (LineItemDTO) TableName() string {
	return "line_items"
}

// PaymentDTO represents a payment entry against an order.
type PaymentDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;index"`
	Amount  decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// AdjustmentDTO represents a labelled amount applied on top of the item total.
type AdjustmentDTO struct {
	ID      uint      `gorm:"primaryKey;autoIncrement"`
	OrderID uuid.UUID `gorm:"type:uuid;index"`
	Label   string
	Amount  decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for adjustment entities.
func (AdjustmentDTO) TableName() string {
	return "adjustments"
}

// fromDomain converts an order domain aggregate to its database
// representation. Association pointers stay nil; only foreign keys and owned
// children are written.
func fromDomain(aggregate *order.Order) OrderDTO {
	var cycleID *uuid.UUID
	if cycle := aggregate.OrderCycle(); cycle != nil {
		raw := cycle.ID().Bytes()
		cycleID = &raw
	}

	details := aggregate.Details()
	orderID := aggregate.ID().Bytes()

	lineItems := make([]LineItemDTO, 0, len(details.LineItems))
	for _, li := range details.LineItems {
		lineItems = append(lineItems, LineItemDTO{
			ID:              li.ID().Bytes(),
			OrderID:         orderID,
			SupplierID:      li.Supplier().ID().Bytes(),
			ProductName:     li.Variant().Product().Name(),
			UnitDescription: li.Variant().UnitDescription(),
			Quantity:        li.Quantity(),
			Price:           li.Price(),
		})
	}

	payments := make([]PaymentDTO, 0, len(details.Payments))
	for _, p := range details.Payments {
		payments = append(payments, PaymentDTO{
			ID:      p.ID().Bytes(),
			OrderID: orderID,
			Amount:  p.Amount(),
		})
	}

	adjustments := make([]AdjustmentDTO, 0, len(details.Adjustments))
	for _, a := range details.Adjustments {
		adjustments = append(adjustments, AdjustmentDTO{
			OrderID: orderID,
			Label:   a.Label(),
			Amount:  a.Amount(),
		})
	}

	return OrderDTO{
		ID:                  orderID,
		Number:              aggregate.Number().String(),
		DistributorID:       aggregate.Distributor().ID().Bytes(),
		OrderCycleID:        cycleID,
		State:               aggregate.State().String(),
		CompletedAt:         aggregate.CompletedAt(),
		CreatedAt:           aggregate.CreatedAt(),
		Email:               details.Email,
		SpecialInstructions: details.SpecialInstructions,
		ItemTotal:           details.ItemTotal,
		AdjustmentTotal:     details.AdjustmentTotal,
		PaymentTotal:        details.PaymentTotal,
		Total:               details.Total,
		PaymentState:        string(details.PaymentState),
		ShipmentState:       string(details.ShipmentState),
		BillAddress:         addressFromDomain(details.BillAddress),
		ShipAddress:         addressFromDomain(details.ShipAddress),
		ShippingMethodName:  details.ShippingMethod.Name(),
		LineItems:           lineItems,
		Payments:            payments,
		Adjustments:         adjustments,
	}
}

func addressFromDomain(a order.Address) AddressDTO {
	return AddressDTO{
		FirstName: a.FirstName(),
		LastName:  a.LastName(),
		Address1:  a.Address1(),
		Address2:  a.Address2(),
		City:      a.City(),
		Zipcode:   a.Zipcode(),
		Phone:     a.Phone(),
	}
}

func addressToDomain(dto AddressDTO) (order.Address, error) {
	if dto.Address1 == "" {
		return order.Address{}, nil
	}
	return order.NewAddress(dto.FirstName, dto.LastName, dto.Address1, dto.Address2,
		dto.City, dto.Zipcode, dto.Phone)
}

// toDomain converts a database DTO to an order domain aggregate. The
// distributor association must be populated; the cycle and its coordinator
// must be populated when the order references one; line item suppliers must
// be populated.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.ParseNumber(dto.Number)
	if err != nil {
		return nil, err
	}

	distributor, err := enterpriserepo.ToDomain(*dto.Distributor)
	if err != nil {
		return nil, err
	}

	cycle, err := cycleToDomain(dto)
	if err != nil {
		return nil, err
	}

	lineItems, err := lineItemsToDomain(dto.LineItems)
	if err != nil {
		return nil, err
	}

	payments, err := paymentsToDomain(dto.Payments)
	if err != nil {
		return nil, err
	}

	adjustments, err := adjustmentsToDomain(dto.Adjustments)
	if err != nil {
		return nil, err
	}

	billAddress, err := addressToDomain(dto.BillAddress)
	if err != nil {
		return nil, err
	}

	shipAddress, err := addressToDomain(dto.ShipAddress)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, number, distributor, cycle,
		order.State(dto.State), dto.CompletedAt, dto.CreatedAt, order.Details{
			Email:               dto.Email,
			SpecialInstructions: dto.SpecialInstructions,
			ItemTotal:           dto.ItemTotal,
			AdjustmentTotal:     dto.AdjustmentTotal,
			PaymentTotal:        dto.PaymentTotal,
			Total:               dto.Total,
			PaymentState:        order.PaymentState(dto.PaymentState),
			ShipmentState:       order.ShipmentState(dto.ShipmentState),
			BillAddress:         billAddress,
			ShipAddress:         shipAddress,
			ShippingMethod:      order.NewShippingMethod(dto.ShippingMethodName),
			LineItems:           lineItems,
			Payments:            payments,
			Adjustments:         adjustments,
		})
}

func cycleToDomain(dto OrderDTO) (*ordercycle.OrderCycle, error) {
	if dto.OrderCycle == nil {
		return nil, nil
	}
	return ordercyclerepo.ToDomain(*dto.OrderCycle)
}

func lineItemsToDomain(dtos []LineItemDTO) ([]order.LineItem, error) {
	lineItems := make([]order.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}

		supplier, err := enterpriserepo.ToDomain(*dto.Supplier)
		if err != nil {
			return nil, err
		}

		product, err := order.NewProduct(dto.ProductName, supplier)
		if err != nil {
			return nil, err
		}

		variant, err := order.NewVariant(product, dto.UnitDescription)
		if err != nil {
			return nil, err
		}

		li, err := order.NewLineItem(id, variant, dto.Quantity, dto.Price)
		if err != nil {
			return nil, err
		}
		lineItems = append(lineItems, li)
	}
	return lineItems, nil
}

func paymentsToDomain(dtos []PaymentDTO) ([]order.Payment, error) {
	payments := make([]order.Payment, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}

		p, err := order.NewPayment(id, dto.Amount)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}

func adjustmentsToDomain(dtos []AdjustmentDTO) ([]order.Adjustment, error) {
	adjustments := make([]order.Adjustment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := order.NewAdjustment(dto.Label, dto.Amount)
		if err != nil {
			return nil, err
		}
		adjustments = append(adjustments, a)
	}
	return adjustments, nil
}
