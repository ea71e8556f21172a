// Package presenter shapes authorized order aggregates into API responses.
// Projection is pure mapping: every order that reaches this package has
// already passed the visibility policy.
package presenter

import (
	"fmt"
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/order"
)

// dateFormat renders timestamps the way the storefront displays them,
// e.g. "August 28, 2026".
const dateFormat = "January 02, 2006"

// DistributorRef identifies the distributor of an order in list rows.
type DistributorRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OrderSummary is one row of the order listing.
type OrderSummary struct {
	ID                  string         `json:"id"`
	Number              string         `json:"number"`
	FullName            string         `json:"full_name"`
	Email               string         `json:"email"`
	Phone               string         `json:"phone"`
	CompletedAt         string         `json:"completed_at"`
	DisplayTotal        string         `json:"display_total"`
	EditPath            string         `json:"edit_path"`
	State               string         `json:"state"`
	PaymentState        string         `json:"payment_state"`
	ShipmentState       string         `json:"shipment_state"`
	PaymentsPath        string         `json:"payments_path"`
	ShipPath            string         `json:"ship_path"`
	ReadyToShip         bool           `json:"ready_to_ship"`
	CreatedAt           string         `json:"created_at"`
	DistributorName     string         `json:"distributor_name"`
	SpecialInstructions string         `json:"special_instructions"`
	PaymentCapturePath  string         `json:"payment_capture_path"`
	Distributor         DistributorRef `json:"distributor"`
}

// PaginationView is the listing metadata envelope.
type PaginationView struct {
	Results int `json:"results"`
	Pages   int `json:"pages"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// OrderListView is the full listing response body.
type OrderListView struct {
	Orders     []OrderSummary `json:"orders"`
	Pagination PaginationView `json:"pagination"`
}

// AddressView renders a billing or shipping address. The unseparated
// firstname/lastname keys are part of the published contract.
type AddressView struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	Zipcode   string `json:"zipcode"`
	Phone     string `json:"phone"`
}

// AdjustmentView renders one labelled amount on the order.
type AdjustmentView struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

// PaymentView renders one payment against the order.
type PaymentView struct {
	Amount string `json:"amount"`
}

// VariantView renders the purchasable unit of a line item.
type VariantView struct {
	ProductName     string `json:"product_name"`
	UnitDescription string `json:"unit_description"`
}

// LineItemView renders one variant quantity entry.
type LineItemView struct {
	Quantity int         `json:"quantity"`
	Price    string      `json:"price"`
	Variant  VariantView `json:"variant"`
}

// ShippingMethodView renders the chosen shipping method.
type ShippingMethodView struct {
	Name string `json:"name"`
}

// OrderDetail is the single-order response body.
type OrderDetail struct {
	Number              string             `json:"number"`
	ItemTotal           string             `json:"item_total"`
	Total               string             `json:"total"`
	State               string             `json:"state"`
	AdjustmentTotal     string             `json:"adjustment_total"`
	PaymentTotal        string             `json:"payment_total"`
	CompletedAt         string             `json:"completed_at"`
	ShipmentState       string             `json:"shipment_state"`
	PaymentState        string             `json:"payment_state"`
	Email               string             `json:"email"`
	SpecialInstructions string             `json:"special_instructions"`
	Adjustments         []AdjustmentView   `json:"adjustments"`
	Payments            []PaymentView      `json:"payments"`
	BillAddress         AddressView        `json:"bill_address"`
	ShipAddress         AddressView        `json:"ship_address"`
	LineItems           []LineItemView     `json:"line_items"`
	ShippingMethod      ShippingMethodView `json:"shipping_method"`
}

// ToOrderListView maps a listing query response into the API envelope.
func ToOrderListView(response queries.ListOrdersQueryResponse) OrderListView {
	summaries := make([]OrderSummary, 0, len(response.Orders))
	for _, o := range response.Orders {
		summaries = append(summaries, ToOrderSummary(o))
	}

	return OrderListView{
		Orders: summaries,
		Pagination: PaginationView{
			Results: response.Pagination.Results,
			Pages:   response.Pagination.Pages,
			Page:    response.Pagination.Page,
			PerPage: response.Pagination.PerPage,
		},
	}
}

// ToOrderSummary maps one order into a listing row.
func ToOrderSummary(o *order.Order) OrderSummary {
	details := o.Details()
	number := o.Number().String()

	summary := OrderSummary{
		ID:                  o.ID().String(),
		Number:              number,
		FullName:            o.FullName(),
		Email:               o.Email(),
		Phone:               o.Phone(),
		CompletedAt:         formatDate(o.CompletedAt()),
		DisplayTotal:        "$" + details.Total.StringFixed(2),
		EditPath:            fmt.Sprintf("/admin/orders/%s/edit", number),
		State:               o.State().String(),
		PaymentState:        string(details.PaymentState),
		ShipmentState:       string(details.ShipmentState),
		PaymentsPath:        fmt.Sprintf("/admin/orders/%s/payments", number),
		ShipPath:            fmt.Sprintf("/admin/orders/%s/ship", number),
		ReadyToShip:         o.ReadyToShip(),
		CreatedAt:           formatDate(ptr(o.CreatedAt())),
		SpecialInstructions: details.SpecialInstructions,
		PaymentCapturePath:  fmt.Sprintf("/admin/orders/%s/payments/capture", number),
	}

	if distributor := o.Distributor(); distributor != nil {
		summary.DistributorName = distributor.Name()
		summary.Distributor = DistributorRef{
			ID:   distributor.ID().String(),
			Name: distributor.Name(),
		}
	}

	return summary
}

// ToOrderDetail maps one order into the single-order response.
func ToOrderDetail(o *order.Order) OrderDetail {
	details := o.Details()

	adjustments := make([]AdjustmentView, 0, len(details.Adjustments))
	for _, a := range details.Adjustments {
		adjustments = append(adjustments, AdjustmentView{
			Label:  a.Label(),
			Amount: a.Amount().StringFixed(2),
		})
	}

	payments := make([]PaymentView, 0, len(details.Payments))
	for _, p := range details.Payments {
		payments = append(payments, PaymentView{Amount: p.Amount().StringFixed(2)})
	}

	lineItems := make([]LineItemView, 0, len(details.LineItems))
	for _, li := range details.LineItems {
		lineItems = append(lineItems, LineItemView{
			Quantity: li.Quantity(),
			Price:    li.Price().StringFixed(2),
			Variant: VariantView{
				ProductName:     li.Variant().Product().Name(),
				UnitDescription: li.Variant().UnitDescription(),
			},
		})
	}

	return OrderDetail{
		Number:              o.Number().String(),
		ItemTotal:           details.ItemTotal.StringFixed(2),
		Total:               details.Total.StringFixed(2),
		State:               o.State().String(),
		AdjustmentTotal:     details.AdjustmentTotal.StringFixed(2),
		PaymentTotal:        details.PaymentTotal.StringFixed(2),
		CompletedAt:         formatDate(o.CompletedAt()),
		ShipmentState:       string(details.ShipmentState),
		PaymentState:        string(details.PaymentState),
		Email:               details.Email,
		SpecialInstructions: details.SpecialInstructions,
		Adjustments:         adjustments,
		Payments:            payments,
		BillAddress:         toAddressView(details.BillAddress),
		ShipAddress:         toAddressView(details.ShipAddress),
		LineItems:           lineItems,
		ShippingMethod:      ShippingMethodView{Name: details.ShippingMethod.Name()},
	}
}

func toAddressView(a order.Address) AddressView {
	return AddressView{
		FirstName: a.FirstName(),
		LastName:  a.LastName(),
		Address1:  a.Address1(),
		Address2:  a.Address2(),
		City:      a.City(),
		Zipcode:   a.Zipcode(),
		Phone:     a.Phone(),
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateFormat)
}

func ptr(t time.Time) *time.Time {
	return &t
}
