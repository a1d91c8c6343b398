package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/restron/restron-api/internal/domain"
)

var orderStatuses = func() []interface{} {
	statuses := make([]interface{}, len(domain.OrderStatuses))
	for i, s := range domain.OrderStatuses {
		statuses[i] = string(s)
	}
	return statuses
}()

// OrderVariant is one variant of an item with the quantity ordered.
type OrderVariant struct {
	Type     string          `json:"type"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

func (v OrderVariant) Validate() error {
	return validation.ValidateStruct(
		&v,
		validation.Field(&v.Type, validation.Required),
		validation.Field(&v.Quantity, validation.Required, validation.Min(1), validation.Max(domain.MaxQuantity)),
		validation.Field(&v.Price, validation.By(amount)),
	)
}

type OrderItem struct {
	ItemID   uint           `json:"itemId"`
	ItemName string         `json:"itemName"`
	Variants []OrderVariant `json:"variants"`
}

func (i OrderItem) Validate() error {
	return validation.ValidateStruct(
		&i,
		validation.Field(&i.ItemID, validation.Required),
		validation.Field(&i.ItemName, validation.Required),
		validation.Field(&i.Variants, validation.Required),
	)
}

// BillingSummary is the bill as the client computed it. It is only taken
// as is when Trusted is set; otherwise the server bills from the menu.
type BillingSummary struct {
	Trusted              bool            `json:"trusted"`
	SubTotal             decimal.Decimal `json:"subTotal"`
	TaxAmount            decimal.Decimal `json:"taxAmount"`
	ServiceChargeAmount  decimal.Decimal `json:"serviceChargeAmount"`
	TotalAmount          decimal.Decimal `json:"totalAmount"`
	TaxEnabled           bool            `json:"taxEnabled"`
	TaxRate              decimal.Decimal `json:"taxRate"`
	ServiceChargeEnabled bool            `json:"serviceChargeEnabled"`
	ServiceChargeValue   decimal.Decimal `json:"serviceChargeValue"`
}

func (b BillingSummary) Validate() error {
	return validation.ValidateStruct(
		&b,
		validation.Field(&b.SubTotal, validation.By(amount)),
		validation.Field(&b.TaxAmount, validation.By(amount)),
		validation.Field(&b.ServiceChargeAmount, validation.By(amount)),
		validation.Field(&b.TotalAmount, validation.By(amount)),
		validation.Field(&b.TaxRate, validation.By(rate)),
		validation.Field(&b.ServiceChargeValue, validation.By(chargeValue)),
	)
}

func (b BillingSummary) Bill() domain.Bill {
	return domain.Bill{
		Subtotal:            b.SubTotal,
		TaxAmount:           b.TaxAmount,
		ServiceChargeAmount: b.ServiceChargeAmount,
		Total:               b.TotalAmount,
		Charges: domain.Charges{
			TaxEnabled:           b.TaxEnabled,
			TaxRate:              b.TaxRate,
			ServiceChargeEnabled: b.ServiceChargeEnabled,
			ServiceChargeValue:   b.ServiceChargeValue,
		},
	}
}

type CreateOrderRequest struct {
	StoreID        uint            `json:"storeId"`
	TableID        uint            `json:"tableId"`
	Username       string          `json:"username"`
	Items          []OrderItem     `json:"items"`
	BillingSummary *BillingSummary `json:"billingSummary"`
}

func (req *CreateOrderRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StoreID, validation.Required),
		validation.Field(&req.TableID, validation.Required),
		validation.Field(&req.Username, validation.Length(0, 100)),
		validation.Field(&req.Items, validation.Required),
		validation.Field(&req.BillingSummary, validation.NotNil),
	)
}

// BillingSource picks trusted billing when the summary asks for it and
// verified billing otherwise.
func (req *CreateOrderRequest) BillingSource() domain.BillingSource {
	lines := Lines(req.Items)
	if req.BillingSummary != nil && req.BillingSummary.Trusted {
		return domain.Trusted{Lines: lines, Bill: req.BillingSummary.Bill()}
	}

	return domain.Verified{Lines: lines}
}

// Lines flattens items into one order line per variant.
func Lines(items []OrderItem) []domain.LineItem {
	var lines []domain.LineItem
	for _, item := range items {
		for _, v := range item.Variants {
			lines = append(lines, domain.LineItem{
				ItemID:    item.ItemID,
				ItemName:  item.ItemName,
				Variant:   v.Type,
				Quantity:  v.Quantity,
				UnitPrice: v.Price,
			})
		}
	}

	return lines
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (req *UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.In(orderStatuses...)),
	)
}

// SyncOrder is an order recorded by a point of sale while offline. It is
// validated on its own during sync so one bad record cannot reject the batch.
type SyncOrder struct {
	LocalID        string          `json:"localId"`
	TableID        uint            `json:"tableId"`
	Username       string          `json:"username"`
	Items          []OrderItem     `json:"items"`
	BillingSummary *BillingSummary `json:"billingSummary"`
	Status         string          `json:"status"`
	CreatedAt      *time.Time      `json:"createdAt"`
	UpdatedAt      *time.Time      `json:"updatedAt"`
}

func (o SyncOrder) Record() domain.SyncRecord {
	record := domain.SyncRecord{
		LocalRef:  o.LocalID,
		TableID:   o.TableID,
		Username:  o.Username,
		Items:     Lines(o.Items),
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	if o.BillingSummary != nil {
		bill := o.BillingSummary.Bill()
		record.Bill = &bill
	}

	return record
}

type SyncOrdersRequest struct {
	StoreID uint        `json:"storeId"`
	Orders  []SyncOrder `json:"orders"`
}

func (req *SyncOrdersRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StoreID, validation.Required),
		validation.Field(&req.Orders, validation.NotNil),
	)
}

func (req *SyncOrdersRequest) Records() []domain.SyncRecord {
	records := make([]domain.SyncRecord, len(req.Orders))
	for i, o := range req.Orders {
		records[i] = o.Record()
	}

	return records
}
