package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type BillingMode string

const (
	// BillingVerified bills are computed by the server from catalog prices.
	BillingVerified BillingMode = "verified"
	// BillingTrusted bills are accepted verbatim from the client. No price
	// verification happens on this path.
	BillingTrusted BillingMode = "trusted"
)

var flatChargeThreshold = decimal.NewFromInt(1)

// MaxQuantity caps a single order line.
const MaxQuantity = 1000

// Amounts are stored as numeric(12,2) and the service charge value as
// numeric(12,4). Rates are fractions of the subtotal.
var (
	MaxAmount      = decimal.RequireFromString("9999999999.99")
	MaxChargeValue = decimal.RequireFromString("99999999.9999")
	MaxRate        = decimal.NewFromInt(1)
)

var (
	ErrQuantityOutOfRange = fmt.Errorf("quantity must be between 1 and %d", MaxQuantity)
	ErrAmountOutOfRange   = fmt.Errorf("amounts must be between 0 and %s", MaxAmount)
	ErrChargesOutOfRange  = errors.New("taxRate must be between 0 and 1 and serviceChargeValue must fit the stored precision")
)

// Bill is the billing snapshot stored with an order, including the charge
// settings that were in effect when it was computed.
type Bill struct {
	Subtotal            decimal.Decimal `json:"subTotal"`
	TaxAmount           decimal.Decimal `json:"taxAmount"`
	ServiceChargeAmount decimal.Decimal `json:"serviceChargeAmount"`
	Total               decimal.Decimal `json:"totalAmount"`
	Charges
}

// CheckRange rejects bills that cannot be stored.
func (b Bill) CheckRange() error {
	for _, amount := range []decimal.Decimal{b.Subtotal, b.TaxAmount, b.ServiceChargeAmount, b.Total} {
		if !within(amount, MaxAmount) {
			return ErrAmountOutOfRange
		}
	}

	return b.Charges.CheckRange()
}

func (c Charges) CheckRange() error {
	if !within(c.TaxRate, MaxRate) || !within(c.ServiceChargeValue, MaxChargeValue) {
		return ErrChargesOutOfRange
	}

	return nil
}

func (l LineItem) CheckRange() error {
	if l.Quantity < 1 || l.Quantity > MaxQuantity {
		return ErrQuantityOutOfRange
	}
	if !within(l.UnitPrice, MaxAmount) || !within(l.Total, MaxAmount) {
		return ErrAmountOutOfRange
	}

	return nil
}

// CheckOrderRange checks priced lines and the bill computed from them.
func CheckOrderRange(lines []LineItem, bill Bill) error {
	for _, line := range lines {
		if err := line.CheckRange(); err != nil {
			return err
		}
	}

	return bill.CheckRange()
}

func within(d, limit decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(limit)
}

// BillingSource says where an order's bill comes from: Verified or Trusted.
type BillingSource interface {
	Mode() BillingMode
	OrderLines() []LineItem
}

// Verified carries client lines whose prices must be checked against the catalog.
type Verified struct {
	Lines []LineItem
}

func (Verified) Mode() BillingMode          { return BillingVerified }
func (v Verified) OrderLines() []LineItem { return v.Lines }

// Trusted carries lines and a bill computed by a trusted point of sale.
type Trusted struct {
	Lines []LineItem
	Bill  Bill
}

func (Trusted) Mode() BillingMode          { return BillingTrusted }
func (t Trusted) OrderLines() []LineItem { return t.Lines }

func Subtotal(lines []LineItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	return subtotal
}

// ApplyCharges derives tax, service charge and total from a subtotal.
func ApplyCharges(subtotal decimal.Decimal, c Charges) Bill {
	tax := decimal.Zero
	if c.TaxEnabled {
		tax = subtotal.Mul(c.TaxRate)
	}

	serviceCharge := decimal.Zero
	if c.ServiceChargeEnabled {
		if c.ServiceChargeValue.GreaterThan(flatChargeThreshold) {
			serviceCharge = c.ServiceChargeValue
		} else {
			serviceCharge = subtotal.Mul(c.ServiceChargeValue)
		}
	}

	return Bill{
		Subtotal:            subtotal,
		TaxAmount:           tax,
		ServiceChargeAmount: serviceCharge,
		Total:               subtotal.Add(tax).Add(serviceCharge),
		Charges:             c,
	}
}

func ComputeBill(lines []LineItem, c Charges) Bill {
	return ApplyCharges(Subtotal(lines), c)
}
