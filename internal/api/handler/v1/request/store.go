package request

import (
	"errors"
	"regexp"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/shopspring/decimal"

	"github.com/restron/restron-api/internal/domain"
)

const (
	passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`
)

var (
	errInvalidPassword = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")
	errInvalidRate     = errors.New("must be between 0 and 1")
	errNegative        = errors.New("must not be negative")
	errPriceTooLow     = errors.New("price should be at least 1")
	errAmountTooHigh   = errors.New("must not exceed " + domain.MaxAmount.String())
	errChargeTooHigh   = errors.New("must not exceed " + domain.MaxChargeValue.String())

	passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)
	phoneExp    = regexp.MustCompile(`^\d{10}$`)
)

type StoreDetails struct {
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
}

func (d StoreDetails) Validate() error {
	return validation.ValidateStruct(
		&d,
		validation.Field(&d.Address, validation.Required, validation.Length(15, 0)),
		validation.Field(&d.PhoneNumber, validation.Required, validation.Match(phoneExp)),
	)
}

type ChargeSettings struct {
	TaxEnabled           bool            `json:"taxEnabled"`
	TaxRate              decimal.Decimal `json:"taxRate"`
	ServiceChargeEnabled bool            `json:"serviceChargeEnabled"`
	ServiceChargeValue   decimal.Decimal `json:"serviceChargeValue"`
}

func (c ChargeSettings) Validate() error {
	return validation.ValidateStruct(
		&c,
		validation.Field(&c.TaxRate, validation.By(rate)),
		validation.Field(&c.ServiceChargeValue, validation.By(chargeValue)),
	)
}

type RegisterStoreRequest struct {
	StoreName      string         `json:"storeName"`
	Email          string         `json:"email"`
	Password       string         `json:"password"`
	StoreDetails   StoreDetails   `json:"storeDetails"`
	ChargeSettings ChargeSettings `json:"chargeSettings"`
}

func (req *RegisterStoreRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StoreName, validation.Required, validation.Length(3, 0)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required, validation.By(password)),
		validation.Field(&req.StoreDetails),
		validation.Field(&req.ChargeSettings),
	)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
}

// UpdateChargesRequest changes only the settings present in the body.
type UpdateChargesRequest struct {
	TaxEnabled           *bool            `json:"taxEnabled"`
	TaxRate              *decimal.Decimal `json:"taxRate"`
	ServiceChargeEnabled *bool            `json:"serviceChargeEnabled"`
	ServiceChargeValue   *decimal.Decimal `json:"serviceChargeValue"`
}

func (req *UpdateChargesRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TaxRate, validation.By(rate)),
		validation.Field(&req.ServiceChargeValue, validation.By(chargeValue)),
	)
}

type PushTokenRequest struct {
	Token string `json:"token"`
}

func (req *PushTokenRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Token, validation.Required, validation.Length(1, 4096)),
	)
}

func password(value interface{}) error {
	s, _ := value.(string)
	ok, err := passwordExp.MatchString(s)
	if err != nil || !ok {
		return errInvalidPassword
	}

	return nil
}

func rate(value interface{}) error {
	d, ok := decimalValue(value)
	if !ok {
		return nil
	}
	if d.IsNegative() || d.GreaterThan(domain.MaxRate) {
		return errInvalidRate
	}

	return nil
}

// amount accepts money between zero and the largest storable amount.
func amount(value interface{}) error {
	d, ok := decimalValue(value)
	if !ok {
		return nil
	}
	if d.IsNegative() {
		return errNegative
	}
	if d.GreaterThan(domain.MaxAmount) {
		return errAmountTooHigh
	}

	return nil
}

func chargeValue(value interface{}) error {
	d, ok := decimalValue(value)
	if !ok {
		return nil
	}
	if d.IsNegative() {
		return errNegative
	}
	if d.GreaterThan(domain.MaxChargeValue) {
		return errChargeTooHigh
	}

	return nil
}

func atLeastOne(value interface{}) error {
	d, ok := decimalValue(value)
	if !ok {
		return nil
	}
	if d.LessThan(decimal.NewFromInt(1)) {
		return errPriceTooLow
	}
	if d.GreaterThan(domain.MaxAmount) {
		return errAmountTooHigh
	}

	return nil
}

// decimalValue unwraps the field value ozzo passes to a rule. Nil pointers
// report false so optional fields are skipped.
func decimalValue(value interface{}) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v == nil {
			return decimal.Decimal{}, false
		}
		return *v, true
	default:
		return decimal.Decimal{}, false
	}
}
