package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type StoreStatus string

const (
	StoreOpen   StoreStatus = "open"
	StoreClosed StoreStatus = "closed"
)

// Charges are the tax and service charge settings of a store. A
// ServiceChargeValue above 1 is a flat amount, otherwise a fraction of the subtotal.
type Charges struct {
	TaxEnabled           bool            `json:"taxEnabled"`
	TaxRate              decimal.Decimal `json:"taxRate"`
	ServiceChargeEnabled bool            `json:"serviceChargeEnabled"`
	ServiceChargeValue   decimal.Decimal `json:"serviceChargeValue"`
}

type Store struct {
	ID         uint        `json:"id"`
	AdminID    uint        `json:"adminId"`
	Name       string      `json:"storeName"`
	Email      string      `json:"email"`
	Password   string      `json:"-"`
	Address    string      `json:"address"`
	Phone      string      `json:"phoneNumber"`
	Status     StoreStatus `json:"status"`
	Charges    Charges     `json:"charges"`
	SocketID   string      `json:"-"`
	PushTokens []string    `json:"-"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

func (s Store) HasSession() bool {
	return s.SocketID != ""
}
