package response

import (
	"github.com/restron/restron-api/internal/domain"
)

type Message struct {
	Message string `json:"message"`
}

type OrderResponse struct {
	Message string       `json:"message"`
	Order   domain.Order `json:"order"`
}

type OrdersResponse struct {
	Message string         `json:"message"`
	Count   int            `json:"count"`
	Orders  []domain.Order `json:"orders"`
}

func NewOrdersResponse(message string, orders []domain.Order) OrdersResponse {
	if orders == nil {
		orders = []domain.Order{}
	}

	return OrdersResponse{
		Message: message,
		Count:   len(orders),
		Orders:  orders,
	}
}

type SyncResponse struct {
	Message string `json:"message"`
	domain.SyncReport
}

type LoginResponse struct {
	Token string       `json:"token"`
	Store domain.Store `json:"store"`
}

type StoreResponse struct {
	Store domain.Store `json:"store"`
}

type ChargesResponse struct {
	Message string         `json:"message"`
	Charges domain.Charges `json:"charges"`
}

type ItemResponse struct {
	Message string      `json:"message"`
	Item    domain.Item `json:"item"`
}

type ItemsResponse struct {
	Message string        `json:"message"`
	Count   int           `json:"count"`
	Items   []domain.Item `json:"items"`
}

type VariantResponse struct {
	Message string         `json:"message"`
	Variant domain.Variant `json:"variant"`
}

type TableResponse struct {
	Message string       `json:"message"`
	Table   domain.Table `json:"table"`
}

type TablesResponse struct {
	Message string         `json:"message"`
	Count   int            `json:"count"`
	Tables  []domain.Table `json:"tables"`
}

type AdminLoginResponse struct {
	Token string       `json:"token"`
	Admin domain.Admin `json:"admin"`
}

type AdminResponse struct {
	Admin domain.Admin `json:"admin"`
}

type StoresResponse struct {
	Message string         `json:"message"`
	Count   int            `json:"count"`
	Stores  []domain.Store `json:"stores"`
}

func NewStoresResponse(message string, stores []domain.Store) StoresResponse {
	if stores == nil {
		stores = []domain.Store{}
	}

	return StoresResponse{
		Message: message,
		Count:   len(stores),
		Stores:  stores,
	}
}
