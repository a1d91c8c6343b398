package domain

import (
	"fmt"
	"strings"
	"time"
)

type Table struct {
	ID        uint      `json:"id"`
	StoreID   uint      `json:"storeId"`
	Number    int       `json:"tableNumber"`
	QRLink    string    `json:"qrLink"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderingLink is the deep link a table's QR code points to.
func OrderingLink(clientURL string, storeID, tableID uint) string {
	return fmt.Sprintf("%s/order/%d/%d", strings.TrimRight(clientURL, "/"), storeID, tableID)
}
