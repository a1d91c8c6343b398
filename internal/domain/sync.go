package domain

import (
	"errors"
	"time"
)

var (
	ErrSyncMissingTable   = errors.New("tableId is required")
	ErrSyncMissingItems   = errors.New("items are required")
	ErrSyncMissingBilling = errors.New("billingSummary is required")
	ErrSyncInvalidStatus  = errors.New("invalid status value")
	ErrSyncInvalidLine    = errors.New("every item needs a variant and a quantity of at least 1")
)

// SyncRecord is an order a client built while offline. LocalRef is the
// client's own id for the record and is echoed back in the outcome.
type SyncRecord struct {
	LocalRef  string
	TableID   uint
	Username  string
	Items     []LineItem
	Bill      *Bill
	Status    string
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

func (r SyncRecord) Validate() error {
	if r.TableID == 0 {
		return ErrSyncMissingTable
	}
	if len(r.Items) == 0 {
		return ErrSyncMissingItems
	}
	for _, line := range r.Items {
		if line.Variant == "" || line.Quantity < 1 {
			return ErrSyncInvalidLine
		}
		if line.Quantity > MaxQuantity {
			return ErrQuantityOutOfRange
		}
		if !within(line.UnitPrice, MaxAmount) {
			return ErrAmountOutOfRange
		}
	}
	if r.Bill == nil {
		return ErrSyncMissingBilling
	}
	if err := r.Bill.CheckRange(); err != nil {
		return err
	}
	if r.Status != "" {
		if _, ok := ParseOrderStatus(r.Status); !ok {
			return ErrSyncInvalidStatus
		}
	}

	return nil
}

type SyncOutcome struct {
	LocalRef string `json:"localId"`
	Success  bool   `json:"success"`
	OrderID  uint   `json:"orderId,omitempty"`
	Error    string `json:"error,omitempty"`
}

type SyncReport struct {
	Outcomes  []SyncOutcome `json:"results"`
	Total     int           `json:"total"`
	Succeeded int           `json:"successCount"`
	Failed    int           `json:"failedCount"`
}

func (r *SyncReport) Add(outcome SyncOutcome) {
	r.Outcomes = append(r.Outcomes, outcome)
	r.Total++
	if outcome.Success {
		r.Succeeded++
	} else {
		r.Failed++
	}
}
