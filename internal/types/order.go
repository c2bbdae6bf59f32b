package types

import "time"

// QuantityNA marks an order line whose quantity was not reported by the shop.
const QuantityNA = "N/A"

type OrderLine struct {
	ProductID string `json:"productId"`
	Quantity  string `json:"productQuantity"`
}

type Order struct {
	ID                   int         `json:"id" db:"id"`
	ExternalID           string      `json:"externalId" db:"external_id"`
	ExternalSerialNumber string      `json:"externalSerialNumber" db:"external_serial_number"`
	Currency             string      `json:"currency" db:"currency"`
	Status               string      `json:"status" db:"status"`
	ProductsCost         float64     `json:"orderProductsCost" db:"products_cost"`
	Products             []OrderLine `json:"orderProducts" db:"products"`
	ExternalCreatedAt    *time.Time  `json:"externalCreatedAt" db:"external_created_at"`
	ExternalUpdatedAt    *time.Time  `json:"externalUpdatedAt" db:"external_updated_at"`
	CreatedAt            time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time   `json:"updatedAt" db:"updated_at"`
}

type UpsertOutcome string

const (
	OutcomeCreated UpsertOutcome = "created"
	OutcomeUpdated UpsertOutcome = "updated"
	OutcomeSkipped UpsertOutcome = "skipped"
)

// SyncBatchResult aggregates one orchestrator run. Returned to the caller
// and logged, never persisted.
type SyncBatchResult struct {
	RunID   string   `json:"runId"`
	Total   int      `json:"total"`
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

type SchedulerStatus struct {
	IsScheduled     bool `json:"isScheduled"`
	IsRunning       bool `json:"isRunning"`
	IntervalMinutes int  `json:"intervalMinutes"`
	LookbackMinutes int  `json:"lookbackMinutes"`
	APIReady        bool `json:"apiReady"`
}

// OrderFilter narrows listing queries. Nil fields mean "no bound".
type OrderFilter struct {
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
	MinWorth *float64
	MaxWorth *float64
	Limit    int
	Offset   int
}
