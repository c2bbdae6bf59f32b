package db

import (
	"fmt"
)

type OrderExistsError struct {
	ExternalID string
}

func (e *OrderExistsError) Error() string {
	return fmt.Sprintf("Order %s exists", e.ExternalID)
}

type OrderNotFoundError struct {
	ExternalID string
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("Order %s not found", e.ExternalID)
}
