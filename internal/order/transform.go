package order

import (
	"fmt"
	"strconv"
	"time"

	"github.com/wellywell/shopsync/internal/shopapi"
	"github.com/wellywell/shopsync/internal/types"
)

const externalDateFormat = "2006-01-02 15:04:05"

type TransformError struct {
	Reason string
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("could not transform order: %s", e.Reason)
}

// Transform maps a raw shop order into the internal schema. It is pure and
// null-safe: absent optional fields resolve to defaults, never panic. An
// order without a derivable external ID is a transform failure.
func Transform(raw shopapi.RawOrder) (types.Order, error) {

	if raw.OrderID == "" {
		return types.Order{}, fmt.Errorf("%w", &TransformError{Reason: "missing external order id"})
	}

	order := types.Order{
		ExternalID:           raw.OrderID,
		ExternalSerialNumber: raw.OrderSerialNumber.String(),
		Products:             []types.OrderLine{},
	}

	details := raw.OrderDetails
	if details == nil {
		return order, nil
	}

	order.Status = details.OrderStatus
	order.ExternalCreatedAt = parseExternalDate(details.OrderAddDate)
	order.ExternalUpdatedAt = parseExternalDate(details.OrderChangeDate)

	if details.Payments != nil && details.Payments.OrderCurrency != nil {
		currency := details.Payments.OrderCurrency
		order.Currency = currency.CurrencyID
		if currency.OrderProductsCost != nil {
			order.ProductsCost = *currency.OrderProductsCost
		}
	}

	for _, product := range details.ProductsResults {
		quantity := types.QuantityNA
		if product.ProductQuantity != nil {
			quantity = strconv.FormatFloat(*product.ProductQuantity, 'f', -1, 64)
		}
		order.Products = append(order.Products, types.OrderLine{
			ProductID: product.ProductID.String(),
			Quantity:  quantity,
		})
	}

	return order, nil
}

// parseExternalDate returns nil for absent or malformed dates. The shop
// reports times in UTC without an offset.
func parseExternalDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse(externalDateFormat, value)
	if err != nil {
		return nil
	}
	utc := parsed.UTC()
	return &utc
}
