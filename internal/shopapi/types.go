package shopapi

import "encoding/json"

// RawOrder is the shop's order payload as returned by the search endpoints.
// It is read-only input for the transformer and is discarded afterwards.
type RawOrder struct {
	OrderID           string           `json:"orderId"`
	OrderSerialNumber json.Number      `json:"orderSerialNumber"`
	OrderDetails      *RawOrderDetails `json:"orderDetails"`
}

type RawOrderDetails struct {
	OrderStatus     string             `json:"orderStatus"`
	OrderAddDate    string             `json:"orderAddDate"`
	OrderChangeDate string             `json:"orderChangeDate"`
	Payments        *RawPayments       `json:"payments"`
	ProductsResults []RawProductResult `json:"productsResults"`
}

type RawPayments struct {
	OrderCurrency *RawCurrency `json:"orderCurrency"`
}

type RawCurrency struct {
	CurrencyID        string   `json:"orderCurrencyId"`
	OrderProductsCost *float64 `json:"orderProductsCost"`
}

type RawProductResult struct {
	ProductID       json.Number `json:"productId"`
	ProductQuantity *float64    `json:"productQuantity"`
}

type PaginationInfo struct {
	TotalOrders   int `json:"totalOrders"`
	TotalPages    int `json:"totalPages"`
	OrdersPerPage int `json:"ordersPerPage"`
}

// Status reports client readiness for the status endpoint. Credential
// values are masked before they leave this package.
type Status struct {
	Ready      bool   `json:"ready"`
	ShopURL    string `json:"shopUrl"`
	APIKey     string `json:"apiKey"`
	APIVersion string `json:"apiVersion"`
}

type searchRequest struct {
	Params searchParams `json:"params"`
}

type searchParams struct {
	OrdersSerialNumbers []string         `json:"ordersSerialNumbers,omitempty"`
	OrdersRange         *ordersRange     `json:"ordersRange,omitempty"`
	OrdersStatuses      []string         `json:"ordersStatuses,omitempty"`
	ResultsPage         *int             `json:"resultsPage,omitempty"`
	ResultsLimit        *int             `json:"resultsLimit,omitempty"`
}

type ordersRange struct {
	OrdersDateRange ordersDateRange `json:"ordersDateRange"`
}

type ordersDateRange struct {
	OrdersDateType  string `json:"ordersDateType"`
	OrdersDateBegin string `json:"ordersDateBegin"`
	OrdersDateEnd   string `json:"ordersDateEnd"`
}

type searchResponse struct {
	Results           []RawOrder  `json:"Results"`
	ResultsNumberAll  int         `json:"resultsNumberAll"`
	ResultsNumberPage int         `json:"resultsNumberPage"`
	ResultsLimit      int         `json:"resultsLimit"`
	Errors            *faultError `json:"errors"`
}

type faultError struct {
	FaultCode   int    `json:"faultCode"`
	FaultString string `json:"faultString"`
}
