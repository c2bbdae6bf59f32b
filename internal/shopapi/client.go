package shopapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DateDimension selects which order date the time-window search filters on.
type DateDimension string

const (
	DateAdded                DateDimension = "add"
	DateModified             DateDimension = "modified"
	DateDispatched           DateDimension = "dispatch"
	DatePaid                 DateDimension = "paid"
	DateLastPaymentOperation DateDimension = "last_payment_operation"
	DateDeclaredPayments     DateDimension = "declared_payments"
)

const (
	searchPath     = "/api/admin/%s/orders/search"
	requestTimeout = 30 * time.Second
	dateFormat     = "2006-01-02 15:04:05"
)

var (
	ErrNotConfigured = errors.New("shop API client is not configured")
	ErrUnexpected    = errors.New("unexpected shop API response")
)

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Reason)
}

type APIError struct {
	FaultCode   int
	FaultString string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("shop API fault %d: %s", e.FaultCode, e.FaultString)
}

// emptyResultFaults lists the (code, message fragment) pairs the shop API
// uses to report "no orders matched". Matching is case-insensitive on the
// fragment. The set was collected from observed responses and may be
// incomplete; unknown faults propagate as *APIError.
var emptyResultFaults = []struct {
	code     int
	fragment string
}{
	{2, "nie znaleziono zamówień"},
	{2, "no orders were found"},
	{0, "brak wyników"},
}

func isEmptyResultFault(code int, message string) bool {
	lower := strings.ToLower(message)
	for _, f := range emptyResultFaults {
		if f.code == code && strings.Contains(lower, f.fragment) {
			return true
		}
	}
	return false
}

type Client struct {
	http       *resty.Client
	apiKey     string
	apiVersion string
	shopURL    string
}

func NewClient(shopURL string, apiKey string, apiVersion string) *Client {
	http := resty.New().
		SetBaseURL(shopURL).
		SetHeader("X-API-KEY", apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(requestTimeout)

	return &Client{
		http:       http,
		apiKey:     apiKey,
		apiVersion: apiVersion,
		shopURL:    shopURL,
	}
}

// IsReady reports whether the client has enough configuration to talk to
// the shop. Checked by the scheduler before arming the timer.
func (c *Client) IsReady() bool {
	return c.shopURL != "" && c.apiKey != ""
}

func (c *Client) Status() Status {
	return Status{
		Ready:      c.IsReady(),
		ShopURL:    maskSecret(c.shopURL),
		APIKey:     maskSecret(c.apiKey),
		APIVersion: c.apiVersion,
	}
}

func (c *Client) GetBySerialNumbers(ctx context.Context, serialNumbers []string) ([]RawOrder, error) {
	if !c.IsReady() {
		return nil, fmt.Errorf("%w", ErrNotConfigured)
	}
	if len(serialNumbers) == 0 {
		return nil, fmt.Errorf("%w", &ValidationError{Reason: "serial number list is empty"})
	}

	req := searchRequest{
		Params: searchParams{OrdersSerialNumbers: serialNumbers},
	}
	resp, err := c.search(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *Client) GetByTimeWindow(ctx context.Context, from time.Time, to time.Time, dimension DateDimension) ([]RawOrder, error) {
	if !c.IsReady() {
		return nil, fmt.Errorf("%w", ErrNotConfigured)
	}
	if !from.Before(to) {
		return nil, fmt.Errorf("%w", &ValidationError{Reason: "window start must precede window end"})
	}

	req := searchRequest{
		Params: searchParams{
			OrdersRange: &ordersRange{
				OrdersDateRange: ordersDateRange{
					OrdersDateType:  string(dimension),
					OrdersDateBegin: from.UTC().Format(dateFormat),
					OrdersDateEnd:   to.UTC().Format(dateFormat),
				},
			},
		},
	}
	resp, err := c.search(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *Client) GetPage(ctx context.Context, pageIndex int, pageSize int, statuses []string) ([]RawOrder, error) {
	if !c.IsReady() {
		return nil, fmt.Errorf("%w", ErrNotConfigured)
	}
	if pageIndex < 0 || pageSize <= 0 {
		return nil, fmt.Errorf("%w", &ValidationError{Reason: "page index or page size out of range"})
	}

	req := searchRequest{
		Params: searchParams{
			OrdersStatuses: statuses,
			ResultsPage:    &pageIndex,
			ResultsLimit:   &pageSize,
		},
	}
	resp, err := c.search(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// GetPaginationInfo reads the order total off the response envelope and
// derives the page count for the given page size. The request asks for a
// single result so no full page is transferred just for the totals.
func (c *Client) GetPaginationInfo(ctx context.Context, pageSize int, statuses []string) (*PaginationInfo, error) {
	if !c.IsReady() {
		return nil, fmt.Errorf("%w", ErrNotConfigured)
	}
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w", &ValidationError{Reason: "page size out of range"})
	}

	page := 0
	countLimit := 1
	req := searchRequest{
		Params: searchParams{
			OrdersStatuses: statuses,
			ResultsPage:    &page,
			ResultsLimit:   &countLimit,
		},
	}
	resp, err := c.search(ctx, req)
	if err != nil {
		return nil, err
	}

	pages := resp.ResultsNumberAll / pageSize
	if resp.ResultsNumberAll%pageSize != 0 {
		pages++
	}
	return &PaginationInfo{
		TotalOrders:   resp.ResultsNumberAll,
		TotalPages:    pages,
		OrdersPerPage: pageSize,
	}, nil
}

func (c *Client) search(ctx context.Context, req searchRequest) (*searchResponse, error) {
	var result searchResponse

	response, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post(fmt.Sprintf(searchPath, c.apiVersion))
	if err != nil {
		// transport failures (refused connection, timeout) are shop API
		// failures as far as callers are concerned
		return nil, fmt.Errorf("%w: request failed: %w", ErrUnexpected, err)
	}

	if response.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnexpected, response.StatusCode())
	}

	if result.Errors != nil {
		if isEmptyResultFault(result.Errors.FaultCode, result.Errors.FaultString) {
			return &searchResponse{Results: []RawOrder{}}, nil
		}
		return nil, fmt.Errorf("%w", &APIError{
			FaultCode:   result.Errors.FaultCode,
			FaultString: result.Errors.FaultString,
		})
	}

	if result.Results == nil {
		result.Results = []RawOrder{}
	}
	return &result, nil
}

func maskSecret(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
