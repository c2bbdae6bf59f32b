package shopapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetByTimeWindow(t *testing.T) {

	from := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	testCases := []struct {
		name            string
		body            string
		code            int
		expectedErrorIs error
		expectedErrorAs any
		expectedLen     int
	}{
		{
			name:        "two orders",
			body:        `{"Results": [{"orderId": "abc-1"}, {"orderId": "abc-2"}], "resultsNumberAll": 2}`,
			code:        http.StatusOK,
			expectedLen: 2,
		},
		{
			name:        "empty result fault polish",
			body:        `{"errors": {"faultCode": 2, "faultString": "Nie znaleziono zamówień spełniających kryteria"}}`,
			code:        http.StatusOK,
			expectedLen: 0,
		},
		{
			name:        "empty result fault english",
			body:        `{"errors": {"faultCode": 2, "faultString": "No orders were found"}}`,
			code:        http.StatusOK,
			expectedLen: 0,
		},
		{
			name:        "empty result fault code zero",
			body:        `{"errors": {"faultCode": 0, "faultString": "Brak wyników"}}`,
			code:        http.StatusOK,
			expectedLen: 0,
		},
		{
			name:            "real fault",
			body:            `{"errors": {"faultCode": 17, "faultString": "Invalid date range"}}`,
			code:            http.StatusOK,
			expectedErrorAs: &APIError{},
		},
		{
			name:            "server error",
			body:            "smth",
			code:            http.StatusInternalServerError,
			expectedErrorIs: ErrUnexpected,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/admin/v3/orders/search", r.URL.Path)
				assert.Equal(t, "testkey", r.Header.Get("X-API-KEY"))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.code)
				fmt.Fprint(w, tc.body)
			}))
			defer svr.Close()

			c := NewClient(svr.URL, "testkey", "v3")
			res, err := c.GetByTimeWindow(context.Background(), from, to, DateModified)

			if tc.expectedErrorIs != nil {
				assert.ErrorIs(t, err, tc.expectedErrorIs)
				return
			}
			if tc.expectedErrorAs != nil {
				var apiErr *APIError
				assert.ErrorAs(t, err, &apiErr)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, res, tc.expectedLen)
		})
	}
}

func TestGetByTimeWindowSendsDateRange(t *testing.T) {

	var got searchRequest
	svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := json.NewDecoder(r.Body).Decode(&got)
		assert.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"Results": []}`)
	}))
	defer svr.Close()

	from := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	c := NewClient(svr.URL, "testkey", "v3")
	_, err := c.GetByTimeWindow(context.Background(), from, to, DatePaid)
	assert.NoError(t, err)

	assert.NotNil(t, got.Params.OrdersRange)
	assert.Equal(t, "paid", got.Params.OrdersRange.OrdersDateRange.OrdersDateType)
	assert.Equal(t, "2024-05-01 12:00:00", got.Params.OrdersRange.OrdersDateRange.OrdersDateBegin)
	assert.Equal(t, "2024-05-01 12:30:00", got.Params.OrdersRange.OrdersDateRange.OrdersDateEnd)
}

func TestTransportFailureIsAPIFailure(t *testing.T) {

	svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := svr.URL
	svr.Close()

	c := NewClient(deadURL, "testkey", "v3")
	_, err := c.GetBySerialNumbers(context.Background(), []string{"1"})

	assert.ErrorIs(t, err, ErrUnexpected)
}

func TestGetBySerialNumbersValidation(t *testing.T) {

	t.Run("not configured", func(t *testing.T) {
		c := NewClient("", "", "v3")
		_, err := c.GetBySerialNumbers(context.Background(), []string{"1"})
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("empty list", func(t *testing.T) {
		c := NewClient("http://localhost", "key", "v3")
		_, err := c.GetBySerialNumbers(context.Background(), nil)
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestGetByTimeWindowRejectsInvertedWindow(t *testing.T) {

	c := NewClient("http://localhost", "key", "v3")
	now := time.Now()

	_, err := c.GetByTimeWindow(context.Background(), now, now.Add(-time.Hour), DateAdded)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestGetPaginationInfo(t *testing.T) {

	testCases := []struct {
		name          string
		body          string
		expectedPages int
		expectedTotal int
	}{
		{"exact pages", `{"Results": [], "resultsNumberAll": 200}`, 2, 200},
		{"partial last page", `{"Results": [], "resultsNumberAll": 201}`, 3, 201},
		{"no orders", `{"Results": [], "resultsNumberAll": 0}`, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got searchRequest
			svr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, tc.body)
			}))
			defer svr.Close()

			c := NewClient(svr.URL, "testkey", "v3")
			info, err := c.GetPaginationInfo(context.Background(), 100, nil)

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedPages, info.TotalPages)
			assert.Equal(t, tc.expectedTotal, info.TotalOrders)
			assert.Equal(t, 100, info.OrdersPerPage)
			// only the totals are needed here, a single result is enough
			if assert.NotNil(t, got.Params.ResultsLimit) {
				assert.Equal(t, 1, *got.Params.ResultsLimit)
			}
		})
	}
}

func TestStatusMasksCredentials(t *testing.T) {

	c := NewClient("https://myshop.example.com", "secret-api-key-9876", "v3")
	status := c.Status()

	assert.True(t, status.Ready)
	assert.NotContains(t, status.ShopURL, "myshop")
	assert.NotContains(t, status.APIKey, "secret")
	assert.Equal(t, "9876", status.APIKey[len(status.APIKey)-4:])
	assert.Equal(t, "v3", status.APIVersion)
}

func TestIsEmptyResultFault(t *testing.T) {

	testCases := []struct {
		code    int
		message string
		want    bool
	}{
		{2, "Nie znaleziono zamówień", true},
		{2, "NIE ZNALEZIONO ZAMÓWIEŃ", true},
		{2, "no orders were found for given criteria", true},
		{0, "brak wyników", true},
		{2, "something else", false},
		{17, "Nie znaleziono zamówień", false},
	}

	for _, tc := range testCases {
		t.Run(tc.message, func(t *testing.T) {
			assert.Equal(t, tc.want, isEmptyResultFault(tc.code, tc.message))
		})
	}
}
