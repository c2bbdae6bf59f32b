package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/shopsync/internal/scheduler"
	"github.com/wellywell/shopsync/internal/shopapi"
	"github.com/wellywell/shopsync/internal/types"
	"github.com/wellywell/shopsync/internal/validate"
)

// Syncer is the manual-download surface of the orchestrator.
type Syncer interface {
	DownloadBySerialNumbers(ctx context.Context, serialNumbers []string, updateExisting bool) (types.SyncBatchResult, error)
	DownloadByWindow(ctx context.Context, from time.Time, to time.Time, dimension shopapi.DateDimension, updateExisting bool) (types.SyncBatchResult, error)
	DownloadAll(ctx context.Context, statuses []string, updateExisting bool) (types.SyncBatchResult, error)
}

type SyncScheduler interface {
	RunNow(ctx context.Context) (types.SyncBatchResult, error)
	RunStatusMonitoringNow(ctx context.Context) (types.SyncBatchResult, error)
	Status() types.SchedulerStatus
}

type StatusSource interface {
	Status() shopapi.Status
}

type OrderLister interface {
	GetOrders(ctx context.Context, filter types.OrderFilter) ([]types.Order, error)
	GetOrdersCount(ctx context.Context, filter types.OrderFilter) (int, error)
}

type HandlerSet struct {
	syncer    Syncer
	scheduler SyncScheduler
	shop      StatusSource
	orders    OrderLister
	validate  *validator.Validate
}

func NewHandlerSet(syncer Syncer, sched SyncScheduler, shop StatusSource, orders OrderLister) *HandlerSet {
	return &HandlerSet{
		syncer:    syncer,
		scheduler: sched,
		shop:      shop,
		orders:    orders,
		validate:  validator.New(),
	}
}

type downloadBySerialNumbersRequest struct {
	SerialNumbers  []string `json:"serialNumbers" validate:"required,min=1"`
	UpdateExisting bool     `json:"updateExisting"`
}

func (h *HandlerSet) HandleDownloadBySerialNumbers(w http.ResponseWriter, req *http.Request) {

	var body downloadBySerialNumbersRequest
	if !h.parseBody(w, req, &body) {
		return
	}

	if bad, ok := validate.ValidateSerialNumbers(body.SerialNumbers); !ok {
		http.Error(w, fmt.Sprintf("Invalid serial number %q", bad), http.StatusBadRequest)
		return
	}

	result, err := h.syncer.DownloadBySerialNumbers(req.Context(), body.SerialNumbers, body.UpdateExisting)
	if err != nil {
		h.handleSyncError(err, w)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type downloadByDateRangeRequest struct {
	DateFrom       time.Time `json:"dateFrom" validate:"required"`
	DateTo         time.Time `json:"dateTo" validate:"required"`
	DateDimension  string    `json:"dateDimension" validate:"omitempty,oneof=add modified dispatch paid last_payment_operation declared_payments"`
	UpdateExisting bool      `json:"updateExisting"`
}

func (h *HandlerSet) HandleDownloadByDateRange(w http.ResponseWriter, req *http.Request) {

	var body downloadByDateRangeRequest
	if !h.parseBody(w, req, &body) {
		return
	}

	dimension := shopapi.DateAdded
	if body.DateDimension != "" {
		dimension = shopapi.DateDimension(body.DateDimension)
	}

	result, err := h.syncer.DownloadByWindow(req.Context(), body.DateFrom, body.DateTo, dimension, body.UpdateExisting)
	if err != nil {
		h.handleSyncError(err, w)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type downloadAllRequest struct {
	Statuses       []string `json:"statuses"`
	UpdateExisting bool     `json:"updateExisting"`
}

func (h *HandlerSet) HandleDownloadAll(w http.ResponseWriter, req *http.Request) {

	var body downloadAllRequest
	if !h.parseBody(w, req, &body) {
		return
	}

	result, err := h.syncer.DownloadAll(req.Context(), body.Statuses, body.UpdateExisting)
	if err != nil {
		h.handleSyncError(err, w)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *HandlerSet) HandleRunSync(w http.ResponseWriter, req *http.Request) {

	result, err := h.scheduler.RunNow(req.Context())
	if err != nil {
		h.handleSyncError(err, w)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *HandlerSet) HandleRunStatusMonitoring(w http.ResponseWriter, req *http.Request) {

	result, err := h.scheduler.RunStatusMonitoringNow(req.Context())
	if err != nil {
		h.handleSyncError(err, w)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type statusResponse struct {
	Scheduler types.SchedulerStatus `json:"scheduler"`
	Shop      shopapi.Status        `json:"shop"`
}

// HandleStatus reports readiness and run state. Credentials in the shop
// part arrive already masked.
func (h *HandlerSet) HandleStatus(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Scheduler: h.scheduler.Status(),
		Shop:      h.shop.Status(),
	})
}

type listOrdersResponse struct {
	Orders []types.Order `json:"orders"`
	Total  int           `json:"total"`
}

func (h *HandlerSet) HandleGetOrders(w http.ResponseWriter, req *http.Request) {

	filter, err := parseOrderFilter(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	orders, err := h.orders.GetOrders(req.Context(), filter)
	if err != nil {
		logger.Errorf("Failed listing orders: %s", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	count, err := h.orders.GetOrdersCount(req.Context(), filter)
	if err != nil {
		logger.Errorf("Failed counting orders: %s", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, listOrdersResponse{Orders: orders, Total: count})
}

func parseOrderFilter(req *http.Request) (types.OrderFilter, error) {

	query := req.URL.Query()
	filter := types.OrderFilter{
		Status: query.Get("status"),
	}

	for name, target := range map[string]**time.Time{"dateFrom": &filter.DateFrom, "dateTo": &filter.DateTo} {
		if value := query.Get(name); value != "" {
			parsed, err := time.Parse(time.RFC3339, value)
			if err != nil {
				return filter, fmt.Errorf("could not parse %s", name)
			}
			*target = &parsed
		}
	}

	for name, target := range map[string]**float64{"minWorth": &filter.MinWorth, "maxWorth": &filter.MaxWorth} {
		if value := query.Get(name); value != "" {
			parsed, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return filter, fmt.Errorf("could not parse %s", name)
			}
			*target = &parsed
		}
	}

	if value := query.Get("limit"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return filter, errors.New("could not parse limit")
		}
		filter.Limit = parsed
	}
	if value := query.Get("offset"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return filter, errors.New("could not parse offset")
		}
		filter.Offset = parsed
	}

	return filter, nil
}

func (h *HandlerSet) parseBody(w http.ResponseWriter, req *http.Request, target any) bool {

	if err := json.NewDecoder(req.Body).Decode(target); err != nil {
		http.Error(w, "Could not parse body", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(target); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func (h *HandlerSet) handleSyncError(err error, w http.ResponseWriter) {

	var validationErr *shopapi.ValidationError
	var apiErr *shopapi.APIError

	switch {
	case errors.Is(err, scheduler.ErrSyncInProgress):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, shopapi.ErrNotConfigured):
		http.Error(w, "Shop API is not configured", http.StatusServiceUnavailable)
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	case errors.As(err, &apiErr):
		logger.Errorf("Shop API error: %s", apiErr)
		http.Error(w, "Shop API error", http.StatusBadGateway)
	case errors.Is(err, shopapi.ErrUnexpected):
		logger.Errorf("Shop API unreachable: %s", err)
		http.Error(w, "Shop API error", http.StatusBadGateway)
	default:
		logger.Errorf("Sync failed: %s", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {

	body, err := json.Marshal(payload)
	if err != nil {
		logger.Errorf("Failed to marshal response: %s", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(body); err != nil {
		logger.Errorf("Failed to write response: %s", err)
	}
}
