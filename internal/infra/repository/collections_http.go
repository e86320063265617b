package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/BruksfildServices01/moving-backoffice/internal/models"
)

// StatusError is returned for any non-2xx answer from the backend.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// CollectionsHTTPRepository talks to the REST backend that owns orders,
// customers, consultants, service details and service types.
type CollectionsHTTPRepository struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

func NewCollectionsHTTPRepository(
	baseURL string,
	httpClient *http.Client,
	timeout time.Duration,
) *CollectionsHTTPRepository {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CollectionsHTTPRepository{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		timeout:    timeout,
	}
}

// --------------------------------------------------
// Lists
// --------------------------------------------------

func (r *CollectionsHTTPRepository) ListOrders(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	if err := r.do(ctx, http.MethodGet, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CollectionsHTTPRepository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var out []models.Customer
	if err := r.do(ctx, http.MethodGet, "/customers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CollectionsHTTPRepository) ListConsultants(ctx context.Context) ([]models.Consultant, error) {
	var out []models.Consultant
	if err := r.do(ctx, http.MethodGet, "/salesconsultants", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CollectionsHTTPRepository) ListOrderServiceDetails(ctx context.Context) ([]models.OrderServiceDetail, error) {
	var out []models.OrderServiceDetail
	if err := r.do(ctx, http.MethodGet, "/orderservicetypes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CollectionsHTTPRepository) ListServiceTypes(ctx context.Context) ([]models.ServiceType, error) {
	var out []models.ServiceType
	if err := r.do(ctx, http.MethodGet, "/servicetypes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *CollectionsHTTPRepository) CreateOrder(
	ctx context.Context,
	req models.CreateOrderRequest,
) (*models.Order, error) {

	var created models.Order
	if err := r.do(ctx, http.MethodPost, "/orders", req, &created); err != nil {
		return nil, err
	}
	if created.ID == 0 {
		return nil, fmt.Errorf("POST /orders: response carries no orderId")
	}
	return &created, nil
}

func (r *CollectionsHTTPRepository) CreateOrderServiceDetail(
	ctx context.Context,
	req models.CreateOrderServiceDetailRequest,
) (*models.OrderServiceDetail, error) {

	var created models.OrderServiceDetail
	if err := r.do(ctx, http.MethodPost, "/orderservicetypes", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// --------------------------------------------------
// Replace / delete
// --------------------------------------------------

func (r *CollectionsHTTPRepository) UpdateOrder(ctx context.Context, o models.Order) error {
	return r.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d", o.ID), o, nil)
}

func (r *CollectionsHTTPRepository) UpdateOrderServiceDetail(ctx context.Context, d models.OrderServiceDetail) error {
	return r.do(ctx, http.MethodPut, fmt.Sprintf("/orderservicetypes/%d", d.ID), d, nil)
}

func (r *CollectionsHTTPRepository) DeleteOrder(ctx context.Context, orderID int64) error {
	return r.do(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", orderID), nil, nil)
}

// --------------------------------------------------
// Transport
// --------------------------------------------------

// do sends one JSON request. A nil out skips decoding, so empty bodies on
// PUT and DELETE are fine.
func (r *CollectionsHTTPRepository) do(
	ctx context.Context,
	method string,
	path string,
	body any,
	out any,
) error {

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s %s: build request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}
