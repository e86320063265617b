package handlers

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/moving-backoffice/internal/domain/overview"
	"github.com/BruksfildServices01/moving-backoffice/internal/httperr"
	"github.com/BruksfildServices01/moving-backoffice/internal/httpresp"
	"github.com/BruksfildServices01/moving-backoffice/internal/models"
)

// ReferenceHandler passes the backend collections through unchanged, for
// screens that only read.
type ReferenceHandler struct {
	store domain.Store
}

func NewReferenceHandler(store domain.Store) *ReferenceHandler {
	return &ReferenceHandler{store: store}
}

// ======================================================
// LIST CUSTOMERS (optional ?query= on name, phone, email)
// ======================================================
func (h *ReferenceHandler) ListCustomers(c *gin.Context) {
	customers, err := h.store.ListCustomers(c.Request.Context())
	if err != nil {
		loadFailed(c, "customers", err)
		return
	}

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	if query == "" {
		httpresp.List(c, customers)
		return
	}

	matches := make([]models.Customer, 0, len(customers))
	for _, cu := range customers {
		if strings.Contains(strings.ToLower(cu.Name), query) ||
			strings.Contains(cu.Phone.String(), query) ||
			strings.Contains(strings.ToLower(cu.Email), query) {
			matches = append(matches, cu)
		}
	}
	httpresp.List(c, matches)
}

func (h *ReferenceHandler) ListConsultants(c *gin.Context) {
	consultants, err := h.store.ListConsultants(c.Request.Context())
	if err != nil {
		loadFailed(c, "consultants", err)
		return
	}
	httpresp.List(c, consultants)
}

func (h *ReferenceHandler) ListServiceTypes(c *gin.Context) {
	serviceTypes, err := h.store.ListServiceTypes(c.Request.Context())
	if err != nil {
		loadFailed(c, "service types", err)
		return
	}
	httpresp.List(c, serviceTypes)
}

func (h *ReferenceHandler) ListOrders(c *gin.Context) {
	orders, err := h.store.ListOrders(c.Request.Context())
	if err != nil {
		loadFailed(c, "orders", err)
		return
	}
	httpresp.List(c, orders)
}

func (h *ReferenceHandler) ListOrderDetails(c *gin.Context) {
	details, err := h.store.ListOrderServiceDetails(c.Request.Context())
	if err != nil {
		loadFailed(c, "order details", err)
		return
	}
	httpresp.List(c, details)
}

func loadFailed(c *gin.Context, what string, err error) {
	log.Printf("ERROR: list %s: %v", what, err)
	httperr.Business(c, httperr.BusinessError{Code: "load_failed", Message: "Failed to load data"})
}
