package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/moving-backoffice/internal/config"
	domain "github.com/BruksfildServices01/moving-backoffice/internal/domain/overview"
	"github.com/BruksfildServices01/moving-backoffice/internal/httperr"
	"github.com/BruksfildServices01/moving-backoffice/internal/httpresp"
	"github.com/BruksfildServices01/moving-backoffice/internal/middleware"
	ucOverview "github.com/BruksfildServices01/moving-backoffice/internal/usecase/overview"
)

// ======================================================
// HANDLER
// ======================================================

type OverviewHandler struct {
	cfg      *config.Config
	registry *ucOverview.Registry
	present  *ucOverview.Presenter

	loadUC          *ucOverview.LoadView
	editRowUC       *ucOverview.EditRow
	requestSaveUC   *ucOverview.RequestConfirmation
	requestDeleteUC *ucOverview.RequestConfirmation
	resolveUC       *ucOverview.ResolveConfirmation
	editDraftUC     *ucOverview.EditDraft
	createUC        *ucOverview.CreateOrder
}

func NewOverviewHandler(
	cfg *config.Config,
	registry *ucOverview.Registry,
	present *ucOverview.Presenter,
	loadUC *ucOverview.LoadView,
	editRowUC *ucOverview.EditRow,
	requestSaveUC *ucOverview.RequestConfirmation,
	requestDeleteUC *ucOverview.RequestConfirmation,
	resolveUC *ucOverview.ResolveConfirmation,
	editDraftUC *ucOverview.EditDraft,
	createUC *ucOverview.CreateOrder,
) *OverviewHandler {
	return &OverviewHandler{
		cfg:             cfg,
		registry:        registry,
		present:         present,
		loadUC:          loadUC,
		editRowUC:       editRowUC,
		requestSaveUC:   requestSaveUC,
		requestDeleteUC: requestDeleteUC,
		resolveUC:       resolveUC,
		editDraftUC:     editDraftUC,
		createUC:        createUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// FieldChangeRequest carries one input change. Value is whatever the input
// produced: a string, a number or null.
type FieldChangeRequest struct {
	Field string          `json:"field" binding:"required"`
	Value json.RawMessage `json:"value"`
}

func (r FieldChangeRequest) raw() (string, bool) {
	v := strings.TrimSpace(string(r.Value))
	if v == "" || v == "null" {
		return "", true
	}
	if strings.HasPrefix(v, `"`) {
		var s string
		if err := json.Unmarshal(r.Value, &s); err != nil {
			return "", false
		}
		return s, true
	}
	var n json.Number
	if err := json.Unmarshal(r.Value, &n); err != nil {
		return "", false
	}
	return n.String(), true
}

type ResolveConfirmationRequest struct {
	Confirm *bool `json:"confirm" binding:"required"`
}

// ======================================================
// MOUNT / UNMOUNT
// ======================================================

func (h *OverviewHandler) Mount(c *gin.Context) {
	view, err := h.loadUC.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := middleware.IssueViewToken(h.cfg.JWTSecret, view.ID, h.cfg.ViewTTL)
	if err != nil {
		h.registry.Remove(view.ID)
		log.Printf("ERROR: sign view token: %v", err)
		httperr.Internal(c, "token_generation_failed", "Failed to open the overview.")
		return
	}

	table := h.present.Table(view)
	httpresp.Created(c, gin.H{
		"view_id": view.ID,
		"token":   token,
		"table":   table,
		"draft":   table.Draft,
	})
}

func (h *OverviewHandler) Get(c *gin.Context) {
	view, err := h.registry.Get(c.Param("viewID"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, h.present.Table(view))
}

func (h *OverviewHandler) Close(c *gin.Context) {
	if !h.registry.Remove(c.Param("viewID")) {
		httperr.NotFound(c, "view_not_found", "This overview is no longer open. Reload the page.")
		return
	}
	c.Status(http.StatusNoContent)
}

// ======================================================
// ROWS
// ======================================================

func (h *OverviewHandler) EditRow(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	field, raw, ok := bindFieldChange(c)
	if !ok {
		return
	}

	view, err := h.editRowUC.Execute(c.Request.Context(), c.Param("viewID"), orderID, field, raw)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, h.present.Table(view))
}

func (h *OverviewHandler) RequestSave(c *gin.Context) {
	h.requestConfirmation(c, h.requestSaveUC)
}

func (h *OverviewHandler) RequestDelete(c *gin.Context) {
	h.requestConfirmation(c, h.requestDeleteUC)
}

func (h *OverviewHandler) requestConfirmation(c *gin.Context, uc *ucOverview.RequestConfirmation) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	prompt, err := uc.Execute(c.Request.Context(), c.Param("viewID"), orderID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, prompt)
}

// ======================================================
// CONFIRMATIONS
// ======================================================

func (h *OverviewHandler) Resolve(c *gin.Context) {
	var req ResolveConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Body must be {\"confirm\": true|false}.")
		return
	}

	view, res, err := h.resolveUC.Execute(
		c.Request.Context(),
		c.Param("viewID"),
		c.Param("confirmationID"),
		*req.Confirm,
	)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"resolution": res,
		"table":      h.present.Table(view),
	})
}

// ======================================================
// DRAFT
// ======================================================

func (h *OverviewHandler) EditDraft(c *gin.Context) {
	field, raw, ok := bindFieldChange(c)
	if !ok {
		return
	}

	view, err := h.editDraftUC.Execute(c.Request.Context(), c.Param("viewID"), field, raw)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, h.present.Table(view))
}

func (h *OverviewHandler) SaveDraft(c *gin.Context) {
	view, res, err := h.createUC.Execute(c.Request.Context(), c.Param("viewID"))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"resolution": res,
		"table":      h.present.Table(view),
	})
}

// ======================================================
// HELPERS
// ======================================================

func orderIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("orderID"), 10, 64)
	if err != nil || id <= 0 {
		httperr.BadRequest(c, "invalid_order_id", "Invalid order id.")
		return 0, false
	}
	return id, true
}

func bindFieldChange(c *gin.Context) (domain.Field, string, bool) {
	var req FieldChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Body must be {\"field\": ..., \"value\": ...}.")
		return "", "", false
	}

	raw, ok := req.raw()
	if !ok {
		httperr.BadRequest(c, "invalid_field_value", "Invalid value for "+req.Field+".")
		return "", "", false
	}
	return domain.Field(req.Field), raw, true
}

// writeError maps business errors to their registered status; anything else
// is a bug and is logged.
func writeError(c *gin.Context, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		httperr.Business(c, be)
		return
	}
	log.Printf("ERROR: %s %s: %v", c.Request.Method, c.FullPath(), err)
	httperr.Internal(c, "internal_error", "Unexpected error.")
}
