package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/moving-backoffice/internal/config"
	domain "github.com/BruksfildServices01/moving-backoffice/internal/domain/overview"
	"github.com/BruksfildServices01/moving-backoffice/internal/handlers"
	"github.com/BruksfildServices01/moving-backoffice/internal/middleware"
	ucOverview "github.com/BruksfildServices01/moving-backoffice/internal/usecase/overview"
)

// RegisterRoutes wires every endpoint. db may be nil when auditing is
// disabled; the audit log endpoint is then not mounted.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	store domain.Store,
	registry *ucOverview.Registry,
	auditor ucOverview.Auditor,
) {

	// ======================================================
	// 🧠 USE CASES — OVERVIEW
	// ======================================================
	loadViewUC := ucOverview.NewLoadView(store, registry, auditor, cfg.Timezone)
	editRowUC := ucOverview.NewEditRow(registry)
	requestSaveUC := ucOverview.NewRequestSave(registry)
	requestDeleteUC := ucOverview.NewRequestDelete(registry)
	resolveUC := ucOverview.NewResolveConfirmation(store, registry, auditor)
	editDraftUC := ucOverview.NewEditDraft(registry)
	createOrderUC := ucOverview.NewCreateOrder(store, registry, auditor)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	overviewHandler := handlers.NewOverviewHandler(
		cfg,
		registry,
		ucOverview.NewPresenter(cfg.CurrencySuffix),
		loadViewUC,
		editRowUC,
		requestSaveUC,
		requestDeleteUC,
		resolveUC,
		editDraftUC,
		createOrderUC,
	)
	referenceHandler := handlers.NewReferenceHandler(store)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// READ-ONLY COLLECTIONS
		// ------------------------------
		api.GET("/customers", referenceHandler.ListCustomers)
		api.GET("/consultants", referenceHandler.ListConsultants)
		api.GET("/service-types", referenceHandler.ListServiceTypes)
		api.GET("/orders", referenceHandler.ListOrders)
		api.GET("/order-details", referenceHandler.ListOrderDetails)

		// ------------------------------
		// 🔐 OVERVIEW
		// ------------------------------
		api.POST("/views", overviewHandler.Mount)

		view := api.Group("/views/:viewID")
		view.Use(middleware.ViewAuth(cfg))
		{
			view.GET("", overviewHandler.Get)
			view.DELETE("", overviewHandler.Close)

			view.PATCH("/rows/:orderID", overviewHandler.EditRow)
			view.POST("/rows/:orderID/save", overviewHandler.RequestSave)
			view.POST("/rows/:orderID/delete", overviewHandler.RequestDelete)

			view.POST("/confirmations/:confirmationID", overviewHandler.Resolve)

			view.PATCH("/draft", overviewHandler.EditDraft)
			view.POST("/draft/save", overviewHandler.SaveDraft)
		}

		if db != nil {
			auditLogsHandler := handlers.NewAuditLogsHandler(db, cfg.Timezone)
			api.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
