package overview

import (
	"context"

	"github.com/BruksfildServices01/moving-backoffice/internal/models"
)

// Store is the remote collection store behind the overview. Lists are always
// fetched whole; writes replace whole records.
type Store interface {
	// -------- Reads --------
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	ListConsultants(ctx context.Context) ([]models.Consultant, error)
	ListOrderServiceDetails(ctx context.Context) ([]models.OrderServiceDetail, error)
	ListServiceTypes(ctx context.Context) ([]models.ServiceType, error)

	// -------- Create --------
	CreateOrder(
		ctx context.Context,
		req models.CreateOrderRequest,
	) (*models.Order, error)

	CreateOrderServiceDetail(
		ctx context.Context,
		req models.CreateOrderServiceDetailRequest,
	) (*models.OrderServiceDetail, error)

	// -------- Replace / delete --------
	UpdateOrder(ctx context.Context, o models.Order) error
	UpdateOrderServiceDetail(ctx context.Context, d models.OrderServiceDetail) error
	DeleteOrder(ctx context.Context, orderID int64) error
}
