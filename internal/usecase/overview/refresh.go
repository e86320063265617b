package overview

import (
	"context"

	"golang.org/x/sync/errgroup"

	domain "github.com/BruksfildServices01/moving-backoffice/internal/domain/overview"
	"github.com/BruksfildServices01/moving-backoffice/internal/models"
)

// refetch reloads the two editable collections wholesale. The reference
// data is not reloaded; it lives as long as the view.
func refetch(ctx context.Context, store domain.Store) ([]models.Order, []models.OrderServiceDetail, error) {
	var (
		orders  []models.Order
		details []models.OrderServiceDetail
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		orders, err = store.ListOrders(gctx)
		return err
	})
	g.Go(func() (err error) {
		details, err = store.ListOrderServiceDetails(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return orders, details, nil
}
