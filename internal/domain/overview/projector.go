package overview

import "github.com/BruksfildServices01/moving-backoffice/internal/models"

// Row pairs an order with its service detail. Detail is nil when the order has none.
type Row struct {
	Order  models.Order
	Detail *models.OrderServiceDetail
}

// Project builds one row per order, keeping the order sequence as given and
// attaching the first detail whose OrderID matches. Nothing is cached.
func Project(orders []models.Order, details []models.OrderServiceDetail) []Row {
	firstByOrder := make(map[int64]int, len(details))
	for i := range details {
		if _, ok := firstByOrder[details[i].OrderID]; !ok {
			firstByOrder[details[i].OrderID] = i
		}
	}

	rows := make([]Row, 0, len(orders))
	for _, o := range orders {
		row := Row{Order: o}
		if i, ok := firstByOrder[o.ID]; ok {
			d := details[i].Clone()
			row.Detail = &d
		}
		rows = append(rows, row)
	}
	return rows
}
