package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// ListSales retorna os registros filtrados para a tabela de detalhes
func ListSales(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("sales: listing filtered sale records")

		dashboardQuery(r, w, "sales", func(filters *domain.SalesFilters) (any, error) {
			return service.GetSales(r.Context(), filters)
		})
	})
}
