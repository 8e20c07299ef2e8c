package handler

import (
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// parseSalesFilters extrai os filtros do dashboard da query string.
// O parâmetro products ausente significa "todos os produtos"; presente
// mas vazio significa seleção explícita de nenhum (resultado vazio).
func parseSalesFilters(r *http.Request) (*domain.SalesFilters, error) {
	query := r.URL.Query()

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return nil, err
	}

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return nil, err
	}

	var products []string
	if rawValues, ok := query["products"]; ok {
		products = make([]string, 0)
		for _, raw := range rawValues {
			for _, product := range strings.Split(raw, ",") {
				product = strings.TrimSpace(product)
				if product != "" {
					products = append(products, product)
				}
			}
		}
	}

	return &domain.SalesFilters{
		StartDate: startDate,
		EndDate:   endDate,
		Products:  products,
	}, nil
}

// respondJSON serializa a resposta com o content-type correto
func respondJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("dashboard: failed to encode response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// dashboardQuery centraliza o fluxo comum dos handlers do dashboard:
// parse dos filtros, execução do pipeline e serialização
func dashboardQuery(
	r *http.Request,
	w http.ResponseWriter,
	operation string,
	run func(filters *domain.SalesFilters) (any, error),
) {
	logger := log.ForContext(r.Context())

	filters, err := parseSalesFilters(r)
	if err != nil {
		logger.WithFields(log.Fields{
			"operation": operation,
			"query":     r.URL.RawQuery,
			"error":     err.Error(),
		}).Warn("dashboard: invalid filter parameters")

		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return
	}

	if err := filters.Validate(); err != nil {
		logger.WithFields(log.Fields{
			"operation": operation,
			"error":     err.Error(),
		}).Warn("dashboard: inconsistent date range")

		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return
	}

	payload, err := run(filters)
	if err != nil {
		logger.WithFields(log.Fields{
			"operation": operation,
			"error":     err.Error(),
		}).Error("dashboard: pipeline execution failed")

		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
		return
	}

	respondJSON(w, r, payload)
}

// GetDashboard retorna a carga completa do dashboard para os filtros selecionados
func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("dashboard: building full dashboard payload")

		dashboardQuery(r, w, "dashboard", func(filters *domain.SalesFilters) (any, error) {
			return service.GetDashboard(r.Context(), filters)
		})
	})
}

// GetKPIs retorna os quatro indicadores de destaque
func GetKPIs(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dashboardQuery(r, w, "kpis", func(filters *domain.SalesFilters) (any, error) {
			return service.GetKPIs(r.Context(), filters)
		})
	})
}

// GetWeeklySales retorna a série semanal para o gráfico de linha
func GetWeeklySales(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dashboardQuery(r, w, "weekly-sales", func(filters *domain.SalesFilters) (any, error) {
			return service.GetWeeklySales(r.Context(), filters)
		})
	})
}

// GetProductTotals retorna os totais por produto para os gráficos de barras e pizza
func GetProductTotals(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dashboardQuery(r, w, "product-totals", func(filters *domain.SalesFilters) (any, error) {
			return service.GetProductTotals(r.Context(), filters)
		})
	})
}

// GetFilterBounds retorna os limites para os controles de filtro
func GetFilterBounds(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		bounds, err := service.GetFilterBounds(r.Context())
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to compute filter bounds")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		respondJSON(w, r, bounds)
	})
}
