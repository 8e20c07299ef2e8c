package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Dashboard retorna as rotas que alimentam os KPIs, os gráficos e a
// tabela de detalhes do dashboard de vendas
func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/kpis",
			Method:  http.MethodGet,
			Handler: GetKPIs(service),
		},
		{
			Path:    "/v1/dashboard/weekly-sales",
			Method:  http.MethodGet,
			Handler: GetWeeklySales(service),
		},
		{
			Path:    "/v1/dashboard/product-totals",
			Method:  http.MethodGet,
			Handler: GetProductTotals(service),
		},
		{
			Path:    "/v1/dashboard/filters",
			Method:  http.MethodGet,
			Handler: GetFilterBounds(service),
		},
	}
}

// Sales retorna a rota da tabela de detalhes
func Sales(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
	}
}

// Cache retorna as rotas de operação do cache de vendas
func Cache(service *scheduler.CacheWarmService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cache/refresh",
			Method:  http.MethodPost,
			Handler: RefreshCache(service),
		},
		{
			Path:    "/v1/cache/status",
			Method:  http.MethodGet,
			Handler: GetCacheStatus(service),
		},
	}
}
