package domain

// DashboardResponse é a carga completa de uma renderização do dashboard:
// os quatro KPIs, as séries dos três gráficos e a tabela de detalhes.
type DashboardResponse struct {
	KPIs          *KPISummary               `json:"kpis"`
	WeeklySales   []*WeeklyTotal            `json:"weekly_sales"`
	ProductTotals map[string]*ProductTotals `json:"product_totals"`
	Sales         []*Sale                   `json:"sales"`
	Filters       *SalesFilters             `json:"filters"`
}

// BuildDashboard executa os estágios de filtro e agregação sobre a
// tabela carregada. Cada estágio é uma função pura; a resposta inteira
// é recalculada a cada interação que altera os filtros.
func BuildDashboard(sales []*Sale, filters *SalesFilters) *DashboardResponse {
	filtered := FilterSales(sales, filters)

	return &DashboardResponse{
		KPIs:          Summarize(filtered),
		WeeklySales:   WeeklyTotals(filtered),
		ProductTotals: ProductTotalsByProduct(filtered),
		Sales:         filtered,
		Filters:       filters,
	}
}
