package domain

import (
	"github.com/shopspring/decimal"

	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// KPISummary reúne os quatro indicadores de destaque do dashboard
type KPISummary struct {
	TotalSales   decimal.Decimal `json:"total_sales"`
	TotalTarget  decimal.Decimal `json:"total_target"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
	DeviationPct float64         `json:"deviation_pct"`
}

// Summarize calcula os KPIs sobre o conjunto filtrado. O desvio
// percentual é definido como 0 quando o objetivo total é 0, para
// evitar divisão por zero.
func Summarize(sales []*Sale) *KPISummary {
	summary := &KPISummary{}

	for _, sale := range sales {
		summary.TotalSales = summary.TotalSales.Add(sale.SalesAmount)
		summary.TotalTarget = summary.TotalTarget.Add(sale.TargetAmount)
		summary.TotalProfit = summary.TotalProfit.Add(sale.ProfitAmount)
	}

	if !summary.TotalTarget.IsZero() {
		deviation := summary.TotalSales.
			Sub(summary.TotalTarget).
			Div(summary.TotalTarget).
			Mul(decimal.NewFromInt(100))
		summary.DeviationPct = utils.RoundWithTwoDecimalPlace(deviation.InexactFloat64())
	}

	return summary
}
