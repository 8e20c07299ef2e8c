package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// WeeklyTotal representa o total de vendas de uma semana iniciada na segunda-feira
type WeeklyTotal struct {
	WeekStart  time.Time       `json:"week_start"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

// WeeklyTotals agrupa as vendas filtradas em janelas semanais iniciadas
// na segunda-feira, somando o valor de vendas por janela. Semanas sem
// registros são omitidas. O resultado é ordenado por data ascendente e
// alimenta o gráfico de linha de vendas semanais.
func WeeklyTotals(sales []*Sale) []*WeeklyTotal {
	byWeek := make(map[time.Time]decimal.Decimal)

	for _, sale := range sales {
		weekStart := WeekStartOf(sale.Date)
		byWeek[weekStart] = byWeek[weekStart].Add(sale.SalesAmount)
	}

	totals := make([]*WeeklyTotal, 0, len(byWeek))
	for weekStart, total := range byWeek {
		totals = append(totals, &WeeklyTotal{
			WeekStart:  weekStart,
			TotalSales: total,
		})
	}

	sort.Slice(totals, func(i, j int) bool {
		return totals[i].WeekStart.Before(totals[j].WeekStart)
	})

	return totals
}

// ProductTotals representa os totais agregados de um produto
type ProductTotals struct {
	TotalSales  decimal.Decimal `json:"total_sales"`
	TotalTarget decimal.Decimal `json:"total_target"`
}

// ProductTotalsByProduct agrupa as vendas filtradas por produto, somando
// vendas e objetivo de forma independente por grupo. Alimenta o gráfico
// de barras (vendas vs objetivo) e o gráfico de pizza (apenas vendas).
func ProductTotalsByProduct(sales []*Sale) map[string]*ProductTotals {
	byProduct := make(map[string]*ProductTotals)

	for _, sale := range sales {
		totals, exists := byProduct[sale.Product]
		if !exists {
			totals = &ProductTotals{}
			byProduct[sale.Product] = totals
		}

		totals.TotalSales = totals.TotalSales.Add(sale.SalesAmount)
		totals.TotalTarget = totals.TotalTarget.Add(sale.TargetAmount)
	}

	return byProduct
}
