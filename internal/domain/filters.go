package domain

import (
	"fmt"
	"time"
)

// SalesFilters representa os filtros selecionados no dashboard.
// Products em nil significa "todos os produtos" (estado inicial do
// multiselect); um slice vazio significa seleção explícita de nenhum.
type SalesFilters struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Products  []string   `json:"products"`
}

// Validate verifica a consistência do período informado
func (f *SalesFilters) Validate() error {
	if f == nil {
		return nil
	}

	if f.StartDate != nil && f.EndDate != nil && f.StartDate.After(*f.EndDate) {
		return fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	return nil
}

// FilterSales aplica os filtros de período e produto sobre a tabela carregada.
// O período é inclusivo em ambas as pontas, comparado na granularidade de dia.
func FilterSales(sales []*Sale, filters *SalesFilters) []*Sale {
	if filters == nil {
		filters = &SalesFilters{}
	}

	var selected map[string]bool
	if filters.Products != nil {
		selected = make(map[string]bool, len(filters.Products))
		for _, product := range filters.Products {
			selected[product] = true
		}
	}

	filtered := make([]*Sale, 0, len(sales))
	for _, sale := range sales {
		day := DayOf(sale.Date)

		if filters.StartDate != nil && day.Before(DayOf(*filters.StartDate)) {
			continue
		}

		if filters.EndDate != nil && day.After(DayOf(*filters.EndDate)) {
			continue
		}

		// Seleção explícita (mesmo vazia) restringe os produtos
		if selected != nil && !selected[sale.Product] {
			continue
		}

		filtered = append(filtered, sale)
	}

	return filtered
}

// FilterBounds delimita os controles do dashboard: intervalo de datas
// observado na tabela carregada e a lista de produtos disponíveis.
type FilterBounds struct {
	MinDate  *time.Time `json:"min_date"`
	MaxDate  *time.Time `json:"max_date"`
	Products []string   `json:"products"`
}

// Bounds calcula os limites de data e a lista de produtos distintos,
// preservando a ordem da primeira ocorrência de cada produto.
func Bounds(sales []*Sale) *FilterBounds {
	bounds := &FilterBounds{
		Products: make([]string, 0),
	}

	seen := make(map[string]bool)
	for _, sale := range sales {
		day := DayOf(sale.Date)

		if bounds.MinDate == nil || day.Before(*bounds.MinDate) {
			minDate := day
			bounds.MinDate = &minDate
		}

		if bounds.MaxDate == nil || day.After(*bounds.MaxDate) {
			maxDate := day
			bounds.MaxDate = &maxDate
		}

		if !seen[sale.Product] {
			seen[sale.Product] = true
			bounds.Products = append(bounds.Products, sale.Product)
		}
	}

	return bounds
}
