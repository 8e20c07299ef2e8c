package cache

import (
	"sync"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// SalesCache guarda a última tabela de vendas carregada junto com o
// instante do carregamento. Uma única entrada basta porque a consulta
// de carga é fixa. O cache é injetado como dependência explícita; não
// há singleton de processo.
type SalesCache struct {
	mu        sync.Mutex
	sales     []*domain.Sale
	fetchedAt time.Time
	ttl       time.Duration

	// now é substituível nos testes
	now func() time.Time
}

func NewSalesCache(ttl time.Duration) *SalesCache {
	return &SalesCache{
		ttl: ttl,
		now: time.Now,
	}
}

// Get retorna a tabela em cache e um indicador de acerto. A entrada é
// considerada expirada quando a idade ultrapassa o TTL configurado.
func (c *SalesCache) Get() ([]*domain.Sale, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sales == nil {
		return nil, false
	}

	if c.now().Sub(c.fetchedAt) > c.ttl {
		return nil, false
	}

	return c.sales, true
}

// Set substitui a entrada do cache pela tabela recém-carregada
func (c *SalesCache) Set(sales []*domain.Sale) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sales = sales
	c.fetchedAt = c.now()
}

// Invalidate descarta a entrada atual, forçando nova consulta no
// próximo carregamento
func (c *SalesCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sales = nil
	c.fetchedAt = time.Time{}
}

// Age retorna a idade da entrada atual, ou zero se o cache está vazio
func (c *SalesCache) Age() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sales == nil {
		return 0
	}

	return c.now().Sub(c.fetchedAt)
}

// TTL retorna o tempo de vida configurado
func (c *SalesCache) TTL() time.Duration {
	return c.ttl
}
