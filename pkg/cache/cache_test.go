package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestSalesCache(t *testing.T) {
	now := time.Date(2024, time.January, 8, 10, 0, 0, 0, time.UTC)
	table := []*domain.Sale{{Product: "Euromilhões"}}

	newCache := func(ttl time.Duration) *SalesCache {
		c := NewSalesCache(ttl)
		c.now = func() time.Time { return now }
		return c
	}

	t.Run("Cache vazio é um miss", func(t *testing.T) {
		c := newCache(time.Hour)

		_, ok := c.Get()
		assert.False(t, ok)
		assert.Equal(t, time.Duration(0), c.Age())
	})

	t.Run("Entrada dentro do TTL é um hit", func(t *testing.T) {
		c := newCache(time.Hour)
		c.Set(table)

		now = now.Add(59 * time.Minute)
		cached, ok := c.Get()
		assert.True(t, ok)
		assert.Equal(t, table, cached)
		assert.Equal(t, 59*time.Minute, c.Age())
	})

	t.Run("Entrada expirada é um miss", func(t *testing.T) {
		c := newCache(time.Hour)
		c.Set(table)

		now = now.Add(61 * time.Minute)
		_, ok := c.Get()
		assert.False(t, ok)
	})

	t.Run("Invalidate descarta a entrada atual", func(t *testing.T) {
		c := newCache(time.Hour)
		c.Set(table)
		c.Invalidate()

		_, ok := c.Get()
		assert.False(t, ok)
	})

	t.Run("Tabela vazia ainda é uma entrada válida", func(t *testing.T) {
		c := newCache(time.Hour)
		c.Set([]*domain.Sale{})

		cached, ok := c.Get()
		assert.True(t, ok)
		assert.Empty(t, cached)
	})
}
