package storage

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admpub/product-analyzer/pkg/product"
)

func TestNewUnsupported(t *testing.T) {
	_, err := New(`mongodb://localhost`)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestMemory(t *testing.T) {
	for _, rawURL := range []string{`memory`, `memory://`} {
		s, err := New(rawURL)
		require.NoError(t, err)
		products := []product.Product{{ID: 1, Name: `A`}, {ID: 2, Name: `B`}, {ID: 3, Name: `C`}}
		require.NoError(t, s.Replace(products))
		products[0].Name = `changed`

		list, err := s.List(0)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, `A`, list[0].Name)

		list, err = s.List(2)
		require.NoError(t, err)
		assert.Len(t, list, 2)
		s.Close()
	}
}

func TestMemoryOrdersByID(t *testing.T) {
	s, err := New(`memory://`)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.Replace([]product.Product{{ID: 3, Name: `C`}, {ID: 1, Name: `A`}, {ID: 2, Name: `B`}}))
	list, err := s.List(0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{`A`, `B`, `C`}, []string{list[0].Name, list[1].Name, list[2].Name})
}

func TestPath(t *testing.T) {
	u, err := url.Parse(`duckdb://./eee`)
	require.NoError(t, err)
	assert.Equal(t, `.`, u.Host)
	assert.Equal(t, `/eee`, u.Path)
	p, err := Path(u)
	require.NoError(t, err)
	assert.Equal(t, `./eee`, p)

	u, err = url.Parse(`sqlite://?path=data/products.db`)
	require.NoError(t, err)
	p, err = Path(u)
	require.NoError(t, err)
	assert.Equal(t, `data/products.db`, p)

	u, err = url.Parse(`duckdb://`)
	require.NoError(t, err)
	p, err = Path(u)
	require.NoError(t, err)
	assert.Equal(t, ``, p)
}

func TestValidSortField(t *testing.T) {
	assert.True(t, ValidSortField(`revenue`))
	assert.False(t, ValidSortField(`name`))
}
