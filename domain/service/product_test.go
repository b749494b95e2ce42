package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogue/auth"
	"catalogue/data/filter"
	"catalogue/domain/datatype"
	"catalogue/domain/model"
	"catalogue/errors"
)

func TestProduct_Product(t *testing.T) {
	ctx := context.Background()
	r := newRepository(t)
	anonymous := NewProduct(r, auth.Deny{}, WithClock(june2021))
	admin := NewProduct(r, allPermissions, WithClock(june2021))

	p, err := anonymous.Product(ctx, "p-core")
	require.NoError(t, err)
	assert.Equal(t, "Kite CORE GTS", p.Title())
	assert.Equal(t, "1001", p.SKU())
	assert.Equal(t, 879.0, p.Price())

	// 处于激活时间窗口内
	p, err = anonymous.Product(ctx, "p-board")
	require.NoError(t, err)
	assert.True(t, p.IsActive())

	_, err = anonymous.Product(ctx, "p-old")
	assert.True(t, errors.IsUnauthorized(err))

	p, err = admin.Product(ctx, "p-old")
	require.NoError(t, err)
	assert.False(t, p.IsActive())

	// 隐藏商品对任何人都按不存在处理
	_, err = admin.Product(ctx, "p-hidden")
	assert.True(t, errors.IsNotFound(err))
	assert.Contains(t, err.Error(), "Product was not found by id: p-hidden")
}

func TestProduct_ActiveWindowExpired(t *testing.T) {
	later := model.Clock(func() time.Time { return time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC) })
	s := NewProduct(newRepository(t), auth.Deny{}, WithClock(later))

	_, err := s.Product(context.Background(), "p-board")
	assert.True(t, errors.IsUnauthorized(err))

	list, err := s.Products(context.Background(), filter.NewList(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"p-core", "p-wake"}, ids(list))
}

// 隐藏商品在匿名列表中同样不存在，与按主键查询一致
func TestProduct_HiddenExcludedFromList(t *testing.T) {
	ctx := context.Background()
	s := NewProduct(newRepository(t), auth.Deny{}, WithClock(june2021))

	_, err := s.Product(ctx, "p-hidden")
	assert.True(t, errors.IsNotFound(err))

	list, err := s.Products(ctx, filter.NewList(), nil)
	require.NoError(t, err)
	assert.NotContains(t, ids(list), "p-hidden")

	byManufacturer, err := s.Products(ctx, datatype.NewProductFilterList(nil, filter.NewIDFilter("m-naish"), nil), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"p-core"}, ids(byManufacturer))
}

func TestProduct_Products(t *testing.T) {
	ctx := context.Background()
	r := newRepository(t)

	visible, err := NewProduct(r, auth.Deny{}, WithClock(june2021)).Products(ctx, filter.NewList(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"p-board", "p-core", "p-wake"}, ids(visible))

	admin := NewProduct(r, allPermissions, WithClock(june2021))
	all, err := admin.Products(ctx, filter.NewList(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	page, err := filter.NewPagination(1, 2)
	require.NoError(t, err)
	paged, err := admin.Products(ctx, filter.NewList(), page)
	require.NoError(t, err)
	assert.Equal(t, ids(all)[1:3], ids(paged))

	byManufacturer, err := admin.Products(ctx, datatype.NewProductFilterList(nil, filter.NewIDFilter("m-naish"), nil), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"p-core", "p-hidden"}, ids(byManufacturer))

	lt := 300.0
	cheap, err := filter.NewNumberFilter[float64](nil, &lt, nil, nil)
	require.NoError(t, err)
	cheapOnes, err := admin.Products(ctx, datatype.NewProductFilterList(nil, nil, cheap), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"p-hidden", "p-old", "p-wake"}, ids(cheapOnes))
}

func TestProduct_ProductStock(t *testing.T) {
	ctx := context.Background()
	s := NewProduct(newRepository(t), allPermissions, WithClock(june2021))

	board, err := s.Product(ctx, "p-board")
	require.NoError(t, err)
	stock, err := s.ProductStock(ctx, board)
	require.NoError(t, err)
	assert.Equal(t, 3.0, stock.Stock())
	assert.Equal(t, model.StockStatusLow, stock.StockStatus())
	require.NotNil(t, stock.RestockDate())
	assert.Equal(t, "2021-03-01", stock.RestockDate().Format("2006-01-02"))

	core, err := s.Product(ctx, "p-core")
	require.NoError(t, err)
	stock, err = s.ProductStock(ctx, core)
	require.NoError(t, err)
	assert.Equal(t, model.StockStatusDeliverable, stock.StockStatus())
	assert.Nil(t, stock.RestockDate())

	old, err := s.Product(ctx, "p-old")
	require.NoError(t, err)
	stock, err = s.ProductStock(ctx, old)
	require.NoError(t, err)
	assert.Equal(t, model.StockStatusOutOfStock, stock.StockStatus())

	_, err = s.ProductStock(ctx, nil)
	assert.True(t, errors.IsInvalidInput(err))
}
