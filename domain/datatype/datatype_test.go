package datatype

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogue/data/filter"
	"catalogue/data/repository"
	"catalogue/domain/model"
	"catalogue/errors"
)

var (
	_ repository.IDescriptor[*Category]     = CategoryType{}
	_ repository.IDescriptor[*Manufacturer] = ManufacturerType{}
	_ repository.IDescriptor[*Product]      = ProductType{}
	_ repository.IDescriptor[*ProductStock] = ProductStockType{}
	_ repository.IDescriptor[*Review]       = ReviewType{}
	_ repository.IDescriptor[*User]         = UserType{}
)

func TestFromModel_TypeMismatch(t *testing.T) {
	_, err := CategoryType{}.FromModel(&model.Product{})
	assert.True(t, errors.IsTypeMismatch(err))

	_, err = ProductStockType{}.FromModel(&model.Category{})
	assert.True(t, errors.IsTypeMismatch(err))

	_, err = UserType{}.FromModel(nil)
	assert.True(t, errors.IsTypeMismatch(err))
}

func TestNewModel_ReturnsFreshModels(t *testing.T) {
	d := CategoryType{}
	assert.NotSame(t, d.NewModel(), d.NewModel())
}

func TestCategory_ActiveRequiresVisible(t *testing.T) {
	c, err := CategoryType{}.FromModel(&model.Category{ID: "c1", Active: true, Hidden: true, ParentID: "oxrootid"})
	require.NoError(t, err)
	assert.False(t, c.IsActive())
	assert.True(t, c.IsRoot())
}

func TestProductStock(t *testing.T) {
	restock := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)

	s, err := ProductStockType{}.FromModel(&model.Product{ID: "p1", Stock: 3, Delivery: restock})
	require.NoError(t, err)
	assert.Equal(t, "p1", s.ID())
	assert.Equal(t, 3.0, s.Stock())
	assert.Equal(t, model.StockStatusLow, s.StockStatus())
	require.NotNil(t, s.RestockDate())
	assert.True(t, restock.Equal(*s.RestockDate()))

	s, err = ProductStockType{}.FromModel(&model.Product{ID: "p2", Stock: 0})
	require.NoError(t, err)
	assert.Equal(t, model.StockStatusOutOfStock, s.StockStatus())
	assert.Nil(t, s.RestockDate())
}

func TestReviewType_Moderation(t *testing.T) {
	inactive := NewReviewType(true).NewModel().(*model.Review)
	r, err := NewReviewType(true).FromModel(inactive)
	require.NoError(t, err)
	assert.False(t, r.IsActive())

	open := NewReviewType(false).NewModel().(*model.Review)
	r, err = NewReviewType(false).FromModel(open)
	require.NoError(t, err)
	assert.True(t, r.IsActive())
}

func TestFilterLists(t *testing.T) {
	l := NewCategoryFilterList(filter.StringContains("Kite"), nil)
	assert.Equal(t, []string{"oxtitle"}, l.Fields())
	assert.Nil(t, l.Active())

	price, err := filter.NumberBetween(10.0, 20.0)
	require.NoError(t, err)
	l = NewProductFilterList(nil, filter.NewIDFilter("m1"), price)
	assert.Equal(t, []string{"oxmanufacturerid", "oxprice"}, l.Fields())

	l = NewReviewFilterList(filter.NewIDFilter("p1"), nil, filter.NumberEquals[int64](5))
	assert.Equal(t, []string{"oxobjectid", "oxrating"}, l.Fields())

	assert.Equal(t, 0, NewManufacturerFilterList(nil).Len())
}
