package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogue/data/db"
	"catalogue/data/repository"
)

// 编译期契约检查
var (
	_ repository.IModel    = (*Category)(nil)
	_ repository.IModel    = (*Manufacturer)(nil)
	_ repository.IModel    = (*Product)(nil)
	_ repository.IViewable = (*Product)(nil)
	_ repository.IModel    = (*Review)(nil)
	_ repository.IModel    = (*User)(nil)
)

func fixedClock(s string) Clock {
	t, _ := time.Parse(dateLayout, s)
	return func() time.Time { return t }
}

func TestCategory_Assign(t *testing.T) {
	m := &Category{}
	require.NoError(t, m.Assign(db.Row{
		"oxid":        "943a9ba3050e78b443c16e043ae60ef3",
		"oxparentid":  "oxrootid",
		"oxtitle":     "Kiteboarding",
		"oxsort":      int64(101),
		"oxactive":    int64(1),
		"oxhidden":    int64(0),
		"oxtimestamp": "2020-01-10 12:00:00",
	}))

	assert.Equal(t, "Kiteboarding", m.Title)
	assert.Equal(t, int64(101), m.Sort)
	assert.True(t, m.Active)
	assert.False(t, m.Hidden)
	assert.True(t, m.IsRoot())
	assert.Equal(t, 2020, m.Timestamp.Year())
	assert.Equal(t, "(oxcategories.oxactive = 1 AND oxcategories.oxhidden = 0)", m.ActivePredicate().Expr)
}

func TestAssign_ReportsFirstBadColumn(t *testing.T) {
	err := (&Manufacturer{}).Assign(db.Row{"oxactive": "maybe", "oxtimestamp": "never"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oxactive")
}

func TestProduct_ActivePredicate(t *testing.T) {
	m := &Product{Clock: fixedClock("2021-06-01 10:00:00")}
	c := m.ActivePredicate()

	assert.Equal(t, "((oxarticles.oxactive = 1 OR (oxarticles.oxactivefrom <= ? AND oxarticles.oxactiveto >= ?)) AND oxarticles.oxhidden = 0)", c.Expr)
	assert.Equal(t, []any{"2021-06-01 10:00:00", "2021-06-01 10:00:00"}, c.Args)
}

func TestProduct_IsActive(t *testing.T) {
	from := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC)

	assert.True(t, (&Product{Active: true}).IsActive())
	assert.True(t, (&Product{ActiveFrom: from, ActiveTo: to, Clock: fixedClock("2021-06-01 10:00:00")}).IsActive())
	assert.False(t, (&Product{ActiveFrom: from, ActiveTo: to, Clock: fixedClock("2022-06-01 10:00:00")}).IsActive())
	assert.False(t, (&Product{}).IsActive())
	assert.False(t, (&Product{Active: true, Hidden: true}).IsActive())
}

func TestProduct_CanView(t *testing.T) {
	assert.True(t, (&Product{}).CanView())
	assert.False(t, (&Product{Hidden: true}).CanView())
}

func TestProduct_StockStatus(t *testing.T) {
	cases := []struct {
		stock, threshold float64
		want             int
	}{
		{0, 0, StockStatusOutOfStock},
		{-2, 0, StockStatusOutOfStock},
		{3, 0, StockStatusLow},
		{5, 0, StockStatusLow},
		{6, 0, StockStatusDeliverable},
		{8, 10, StockStatusLow},
		{11, 10, StockStatusDeliverable},
	}
	for _, c := range cases {
		m := &Product{Stock: c.stock, LowStockThreshold: c.threshold}
		assert.Equal(t, c.want, m.StockStatus(), "stock=%v threshold=%v", c.stock, c.threshold)
	}
}

func TestReview_Moderation(t *testing.T) {
	moderated := &Review{Moderated: true}
	assert.Equal(t, "oxreviews.oxactive = 1", moderated.ActivePredicate().Expr)
	assert.False(t, moderated.IsActive())

	open := &Review{}
	assert.True(t, open.ActivePredicate().IsEmpty())
	assert.True(t, open.IsActive())
}

func TestUser_Assign(t *testing.T) {
	m := &User{}
	require.NoError(t, m.Assign(db.Row{"oxid": "u1", "oxfname": "Marc", "oxlname": "Muster", "oxtimestamp": nil}))
	assert.Equal(t, "Marc", m.FirstName)
	assert.Equal(t, "Muster", m.LastName)
	assert.True(t, m.Timestamp.IsZero())
	assert.True(t, m.ActivePredicate().IsEmpty())
}
