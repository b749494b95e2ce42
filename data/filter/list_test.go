package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_Immutable(t *testing.T) {
	base := NewList().With("oxtitle", StringContains("Kite"))
	withActive := base.WithActive(NewBoolFilter(true))
	extended := base.With("oxparentid", NewIDFilter("root"))

	assert.Nil(t, base.Active())
	assert.True(t, withActive.Active().IsTrue())
	assert.Equal(t, []string{"oxtitle"}, base.Fields())
	assert.Equal(t, []string{"oxtitle"}, withActive.Fields())
	assert.Equal(t, []string{"oxtitle", "oxparentid"}, extended.Fields())
}

func TestList_WithReplacesInPlace(t *testing.T) {
	l := NewList().
		With("oxtitle", StringContains("a")).
		With("oxparentid", NewIDFilter("p")).
		With("oxtitle", StringEquals("b"))

	assert.Equal(t, []string{"oxtitle", "oxparentid"}, l.Fields())
	f, ok := l.Get("oxtitle")
	assert.True(t, ok)
	v, _ := f.(*StringFilter).Equals()
	assert.Equal(t, "b", v)
}

// 空过滤（含类型化 nil）不会被存储
func TestList_SkipsZeroFilters(t *testing.T) {
	var title *StringFilter
	l := NewList().With("oxtitle", title).With("oxparentid", nil).With("oxactive", &BoolFilter{})
	assert.Equal(t, 0, l.Len())

	l = NewList().With("oxtitle", StringEquals("x")).With("oxtitle", title)
	assert.Equal(t, 0, l.Len())
}

func TestList_ApplyInStoredOrder(t *testing.T) {
	l := NewList().
		With("oxparentid", NewIDFilter("p1")).
		With("oxtitle", StringEquals("Kites")).
		WithActive(NewBoolFilter(true))

	b := newBuilder()
	l.Apply(b)
	q, args := b.Build()

	// active 不由 Apply 渲染
	assert.Equal(t, "SELECT * FROM oxarticles WHERE oxparentid = ? AND oxtitle = ?", q)
	assert.Equal(t, []any{"p1", "Kites"}, args)
}

// 构造后修改调用方变量不影响已有列表的绑定参数
func TestList_FiltersCopyCallerValues(t *testing.T) {
	title := "kite"
	lower, upper := 10.0, 20.0
	bounds := [2]float64{lower, upper}
	day := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)

	price, err := NewNumberFilter[float64](nil, &upper, nil, &bounds)
	require.NoError(t, err)
	date, err := NewDateFilter(&day, nil)
	require.NoError(t, err)
	l := NewList().
		With("oxtitle", NewStringFilter(&title, nil, nil)).
		With("oxprice", price).
		With("oxtimestamp", date)

	apply := func() []any {
		b := newBuilder()
		l.Apply(b)
		_, args := b.Build()
		return args
	}
	before := apply()

	title = "board"
	upper = 99
	bounds[0] = 0
	day = day.AddDate(1, 0, 0)

	assert.Equal(t, before, apply())
	assert.Equal(t, []any{"kite", 20.0, 10.0, 20.0, "2021-06-01 00:00:00"}, before)
}
