package model

import (
	"time"

	"catalogue/data/db"
	"catalogue/data/repository"
)

// DefaultLowStockThreshold 未配置 oxremindamount 时的低库存阈值
const DefaultLowStockThreshold = 5

// 库存状态
const (
	StockStatusDeliverable = 0  // 有货
	StockStatusLow         = 1  // 有货但所剩不多
	StockStatusOutOfStock  = -1 // 无货
)

// Product 商品（oxarticles）
//
// 商品激活指 oxactive 标记或当前时间落在 [oxactivefrom, oxactiveto] 内，且 oxhidden = 0。
// oxhidden 的商品按主键加载时视为不存在。
type Product struct {
	ID                string
	ParentID          string
	ArtNum            string
	Title             string
	ShortDesc         string
	Price             float64
	Stock             float64
	LowStockThreshold float64
	Delivery          time.Time
	ManufacturerID    string
	Active            bool
	ActiveFrom        time.Time
	ActiveTo          time.Time
	Hidden            bool
	Rating            float64
	RatingCount       int64
	Timestamp         time.Time

	Clock Clock
}

func (m *Product) ViewName() string   { return "oxarticles" }
func (m *Product) PrimaryKey() string { return primaryKey }

// ActivePredicate 激活或处于激活时间窗口内，且未隐藏
func (m *Product) ActivePredicate() repository.Condition {
	now := m.Clock.now().Format(dateLayout)
	return repository.Condition{
		Expr: "((oxarticles.oxactive = 1 OR (oxarticles.oxactivefrom <= ? AND oxarticles.oxactiveto >= ?)) AND oxarticles.oxhidden = 0)",
		Args: []any{now, now},
	}
}

// CanView 隐藏商品不可见
func (m *Product) CanView() bool {
	return !m.Hidden
}

func (m *Product) Assign(row db.Row) error {
	a := assigner{row: row}
	m.ID = row.String("oxid")
	m.ParentID = row.String("oxparentid")
	m.ArtNum = row.String("oxartnum")
	m.Title = row.String("oxtitle")
	m.ShortDesc = row.String("oxshortdesc")
	m.Price = a.float64("oxprice")
	m.Stock = a.float64("oxstock")
	m.LowStockThreshold = a.float64("oxremindamount")
	m.Delivery = a.time("oxdelivery")
	m.ManufacturerID = row.String("oxmanufacturerid")
	m.Active = a.bool("oxactive")
	m.ActiveFrom = a.time("oxactivefrom")
	m.ActiveTo = a.time("oxactiveto")
	m.Hidden = a.bool("oxhidden")
	m.Rating = a.float64("oxrating")
	m.RatingCount = a.int64("oxratingcnt")
	m.Timestamp = a.time("oxtimestamp")
	return a.err
}

// IsActive 与 ActivePredicate 同义的内存判断
func (m *Product) IsActive() bool {
	if m.Hidden {
		return false
	}
	if m.Active {
		return true
	}
	if m.ActiveFrom.IsZero() || m.ActiveTo.IsZero() {
		return false
	}
	now := m.Clock.now()
	return !now.Before(m.ActiveFrom) && !now.After(m.ActiveTo)
}

// StockStatus 按库存与低库存阈值计算库存状态
func (m *Product) StockStatus() int {
	threshold := m.LowStockThreshold
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	switch {
	case m.Stock <= 0:
		return StockStatusOutOfStock
	case m.Stock <= threshold:
		return StockStatusLow
	default:
		return StockStatusDeliverable
	}
}
