package datatype

import (
	"time"

	"catalogue/data/filter"
	"catalogue/data/repository"
	"catalogue/domain/model"
)

// Product 商品
type Product struct {
	id             string
	parentID       string
	sku            string
	title          string
	shortDesc      string
	price          float64
	manufacturerID string
	active         bool
	rating         float64
	ratingCount    int64
	timestamp      time.Time
}

func (p *Product) ID() string             { return p.id }
func (p *Product) ParentID() string       { return p.parentID }
func (p *Product) SKU() string            { return p.sku }
func (p *Product) Title() string          { return p.title }
func (p *Product) ShortDesc() string      { return p.shortDesc }
func (p *Product) Price() float64         { return p.price }
func (p *Product) ManufacturerID() string { return p.manufacturerID }
func (p *Product) Rating() float64        { return p.rating }
func (p *Product) RatingCount() int64     { return p.ratingCount }
func (p *Product) Timestamp() time.Time   { return p.timestamp }

// IsActive 激活标记或在激活时间窗口内（按加载时刻计算）
func (p *Product) IsActive() bool { return p.active }

// ProductType 商品描述符，Clock 为空时使用当前时间
type ProductType struct {
	Clock model.Clock
}

func (t ProductType) NewModel() repository.IModel { return &model.Product{Clock: t.Clock} }

func (ProductType) FromModel(m repository.IModel) (*Product, error) {
	pm, ok := m.(*model.Product)
	if !ok {
		return nil, mismatch("product", m)
	}
	return &Product{
		id:             pm.ID,
		parentID:       pm.ParentID,
		sku:            pm.ArtNum,
		title:          pm.Title,
		shortDesc:      pm.ShortDesc,
		price:          pm.Price,
		manufacturerID: pm.ManufacturerID,
		active:         pm.IsActive(),
		rating:         pm.Rating,
		ratingCount:    pm.RatingCount,
		timestamp:      pm.Timestamp,
	}, nil
}

// ProductStock 商品库存，与 Product 共用同一个存储模型
type ProductStock struct {
	id          string
	stock       float64
	stockStatus int
	restockDate *time.Time
}

func (s *ProductStock) ID() string     { return s.id }
func (s *ProductStock) Stock() float64 { return s.stock }

// StockStatus 0 有货；1 有货但所剩不多；-1 无货
func (s *ProductStock) StockStatus() int { return s.stockStatus }

// RestockDate 预计到货日期，未设置时为 nil
func (s *ProductStock) RestockDate() *time.Time { return s.restockDate }

// ProductStockType 库存描述符
type ProductStockType struct {
	Clock model.Clock
}

func (t ProductStockType) NewModel() repository.IModel { return &model.Product{Clock: t.Clock} }

func (ProductStockType) FromModel(m repository.IModel) (*ProductStock, error) {
	pm, ok := m.(*model.Product)
	if !ok {
		return nil, mismatch("product", m)
	}
	return &ProductStock{
		id:          pm.ID,
		stock:       pm.Stock,
		stockStatus: pm.StockStatus(),
		restockDate: optionalTime(pm.Delivery),
	}, nil
}

// NewProductFilterList 商品的过滤列表：标题、制造商、价格
func NewProductFilterList(title *filter.StringFilter, manufacturerID *filter.IDFilter, price *filter.FloatFilter) filter.List {
	return filter.NewList().
		With("oxtitle", title).
		With("oxmanufacturerid", manufacturerID).
		With("oxprice", price)
}
