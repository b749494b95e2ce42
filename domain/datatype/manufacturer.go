package datatype

import (
	"time"

	"catalogue/data/filter"
	"catalogue/data/repository"
	"catalogue/domain/model"
)

// Manufacturer 制造商
type Manufacturer struct {
	id        string
	active    bool
	icon      string
	title     string
	shortDesc string
	timestamp time.Time
}

func (m *Manufacturer) ID() string           { return m.id }
func (m *Manufacturer) IsActive() bool       { return m.active }
func (m *Manufacturer) Icon() string         { return m.icon }
func (m *Manufacturer) Title() string        { return m.title }
func (m *Manufacturer) ShortDesc() string    { return m.shortDesc }
func (m *Manufacturer) Timestamp() time.Time { return m.timestamp }

// ManufacturerType 制造商描述符
type ManufacturerType struct{}

func (ManufacturerType) NewModel() repository.IModel { return &model.Manufacturer{} }

func (ManufacturerType) FromModel(m repository.IModel) (*Manufacturer, error) {
	mm, ok := m.(*model.Manufacturer)
	if !ok {
		return nil, mismatch("manufacturer", m)
	}
	return &Manufacturer{
		id:        mm.ID,
		active:    mm.Active,
		icon:      mm.Icon,
		title:     mm.Title,
		shortDesc: mm.ShortDesc,
		timestamp: mm.Timestamp,
	}, nil
}

// NewManufacturerFilterList 制造商的过滤列表：标题
func NewManufacturerFilterList(title *filter.StringFilter) filter.List {
	return filter.NewList().With("oxtitle", title)
}
