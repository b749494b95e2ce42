package datatype

import (
	"time"

	"catalogue/data/filter"
	"catalogue/data/repository"
	"catalogue/domain/model"
)

// Category 分类
type Category struct {
	id        string
	parentID  string
	rootID    string
	title     string
	shortDesc string
	longDesc  string
	thumb     string
	extLink   string
	position  int64
	active    bool
	hidden    bool
	timestamp time.Time
}

func (c *Category) ID() string           { return c.id }
func (c *Category) ParentID() string     { return c.parentID }
func (c *Category) RootID() string       { return c.rootID }
func (c *Category) Title() string        { return c.title }
func (c *Category) ShortDesc() string    { return c.shortDesc }
func (c *Category) LongDesc() string     { return c.longDesc }
func (c *Category) Thumb() string        { return c.thumb }
func (c *Category) ExternalLink() string { return c.extLink }
func (c *Category) Position() int64      { return c.position }
func (c *Category) IsActive() bool       { return c.active && !c.hidden }
func (c *Category) IsHidden() bool       { return c.hidden }
func (c *Category) Timestamp() time.Time { return c.timestamp }

// IsRoot 是否为顶级分类
func (c *Category) IsRoot() bool {
	return c.parentID == "" || c.parentID == model.RootParentID
}

// CategoryType 分类描述符
type CategoryType struct{}

func (CategoryType) NewModel() repository.IModel { return &model.Category{} }

func (CategoryType) FromModel(m repository.IModel) (*Category, error) {
	cm, ok := m.(*model.Category)
	if !ok {
		return nil, mismatch("category", m)
	}
	return &Category{
		id:        cm.ID,
		parentID:  cm.ParentID,
		rootID:    cm.RootID,
		title:     cm.Title,
		shortDesc: cm.ShortDesc,
		longDesc:  cm.LongDesc,
		thumb:     cm.Thumb,
		extLink:   cm.ExtLink,
		position:  cm.Sort,
		active:    cm.Active,
		hidden:    cm.Hidden,
		timestamp: cm.Timestamp,
	}, nil
}

// NewCategoryFilterList 分类的过滤列表：标题、父分类
func NewCategoryFilterList(title *filter.StringFilter, parentID *filter.IDFilter) filter.List {
	return filter.NewList().
		With("oxtitle", title).
		With("oxparentid", parentID)
}
