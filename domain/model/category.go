package model

import (
	"time"

	"catalogue/data/db"
	"catalogue/data/repository"
)

// RootParentID 顶级分类的父分类标识
const RootParentID = "oxrootid"

// Category 分类（oxcategories）
type Category struct {
	ID        string
	ParentID  string
	RootID    string
	Title     string
	ShortDesc string
	LongDesc  string
	Thumb     string
	ExtLink   string
	Sort      int64
	Active    bool
	Hidden    bool
	Timestamp time.Time
}

func (m *Category) ViewName() string   { return "oxcategories" }
func (m *Category) PrimaryKey() string { return primaryKey }

// ActivePredicate 激活且未隐藏
func (m *Category) ActivePredicate() repository.Condition {
	return repository.Condition{Expr: "(oxcategories.oxactive = 1 AND oxcategories.oxhidden = 0)"}
}

func (m *Category) Assign(row db.Row) error {
	a := assigner{row: row}
	m.ID = row.String("oxid")
	m.ParentID = row.String("oxparentid")
	m.RootID = row.String("oxrootid")
	m.Title = row.String("oxtitle")
	m.ShortDesc = row.String("oxdesc")
	m.LongDesc = row.String("oxlongdesc")
	m.Thumb = row.String("oxthumb")
	m.ExtLink = row.String("oxextlink")
	m.Sort = a.int64("oxsort")
	m.Active = a.bool("oxactive")
	m.Hidden = a.bool("oxhidden")
	m.Timestamp = a.time("oxtimestamp")
	return a.err
}

// IsRoot 是否为顶级分类
func (m *Category) IsRoot() bool {
	return m.ParentID == "" || m.ParentID == RootParentID
}
