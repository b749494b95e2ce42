package model

import (
	"time"

	"catalogue/data/db"
	"catalogue/data/repository"
)

// Manufacturer 制造商（oxmanufacturers）
type Manufacturer struct {
	ID        string
	Active    bool
	Icon      string
	Title     string
	ShortDesc string
	Timestamp time.Time
}

func (m *Manufacturer) ViewName() string   { return "oxmanufacturers" }
func (m *Manufacturer) PrimaryKey() string { return primaryKey }

func (m *Manufacturer) ActivePredicate() repository.Condition {
	return repository.Condition{Expr: "oxmanufacturers.oxactive = 1"}
}

func (m *Manufacturer) Assign(row db.Row) error {
	a := assigner{row: row}
	m.ID = row.String("oxid")
	m.Active = a.bool("oxactive")
	m.Icon = row.String("oxicon")
	m.Title = row.String("oxtitle")
	m.ShortDesc = row.String("oxshortdesc")
	m.Timestamp = a.time("oxtimestamp")
	return a.err
}
