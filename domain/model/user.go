package model

import (
	"time"

	"catalogue/data/db"
	"catalogue/data/repository"
)

// User 用户（oxuser），仅作为评论作者被引用
type User struct {
	ID        string
	UserName  string
	FirstName string
	LastName  string
	Timestamp time.Time
}

func (m *User) ViewName() string   { return "oxuser" }
func (m *User) PrimaryKey() string { return primaryKey }

// ActivePredicate 用户没有可见性概念
func (m *User) ActivePredicate() repository.Condition {
	return repository.Condition{}
}

func (m *User) Assign(row db.Row) error {
	a := assigner{row: row}
	m.ID = row.String("oxid")
	m.UserName = row.String("oxusername")
	m.FirstName = row.String("oxfname")
	m.LastName = row.String("oxlname")
	m.Timestamp = a.time("oxtimestamp")
	return a.err
}
