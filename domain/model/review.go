package model

import (
	"time"

	"catalogue/data/db"
	"catalogue/data/repository"
)

// ReviewObjectTypeProduct 针对商品的评论类型
const ReviewObjectTypeProduct = "oxarticle"

// Review 评论（oxreviews）
//
// Moderated 为 false 时评论不需要审核：没有可见性谓词，所有评论都视为激活。
type Review struct {
	ID         string
	Active     bool
	ObjectID   string
	ObjectType string
	Text       string
	UserID     string
	Rating     int64
	Lang       int64
	CreatedAt  time.Time
	Timestamp  time.Time

	Moderated bool
}

func (m *Review) ViewName() string   { return "oxreviews" }
func (m *Review) PrimaryKey() string { return primaryKey }

func (m *Review) ActivePredicate() repository.Condition {
	if !m.Moderated {
		return repository.Condition{}
	}
	return repository.Condition{Expr: "oxreviews.oxactive = 1"}
}

func (m *Review) Assign(row db.Row) error {
	a := assigner{row: row}
	m.ID = row.String("oxid")
	m.Active = a.bool("oxactive")
	m.ObjectID = row.String("oxobjectid")
	m.ObjectType = row.String("oxtype")
	m.Text = row.String("oxtext")
	m.UserID = row.String("oxuserid")
	m.Rating = a.int64("oxrating")
	m.Lang = a.int64("oxlang")
	m.CreatedAt = a.time("oxcreate")
	m.Timestamp = a.time("oxtimestamp")
	return a.err
}

// IsActive 未开启审核时总为 true
func (m *Review) IsActive() bool {
	return !m.Moderated || m.Active
}
