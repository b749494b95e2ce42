package main

import (
	"time"

	"catalogue/domain/datatype"
)

// JSON 输出结构

type categoryView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ShortDesc string    `json:"shortDescription"`
	ParentID  string    `json:"parentId,omitempty"`
	Position  int64     `json:"position"`
	Active    bool      `json:"active"`
	Hidden    bool      `json:"hidden"`
	Timestamp time.Time `json:"timestamp"`
}

func newCategoryView(c *datatype.Category) categoryView {
	v := categoryView{
		ID:        c.ID(),
		Title:     c.Title(),
		ShortDesc: c.ShortDesc(),
		Position:  c.Position(),
		Active:    c.IsActive(),
		Hidden:    c.IsHidden(),
		Timestamp: c.Timestamp(),
	}
	if !c.IsRoot() {
		v.ParentID = c.ParentID()
	}
	return v
}

type manufacturerView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ShortDesc string    `json:"shortdesc"`
	Icon      string    `json:"icon"`
	Active    bool      `json:"active"`
	Timestamp time.Time `json:"timestamp"`
}

func newManufacturerView(m *datatype.Manufacturer) *manufacturerView {
	if m == nil {
		return nil
	}
	return &manufacturerView{
		ID:        m.ID(),
		Title:     m.Title(),
		ShortDesc: m.ShortDesc(),
		Icon:      m.Icon(),
		Active:    m.IsActive(),
		Timestamp: m.Timestamp(),
	}
}

type stockView struct {
	Stock       float64    `json:"stock"`
	StockStatus int        `json:"stockStatus"`
	RestockDate *time.Time `json:"restockDate"`
}

type productView struct {
	ID           string            `json:"id"`
	SKU          string            `json:"sku"`
	Title        string            `json:"title"`
	Price        float64           `json:"price"`
	Active       bool              `json:"active"`
	Manufacturer *manufacturerView `json:"manufacturer,omitempty"`
	Stock        *stockView        `json:"stock,omitempty"`
}

func newProductView(p *datatype.Product) *productView {
	if p == nil {
		return nil
	}
	return &productView{
		ID:     p.ID(),
		SKU:    p.SKU(),
		Title:  p.Title(),
		Price:  p.Price(),
		Active: p.IsActive(),
	}
}

func newStockView(s *datatype.ProductStock) *stockView {
	if s == nil {
		return nil
	}
	return &stockView{Stock: s.Stock(), StockStatus: s.StockStatus(), RestockDate: s.RestockDate()}
}

type userView struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type reviewView struct {
	ID        string       `json:"id"`
	Active    bool         `json:"active"`
	Text      string       `json:"text"`
	Rating    int64        `json:"rating"`
	CreatedAt time.Time    `json:"createAt"`
	User      *userView    `json:"user"`
	Product   *productView `json:"product"`
}

func newReviewView(r *datatype.Review) reviewView {
	return reviewView{
		ID:        r.ID(),
		Active:    r.IsActive(),
		Text:      r.Text(),
		Rating:    r.Rating(),
		CreatedAt: r.CreatedAt(),
	}
}

func newUserView(u *datatype.User) *userView {
	if u == nil {
		return nil
	}
	return &userView{ID: u.ID(), FirstName: u.FirstName(), LastName: u.LastName()}
}

func mapViews[T any, V any](items []T, fn func(T) V) []V {
	out := make([]V, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}
