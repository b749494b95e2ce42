package datatype

import (
	"catalogue/data/repository"
	"catalogue/domain/model"
)

// User 评论作者
type User struct {
	id        string
	userName  string
	firstName string
	lastName  string
}

func (u *User) ID() string        { return u.id }
func (u *User) UserName() string  { return u.userName }
func (u *User) FirstName() string { return u.firstName }
func (u *User) LastName() string  { return u.lastName }

// UserType 用户描述符
type UserType struct{}

func (UserType) NewModel() repository.IModel { return &model.User{} }

func (UserType) FromModel(m repository.IModel) (*User, error) {
	um, ok := m.(*model.User)
	if !ok {
		return nil, mismatch("user", m)
	}
	return &User{
		id:        um.ID,
		userName:  um.UserName,
		firstName: um.FirstName,
		lastName:  um.LastName,
	}, nil
}
