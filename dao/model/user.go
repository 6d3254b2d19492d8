package model

import (
	"gorm.io/datatypes"
)

// User is the admin account behind the dashboard. Only email, name and role
// ever leave the API; the password hash stays server-side.
type User struct {
	Base
	Email      string                            `gorm:"uniqueIndex;type:varchar(128);not null" json:"email"`
	Name       string                            `gorm:"type:varchar(64);not null" json:"name"`
	Password   string                            `gorm:"type:varchar(128);not null" json:"-"`
	Role       Role                              `gorm:"type:varchar(32);not null" json:"role"`
	Attributes datatypes.JSONType[UserAttribute] `json:"attributes"`
}

// UserAttribute holds the hero/about content rendered on the public site.
type UserAttribute struct {
	Headline string `json:"headline,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Github   string `json:"github,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`
}
