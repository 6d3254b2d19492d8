package model

// Project is a portfolio entry on the public site.
type Project struct {
	Base
	Title           string     `gorm:"type:varchar(128);not null" json:"title"`
	Description     string     `gorm:"type:text;not null" json:"description"`
	LongDescription *string    `gorm:"type:text" json:"longDescription"`
	Image           *string    `gorm:"type:varchar(512)" json:"image"`
	Technologies    StringList `gorm:"type:text;not null" json:"technologies"`
	Features        StringList `gorm:"type:text" json:"features"`
	Category        string     `gorm:"type:varchar(32);not null" json:"category"`
	Status          string     `gorm:"type:varchar(32);not null" json:"status"`
	LiveURL         *string    `gorm:"type:varchar(512)" json:"liveUrl"`
	GithubURL       *string    `gorm:"type:varchar(512)" json:"githubUrl"`
	IsFeatured      bool       `gorm:"not null;default:false" json:"isFeatured"`
	Order           int        `gorm:"not null;default:0" json:"order"`
}
