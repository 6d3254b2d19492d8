package model

// Experience is one employment entry on the timeline.
type Experience struct {
	Base
	Title        string          `gorm:"type:varchar(128);not null" json:"title"`
	Company      string          `gorm:"type:varchar(128);not null" json:"company"`
	Location     string          `gorm:"type:varchar(128);not null" json:"location"`
	Type         string          `gorm:"type:varchar(32);not null" json:"type"`
	Period       string          `gorm:"type:varchar(64);not null" json:"period"`
	Description  string          `gorm:"type:text;not null" json:"description"`
	Achievements AchievementList `gorm:"type:text" json:"achievements"`
	Technologies StringList      `gorm:"type:text" json:"technologies"`
	Highlights   StringList      `gorm:"type:text" json:"highlights"`
	Order        int             `gorm:"not null;default:0" json:"order"`
}
