package model

// Skill is a skill category card (e.g. "Frontend Development") with its
// technology list. Technologies decode leniently: the public skills section
// must render even if one row holds corrupt text.
type Skill struct {
	Base
	Category     string            `gorm:"type:varchar(64);not null" json:"category"`
	Description  string            `gorm:"type:text;not null" json:"description"`
	Technologies LenientStringList `gorm:"type:text" json:"technologies"`
	Order        int               `gorm:"not null;default:0" json:"order"`
}
