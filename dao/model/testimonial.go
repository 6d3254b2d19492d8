package model

// Testimonial is a client quote. Inactive testimonials stay in the store but
// are excluded from the public carousel.
type Testimonial struct {
	Base
	Name     string  `gorm:"type:varchar(128);not null" json:"name"`
	Role     string  `gorm:"type:varchar(128);not null" json:"role"`
	Company  string  `gorm:"type:varchar(128);not null" json:"company"`
	Image    *string `gorm:"type:varchar(512)" json:"image"`
	Content  string  `gorm:"type:text;not null" json:"content"`
	Rating   int     `gorm:"not null;default:5" json:"rating"`
	Linkedin *string `gorm:"type:varchar(512)" json:"linkedin"`
	Order    int     `gorm:"not null;default:0" json:"order"`
	// No default tag here: gorm would drop an explicit false on insert and
	// let the column default win. The create handler owns the default.
	IsActive bool `gorm:"not null" json:"isActive"`
}
