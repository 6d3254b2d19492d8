package model

// ContactSubmission is a message from the public contact form. Immutable
// after creation except for the read flag.
type ContactSubmission struct {
	Base
	Name    string `gorm:"type:varchar(128);not null" json:"name"`
	Email   string `gorm:"type:varchar(128);not null" json:"email"`
	Subject string `gorm:"type:varchar(256);not null" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`
	IsRead  bool   `gorm:"not null;default:false" json:"isRead"`
}
