package model

// User role. Only admins may mutate content.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Project categories shown as filter tabs on the public site.
const (
	CategoryFullStack = "Full-Stack"
	CategoryFrontend  = "Frontend"
	CategoryBackend   = "Backend"
	CategorySaaS      = "SaaS"
	CategoryAIML      = "AI/ML"
	CategoryMobile    = "Mobile"
)

// Project status labels.
const (
	StatusLive          = "Live"
	StatusInDevelopment = "In Development"
	StatusCompleted     = "Completed"
	StatusArchived      = "Archived"
)

// Employment types for experience entries.
const (
	EmploymentFullTime   = "Full-time"
	EmploymentPartTime   = "Part-time"
	EmploymentContract   = "Contract"
	EmploymentInternship = "Internship"
)
