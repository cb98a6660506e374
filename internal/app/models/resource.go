package models

import "time"

// ResourceType distinguishes question papers from notes
type ResourceType string

// ResourceType constants
const (
	ResourceTypePaper ResourceType = "paper"
	ResourceTypeNote  ResourceType = "note"
)

// IsValid reports whether t is one of the known resource types
func (t ResourceType) IsValid() bool {
	return t == ResourceTypePaper || t == ResourceTypeNote
}

// Rating bounds
const (
	MinRating = 0
	MaxRating = 5
)

// Resource is a catalog entry for a downloadable paper or note
type Resource struct {
	ID         string       `json:"id" example:"8a6f0f7e-3f0e-4c55-9d7a-0c2a5f7b9e11"`
	Title      string       `json:"title" example:"DBMS – CSE – 3rd Year – 2024"`
	Subject    string       `json:"subject,omitempty" example:"DBMS"`
	Type       ResourceType `json:"type" example:"paper" enums:"paper,note"`
	Branch     string       `json:"branch,omitempty" example:"CSE"`
	Year       string       `json:"year,omitempty" example:"3rd Year"`
	Semester   string       `json:"semester,omitempty" example:"Semester 5"`
	ExamType   string       `json:"examType,omitempty" example:"Semester Final"`
	Regulation string       `json:"regulation,omitempty" example:"R23"`
	FileURL    string       `json:"fileUrl,omitempty" example:"/uploads/pdfFile-1718000000000000000-42.pdf"`
	Size       string       `json:"size,omitempty" example:"1.2 MB"`
	Downloads  int64        `json:"downloads" example:"320"`
	Uploader   string       `json:"uploader,omitempty"`
	Rating     float64      `json:"rating" example:"4.5"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}
