package models

import (
	"time"

	"gorm.io/gorm"
)

// Review carries the scholarship and reviewer details copied from the
// approved Application it was written against, not from a fresh lookup.
type Review struct {
	gorm.Model
	ApplicationID   uint      `gorm:"not null" json:"applicationId"`
	ScholarshipID   uint      `json:"scholarshipId"`
	ScholarshipName string    `json:"scholarshipName"`
	UniversityName  string    `json:"universityName"`
	ReviewerName    string    `json:"reviewerName"`
	ReviewerEmail   string    `gorm:"not null" json:"reviewerEmail"`
	Rating          int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment         string    `gorm:"type:text;default:''" json:"comment"`
	ReviewDate      time.Time `json:"reviewDate"`
}
