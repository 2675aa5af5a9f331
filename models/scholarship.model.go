package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Scholarship struct {
	gorm.Model
	ScholarshipName     string         `gorm:"not null" json:"scholarshipName"`
	UniversityName      string         `gorm:"not null" json:"universityName"`
	UniversityCity      string         `json:"universityCity"`
	UniversityCountry   string         `json:"universityCountry"`
	SubjectCategory     string         `json:"subjectCategory"`
	ScholarshipCategory string         `json:"scholarshipCategory"`
	Degree              string         `json:"degree"`
	TuitionFees         float64        `gorm:"default:0" json:"tuitionFees"`
	ApplicationFee      float64        `gorm:"not null;check:application_fee >= 0" json:"applicationFee"`
	ServiceCharge       float64        `gorm:"default:0" json:"serviceCharge"`
	PostDate            time.Time      `json:"postDate"`
	Deadline            time.Time      `json:"deadline"`
	Description         string         `gorm:"type:text;default:''" json:"description"`
	Eligibility         datatypes.JSON `json:"eligibility"` // free-form requirements posted with the offer
}
