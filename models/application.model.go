package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// ParseApplicationStatus normalizes and validates a status value
func ParseApplicationStatus(value string) (ApplicationStatus, error) {
	switch ApplicationStatus(strings.ToLower(strings.TrimSpace(value))) {
	case ApplicationPending:
		return ApplicationPending, nil
	case ApplicationApproved:
		return ApplicationApproved, nil
	case ApplicationRejected:
		return ApplicationRejected, nil
	}
	return "", fmt.Errorf("invalid application status: %s", value)
}

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// Application is a student's claim against a Scholarship. The composite
// unique index backs the one-application-per-(scholarship, email) invariant,
// which is why withdrawal must hard delete the row.
type Application struct {
	gorm.Model
	ScholarshipID       uint              `gorm:"not null;uniqueIndex:idx_application_scholarship_email" json:"scholarshipId"`
	UserEmail           string            `gorm:"not null;uniqueIndex:idx_application_scholarship_email" json:"userEmail"`
	UserName            string            `json:"userName"`
	ScholarshipName     string            `json:"scholarshipName"`
	UniversityName      string            `json:"universityName"`
	ScholarshipCategory string            `json:"scholarshipCategory"`
	SubjectCategory     string            `json:"subjectCategory"`
	Degree              string            `json:"degree"`
	ApplicationFee      float64           `json:"applicationFee"`
	ServiceCharge       float64           `json:"serviceCharge"`
	Status              ApplicationStatus `gorm:"type:varchar(16);default:'pending'" json:"status"`
	PaymentStatus       PaymentStatus     `gorm:"type:varchar(16);default:'unpaid'" json:"paymentStatus"`
	Feedback            string            `gorm:"type:text;default:''" json:"feedback"`
	AppliedAt           time.Time         `json:"appliedAt"`
}
