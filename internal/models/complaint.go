package models

import "time"

type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "pending"
	ComplaintInProgress ComplaintStatus = "in-progress"
	ComplaintResolved   ComplaintStatus = "resolved"
)

func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintPending, ComplaintInProgress, ComplaintResolved:
		return true
	}
	return false
}

// Complaint is customer feedback. It has no relation to the menu graph.
type Complaint struct {
	ID           string          `bson:"id" json:"id" yaml:"id"`
	CustomerName string          `bson:"customerName" json:"customerName" yaml:"customerName"`
	Email        string          `bson:"email" json:"email" yaml:"email"`
	Phone        string          `bson:"phone,omitempty" json:"phone,omitempty" yaml:"phone"`
	Message      string          `bson:"message" json:"message" yaml:"message"`
	Status       ComplaintStatus `bson:"status" json:"status" yaml:"status"`
	Category     string          `bson:"category" json:"category" yaml:"category"`
	Date         time.Time       `bson:"date" json:"date" yaml:"date"`
}

type ComplaintPatch struct {
	CustomerName *string
	Email        *string
	Phone        *string
	Message      *string
	Status       *ComplaintStatus
	Category     *string
}

func (p ComplaintPatch) Empty() bool {
	return p == ComplaintPatch{}
}

func (p ComplaintPatch) Apply(complaint *Complaint) {
	if p.CustomerName != nil {
		complaint.CustomerName = *p.CustomerName
	}
	if p.Email != nil {
		complaint.Email = *p.Email
	}
	if p.Phone != nil {
		complaint.Phone = *p.Phone
	}
	if p.Message != nil {
		complaint.Message = *p.Message
	}
	if p.Status != nil {
		complaint.Status = *p.Status
	}
	if p.Category != nil {
		complaint.Category = *p.Category
	}
}
