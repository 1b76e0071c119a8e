package model

import (
	"time"
)

type SwapRequestStatus string

const (
	SwapRequestStatusPending   SwapRequestStatus = "pending"
	SwapRequestStatusAccepted  SwapRequestStatus = "accepted"
	SwapRequestStatusRejected  SwapRequestStatus = "rejected"
	SwapRequestStatusCancelled SwapRequestStatus = "cancelled"
	SwapRequestStatusCompleted SwapRequestStatus = "completed"
)

// IsValid reports whether s is one of the known statuses. Used to validate
// the status query filter before it reaches the store.
func (s SwapRequestStatus) IsValid() bool {
	switch s {
	case SwapRequestStatusPending,
		SwapRequestStatusAccepted,
		SwapRequestStatusRejected,
		SwapRequestStatusCancelled,
		SwapRequestStatusCompleted:
		return true
	}
	return false
}

type SwapRequest struct {
	ID                    string            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RequesterID           string            `gorm:"column:requester_id;type:uuid;not null" json:"requester_id"`
	AccepterID            string            `gorm:"column:accepter_id;type:uuid;not null" json:"accepter_id"`
	RequesterOfferedSkill string            `gorm:"column:requester_offered_skill;type:varchar(255);not null" json:"requester_offered_skill"`
	AccepterWantedSkill   string            `gorm:"column:accepter_wanted_skill;type:varchar(255);not null" json:"accepter_wanted_skill"`
	Message               string            `gorm:"column:message;type:varchar(1000)" json:"message,omitempty"`
	Status                SwapRequestStatus `gorm:"column:status;type:varchar(20);not null;default:'pending'" json:"status"`
	FeedbackRating        *int              `gorm:"column:feedback_rating" json:"feedback_rating,omitempty"`
	FeedbackComment       *string           `gorm:"column:feedback_comment;type:varchar(1000)" json:"feedback_comment,omitempty"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`

	Requester *User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Accepter  *User `gorm:"foreignKey:AccepterID" json:"accepter,omitempty"`
}

func (SwapRequest) TableName() string {
	return "swap_requests"
}
