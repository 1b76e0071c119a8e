package swaprequest

import (
	"gorm.io/gorm"

	"github.com/skillswaphq/skillswap-backend/internal/model"
)

type IStore interface {
	// Create a new swap request record
	Create(tx *gorm.DB, swapRequest *model.SwapRequest) (*model.SwapRequest, error)

	// GetByID returns the swap request with the given id
	GetByID(tx *gorm.DB, id string) (*model.SwapRequest, error)

	// GetByIDWithUsers returns the swap request with both participants preloaded
	GetByIDWithUsers(tx *gorm.DB, id string) (*model.SwapRequest, error)

	// HasPending reports whether a pending request exists for the ordered pair
	HasPending(tx *gorm.DB, requesterID, accepterID string) (bool, error)

	// FindForUser returns requests where the user is requester or accepter,
	// optionally filtered by status, newest first, participants preloaded
	FindForUser(tx *gorm.DB, userID string, status model.SwapRequestStatus) ([]model.SwapRequest, error)

	// UpdateStatusIfPending transitions the request to status only while it is
	// still pending; returns the number of rows changed
	UpdateStatusIfPending(tx *gorm.DB, id string, status model.SwapRequestStatus) (int64, error)

	// DeleteIfPending removes the request only while it is still pending;
	// returns the number of rows removed
	DeleteIfPending(tx *gorm.DB, id string) (int64, error)

	// CountByStatus returns the number of requests per status
	CountByStatus(tx *gorm.DB) (map[model.SwapRequestStatus]int64, error)
}
