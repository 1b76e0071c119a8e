package user

import (
	"gorm.io/gorm"

	"github.com/skillswaphq/skillswap-backend/internal/model"
)

// ListFilter narrows the public directory listing. Search matches name and
// both skill arrays case-insensitively; Availability is an equality match.
type ListFilter struct {
	Search       string
	Availability string
	Limit        int
}

type IStore interface {
	// Create a new user record
	Create(tx *gorm.DB, user *model.User) (*model.User, error)

	// GetByID returns the user with the given id
	GetByID(tx *gorm.DB, id string) (*model.User, error)

	// GetByEmail returns the user with the given email
	GetByEmail(tx *gorm.DB, email string) (*model.User, error)

	// Find returns public users matching the filter, newest first
	Find(tx *gorm.DB, filter ListFilter) ([]model.User, error)

	// UpdateFields applies a column update map and returns the fresh record
	UpdateFields(tx *gorm.DB, id string, updates map[string]interface{}) (*model.User, error)
}
