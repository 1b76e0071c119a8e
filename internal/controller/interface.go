package controller

import "github.com/skillswaphq/skillswap-backend/internal/model"

// CreateSwapRequestInput is the typed command for opening a swap negotiation.
type CreateSwapRequestInput struct {
	RequesterID  string
	AccepterID   string
	OfferedSkill string
	WantedSkill  string
	Message      string
}

// ProfileUpdate carries the allow-listed profile fields; nil means unchanged.
type ProfileUpdate struct {
	Name          *string
	Location      *string
	SkillsOffered *[]string
	SkillsWanted  *[]string
	Availability  *string
	IsPublic      *bool
}

type IController interface {
	// Auth
	Register(name, email, password string) (*model.User, error)
	Login(email, password string) (*model.User, error)

	// User directory
	GetUser(id string) (*model.User, error)
	ListUsers(search, availability string) ([]model.User, error)
	UpdateProfile(id, actingUserID string, update ProfileUpdate) (*model.User, error)

	// Swap request workflow
	CreateSwapRequest(input CreateSwapRequestInput) (*model.SwapRequest, error)
	ListSwapRequestsForUser(userID string, status model.SwapRequestStatus) ([]model.SwapRequest, error)
	AcceptSwapRequest(id, actingUserID string) (*model.SwapRequest, error)
	RejectSwapRequest(id, actingUserID string) (*model.SwapRequest, error)
	DeleteSwapRequest(id, actingUserID string) error
}
