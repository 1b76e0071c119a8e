package view

import (
	"time"

	"github.com/skillswaphq/skillswap-backend/internal/model"
)

// Participant is the contact-safe projection of a swap request party.
// Credential fields never appear here.
type Participant struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	ProfilePhotoURL string `json:"profile_photo_url,omitempty"`
}

// SwapRequestDetail is the enriched single-request view returned by the
// create/accept/reject operations.
type SwapRequestDetail struct {
	ID                    string                  `json:"id"`
	Requester             Participant             `json:"requester"`
	Accepter              Participant             `json:"accepter"`
	RequesterOfferedSkill string                  `json:"requester_offered_skill"`
	AccepterWantedSkill   string                  `json:"accepter_wanted_skill"`
	Message               string                  `json:"message,omitempty"`
	Status                model.SwapRequestStatus `json:"status"`
	CreatedAt             time.Time               `json:"created_at"`
	UpdatedAt             time.Time               `json:"updated_at"`
}

// SwapRequestItem is the caller-oriented list entry. IsRequester tags the
// viewing user's role so one list serves both sent and received views.
type SwapRequestItem struct {
	ID                    string                  `json:"id"`
	RequesterName         string                  `json:"requester_name"`
	RequesterPhotoURL     string                  `json:"requester_photo_url,omitempty"`
	AccepterName          string                  `json:"accepter_name"`
	AccepterPhotoURL      string                  `json:"accepter_photo_url,omitempty"`
	RequesterOfferedSkill string                  `json:"requester_offered_skill"`
	AccepterWantedSkill   string                  `json:"accepter_wanted_skill"`
	Message               string                  `json:"message,omitempty"`
	Status                model.SwapRequestStatus `json:"status"`
	CreatedAt             time.Time               `json:"created_at"`
	IsRequester           bool                    `json:"is_requester"`
}

func toParticipant(u *model.User) Participant {
	if u == nil {
		return Participant{}
	}
	return Participant{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		ProfilePhotoURL: u.ProfilePhotoURL,
	}
}

func ToSwapRequestDetail(r *model.SwapRequest) SwapRequestDetail {
	return SwapRequestDetail{
		ID:                    r.ID,
		Requester:             toParticipant(r.Requester),
		Accepter:              toParticipant(r.Accepter),
		RequesterOfferedSkill: r.RequesterOfferedSkill,
		AccepterWantedSkill:   r.AccepterWantedSkill,
		Message:               r.Message,
		Status:                r.Status,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}

func ToSwapRequestItem(r model.SwapRequest, viewerID string) SwapRequestItem {
	item := SwapRequestItem{
		ID:                    r.ID,
		RequesterOfferedSkill: r.RequesterOfferedSkill,
		AccepterWantedSkill:   r.AccepterWantedSkill,
		Message:               r.Message,
		Status:                r.Status,
		CreatedAt:             r.CreatedAt,
		IsRequester:           r.RequesterID == viewerID,
	}
	if r.Requester != nil {
		item.RequesterName = r.Requester.Name
		item.RequesterPhotoURL = r.Requester.ProfilePhotoURL
	}
	if r.Accepter != nil {
		item.AccepterName = r.Accepter.Name
		item.AccepterPhotoURL = r.Accepter.ProfilePhotoURL
	}
	return item
}

func ToSwapRequestItems(requests []model.SwapRequest, viewerID string) []SwapRequestItem {
	items := make([]SwapRequestItem, 0, len(requests))
	for _, r := range requests {
		items = append(items, ToSwapRequestItem(r, viewerID))
	}
	return items
}
