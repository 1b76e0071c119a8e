package controller

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/skillswaphq/skillswap-backend/internal/model"
)

func (c *Controller) CreateSwapRequest(input CreateSwapRequestInput) (*model.SwapRequest, error) {
	offeredSkill := strings.TrimSpace(input.OfferedSkill)
	wantedSkill := strings.TrimSpace(input.WantedSkill)
	if offeredSkill == "" || wantedSkill == "" {
		return nil, ErrMissingSkills
	}
	if input.RequesterID == input.AccepterID {
		return nil, ErrSelfSwapRequest
	}

	var created *model.SwapRequest
	err := c.doInTx(c.db, func(tx *gorm.DB) error {
		if _, err := c.store.User.GetByID(tx, input.AccepterID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return errors.Wrap(err, "failed to look up accepter")
		}

		hasPending, err := c.store.SwapRequest.HasPending(tx, input.RequesterID, input.AccepterID)
		if err != nil {
			return errors.Wrap(err, "failed to check pending requests")
		}
		if hasPending {
			return ErrDuplicatePendingRequest
		}

		swapRequest := &model.SwapRequest{
			RequesterID:           input.RequesterID,
			AccepterID:            input.AccepterID,
			RequesterOfferedSkill: offeredSkill,
			AccepterWantedSkill:   wantedSkill,
			Message:               strings.TrimSpace(input.Message),
			Status:                model.SwapRequestStatusPending,
		}

		created, err = c.store.SwapRequest.Create(tx, swapRequest)
		if err != nil {
			// Loser of a concurrent create race: the partial unique index on
			// (requester_id, accepter_id) WHERE status = 'pending' holds the
			// at-most-one-pending invariant when the pre-check passes twice.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicatePendingRequest
			}
			return errors.Wrap(err, "failed to create swap request")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	enriched, err := c.store.SwapRequest.GetByIDWithUsers(c.db, created.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load created swap request")
	}
	return enriched, nil
}

func (c *Controller) ListSwapRequestsForUser(userID string, status model.SwapRequestStatus) ([]model.SwapRequest, error) {
	swapRequests, err := c.store.SwapRequest.FindForUser(c.db, userID, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list swap requests")
	}
	return swapRequests, nil
}

func (c *Controller) AcceptSwapRequest(id, actingUserID string) (*model.SwapRequest, error) {
	return c.respondToSwapRequest(id, actingUserID, model.SwapRequestStatusAccepted)
}

func (c *Controller) RejectSwapRequest(id, actingUserID string) (*model.SwapRequest, error) {
	return c.respondToSwapRequest(id, actingUserID, model.SwapRequestStatusRejected)
}

// respondToSwapRequest is the accepter-side transition out of pending. The
// authorization and state gates run before any write, and the write itself is
// conditional on status still being pending, so a concurrent loser observes
// ErrRequestNotPending instead of clobbering the record.
func (c *Controller) respondToSwapRequest(id, actingUserID string, to model.SwapRequestStatus) (*model.SwapRequest, error) {
	swapRequest, err := c.store.SwapRequest.GetByID(c.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSwapRequestNotFound
		}
		return nil, errors.Wrap(err, "failed to look up swap request")
	}

	if swapRequest.AccepterID != actingUserID {
		return nil, ErrNotAccepter
	}
	if swapRequest.Status != model.SwapRequestStatusPending {
		return nil, ErrRequestNotPending
	}

	rows, err := c.store.SwapRequest.UpdateStatusIfPending(c.db, id, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update swap request status")
	}
	if rows == 0 {
		return nil, ErrRequestNotPending
	}

	updated, err := c.store.SwapRequest.GetByIDWithUsers(c.db, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load updated swap request")
	}
	return updated, nil
}

func (c *Controller) DeleteSwapRequest(id, actingUserID string) error {
	swapRequest, err := c.store.SwapRequest.GetByID(c.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSwapRequestNotFound
		}
		return errors.Wrap(err, "failed to look up swap request")
	}

	if swapRequest.RequesterID != actingUserID {
		return ErrNotRequester
	}
	if swapRequest.Status != model.SwapRequestStatusPending {
		return ErrRequestNotPending
	}

	// Hard delete. The schema reserves a cancelled status but withdrawal has
	// always removed the record, and a soft-cancel would change observable
	// history semantics.
	rows, err := c.store.SwapRequest.DeleteIfPending(c.db, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete swap request")
	}
	if rows == 0 {
		return ErrRequestNotPending
	}
	return nil
}
