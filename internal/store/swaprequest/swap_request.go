package swaprequest

import (
	"time"

	"gorm.io/gorm"

	"github.com/skillswaphq/skillswap-backend/internal/model"
)

type store struct {
}

func New() IStore {
	return &store{}
}

func (s *store) Create(tx *gorm.DB, swapRequest *model.SwapRequest) (*model.SwapRequest, error) {
	return swapRequest, tx.Create(swapRequest).Error
}

func (s *store) GetByID(tx *gorm.DB, id string) (*model.SwapRequest, error) {
	var swapRequest model.SwapRequest
	err := tx.Where("id = ?", id).First(&swapRequest).Error
	if err != nil {
		return nil, err
	}
	return &swapRequest, nil
}

func (s *store) GetByIDWithUsers(tx *gorm.DB, id string) (*model.SwapRequest, error) {
	var swapRequest model.SwapRequest
	err := tx.
		Preload("Requester").
		Preload("Accepter").
		Where("id = ?", id).
		First(&swapRequest).Error
	if err != nil {
		return nil, err
	}
	return &swapRequest, nil
}

func (s *store) HasPending(tx *gorm.DB, requesterID, accepterID string) (bool, error) {
	var count int64
	err := tx.Model(&model.SwapRequest{}).
		Where("requester_id = ? AND accepter_id = ? AND status = ?",
			requesterID, accepterID, model.SwapRequestStatusPending).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *store) FindForUser(tx *gorm.DB, userID string, status model.SwapRequestStatus) ([]model.SwapRequest, error) {
	query := tx.Model(&model.SwapRequest{}).
		Preload("Requester").
		Preload("Accepter").
		Where("requester_id = ? OR accepter_id = ?", userID, userID)

	if status != "" {
		query = query.Where("status = ?", status)
	}

	var swapRequests []model.SwapRequest
	err := query.Order("created_at DESC").Find(&swapRequests).Error
	if err != nil {
		return nil, err
	}
	return swapRequests, nil
}

func (s *store) UpdateStatusIfPending(tx *gorm.DB, id string, status model.SwapRequestStatus) (int64, error) {
	result := tx.Model(&model.SwapRequest{}).
		Where("id = ? AND status = ?", id, model.SwapRequestStatusPending).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

func (s *store) DeleteIfPending(tx *gorm.DB, id string) (int64, error) {
	result := tx.
		Where("id = ? AND status = ?", id, model.SwapRequestStatusPending).
		Delete(&model.SwapRequest{})
	return result.RowsAffected, result.Error
}

func (s *store) CountByStatus(tx *gorm.DB) (map[model.SwapRequestStatus]int64, error) {
	type statusCount struct {
		Status model.SwapRequestStatus
		Count  int64
	}

	var rows []statusCount
	err := tx.Model(&model.SwapRequest{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[model.SwapRequestStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
