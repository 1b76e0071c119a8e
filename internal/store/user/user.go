package user

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/skillswaphq/skillswap-backend/internal/model"
)

type store struct {
}

func New() IStore {
	return &store{}
}

func (s *store) Create(tx *gorm.DB, user *model.User) (*model.User, error) {
	return user, tx.Create(user).Error
}

func (s *store) GetByID(tx *gorm.DB, id string) (*model.User, error) {
	var user model.User
	err := tx.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *store) GetByEmail(tx *gorm.DB, email string) (*model.User, error) {
	var user model.User
	err := tx.Where("LOWER(email) = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *store) Find(tx *gorm.DB, filter ListFilter) ([]model.User, error) {
	query := tx.Model(&model.User{}).Where("is_public = ?", true)

	if filter.Search != "" {
		q := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(array_to_string(skills_offered, ',')) LIKE ? OR LOWER(array_to_string(skills_wanted, ',')) LIKE ?",
			q, q, q,
		)
	}
	if filter.Availability != "" {
		query = query.Where("availability = ?", filter.Availability)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var users []model.User
	err := query.Order("created_at DESC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateFields applies a column map, so updated_at is bumped explicitly.
func (s *store) UpdateFields(tx *gorm.DB, id string, updates map[string]interface{}) (*model.User, error) {
	updates["updated_at"] = time.Now()
	result := tx.Model(&model.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return s.GetByID(tx, id)
}
