package controller

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/skillswaphq/skillswap-backend/internal/model"
)

func (c *Controller) Register(name, email, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	u := &model.User{
		Name:          strings.TrimSpace(name),
		Email:         strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:  string(hash),
		SkillsOffered: model.StringArray{},
		SkillsWanted:  model.StringArray{},
		IsPublic:      true,
	}

	created, err := c.store.User.Create(c.db, u)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, errors.Wrap(err, "failed to create user")
	}
	return created, nil
}

func (c *Controller) Login(email, password string) (*model.User, error) {
	u, err := c.store.User.GetByEmail(c.db, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, "failed to look up user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
