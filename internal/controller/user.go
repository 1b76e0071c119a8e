package controller

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/skillswaphq/skillswap-backend/internal/model"
	"github.com/skillswaphq/skillswap-backend/internal/store/user"
)

func (c *Controller) GetUser(id string) (*model.User, error) {
	u, err := c.store.User.GetByID(c.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "failed to look up user")
	}
	return u, nil
}

func (c *Controller) ListUsers(search, availability string) ([]model.User, error) {
	users, err := c.store.User.Find(c.db, user.ListFilter{
		Search:       search,
		Availability: availability,
		Limit:        maxDirectoryResults,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}
	return users, nil
}

func (c *Controller) UpdateProfile(id, actingUserID string, update ProfileUpdate) (*model.User, error) {
	if id != actingUserID {
		return nil, ErrNotProfileOwner
	}

	updates := update.columns()
	if len(updates) == 0 {
		return c.GetUser(id)
	}

	u, err := c.store.User.UpdateFields(c.db, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "failed to update profile")
	}
	return u, nil
}

// columns maps the allow-listed fields into a column update map. Anything not
// named here never reaches the store.
func (p ProfileUpdate) columns() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Location != nil {
		updates["location"] = *p.Location
	}
	if p.SkillsOffered != nil {
		updates["skills_offered"] = model.StringArray(*p.SkillsOffered)
	}
	if p.SkillsWanted != nil {
		updates["skills_wanted"] = model.StringArray(*p.SkillsWanted)
	}
	if p.Availability != nil {
		updates["availability"] = *p.Availability
	}
	if p.IsPublic != nil {
		updates["is_public"] = *p.IsPublic
	}
	return updates
}
