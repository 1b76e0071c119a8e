package model

import (
	"time"
)

type User struct {
	ID              string      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name            string      `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Email           string      `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash    string      `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Location        string      `gorm:"column:location;type:varchar(255)" json:"location,omitempty"`
	ProfilePhotoURL string      `gorm:"column:profile_photo_url;type:varchar(512)" json:"profile_photo_url,omitempty"`
	SkillsOffered   StringArray `gorm:"column:skills_offered;type:text[]" json:"skills_offered"`
	SkillsWanted    StringArray `gorm:"column:skills_wanted;type:text[]" json:"skills_wanted"`
	Availability    string      `gorm:"column:availability;type:varchar(50)" json:"availability,omitempty"`
	IsPublic        bool        `gorm:"column:is_public;not null;default:true" json:"is_public"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
