package user

import "github.com/gin-gonic/gin"

type IHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	UpdateProfile(c *gin.Context)
	UpdateProfilePhoto(c *gin.Context)
}

type ListUsersRequest struct {
	Search       string `form:"search" json:"search"`
	Availability string `form:"availability" json:"availability"`
}

// UpdateProfileRequest carries the allow-listed profile fields. Unknown keys
// in the body are dropped by binding; absent keys stay nil and untouched.
type UpdateProfileRequest struct {
	Name          *string   `json:"name"`
	Location      *string   `json:"location"`
	SkillsOffered *[]string `json:"skills_offered"`
	SkillsWanted  *[]string `json:"skills_wanted"`
	Availability  *string   `json:"availability"`
	IsPublic      *bool     `json:"is_public"`
}
