package swaprequest

import "github.com/gin-gonic/gin"

type IHandler interface {
	Create(c *gin.Context)
	ListMine(c *gin.Context)
	Accept(c *gin.Context)
	Reject(c *gin.Context)
	Delete(c *gin.Context)
}

type CreateSwapRequestRequest struct {
	AccepterID            string `json:"accepter_id" binding:"required" validate:"required"`
	RequesterOfferedSkill string `json:"requester_offered_skill" binding:"required" validate:"required"`
	AccepterWantedSkill   string `json:"accepter_wanted_skill" binding:"required" validate:"required"`
	Message               string `json:"message"`
}
