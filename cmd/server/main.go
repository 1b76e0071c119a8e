package main

import (
	"github.com/skillswaphq/skillswap-backend/internal/server"
)

// @title SkillSwap API
// @version 1.0
// @description REST API for the SkillSwap skill-exchange marketplace
// @BasePath /api/v1
func main() {
	server.Init()
}
