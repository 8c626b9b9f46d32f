package main

import (
	"campground/config"
	"campground/di"
	"campground/shared/logger"

	_ "campground/docs"
)

// @title Campground API
// @version 1.0
// @description Campsite reservation service with interval-based admission control.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
