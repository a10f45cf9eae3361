package main

import (
	"log"

	"articlehub/config"
	"articlehub/global"
	"articlehub/repository"
	"articlehub/router"
)

func main() {
	config.InitConfig()

	store := repository.NewGormStore(global.Db)
	r := router.SetupRouter(store)

	port := config.AppConfig.App.Port
	if port == "" {
		port = ":8080"
	}
	if err := r.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
