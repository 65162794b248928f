package main

import (
	"log"

	"github.com/joho/godotenv"

	"CarWash/CronJobs"
	"CarWash/Database"
	"CarWash/FiberConfig"
	"CarWash/ManipulateData"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	if err := Database.Connect(); err != nil {
		log.Fatal("Failed to initialize Firebase:", err)
	}

	manager, err := ManipulateData.NewManager(Database.NewStore())
	if err != nil {
		log.Fatal("Failed to load data:", err)
	}

	refresher := CronJobs.NewRefresher(manager, false)
	if err := refresher.Start(); err != nil {
		log.Printf("Failed to start refresher: %v", err)
	}

	FiberConfig.FiberConfig(manager)
}
