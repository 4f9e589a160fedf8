package main

import (
	"log"
	"os"

	"Warsha/FiberConfig"
	"Warsha/Models"
	"Warsha/Seeder"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "workshop.db"
	}

	db, err := Models.Connect(dbPath)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Seeder.SeedPeriodicBundles(db); err != nil {
		log.Println("Failed to seed maintenance bundles:", err)
	}

	FiberConfig.FiberConfig(db, dbPath)
}
