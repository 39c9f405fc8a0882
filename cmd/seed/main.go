// Command main runs the database seeder for Lingopal.
package main

import (
	"flag"
	"log"

	"lingopal/internal/config"
	"lingopal/internal/database"
	"lingopal/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	friendPairs := flag.Int("pairs", 80, "Number of friend pairs to connect")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "Skip password hashing (fast, accounts cannot log in)")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d pairs, clean=%v\n", *numUsers, *friendPairs, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		FriendPairs: *friendPairs,
		ShouldClean: *shouldClean,
		SkipBcrypt:  *skipBcrypt,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Test users have the password: password123")
}
