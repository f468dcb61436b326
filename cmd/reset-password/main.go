package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go-pos-backend/pkg/database"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// Ops escape hatch: resets a user's password directly in the store when the
// owner is locked out of /user/password.
func main() {
	email := flag.String("email", "", "email of the user to reset")
	password := flag.String("password", "", "new password to set")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("usage: reset-password -email <email> -password <new password>")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	db := database.ConnectDB()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	res, err := db.Collection("users").UpdateOne(ctx,
		bson.M{"email": *email},
		bson.M{"$set": bson.M{"password": string(hashedPassword)}})
	if err != nil {
		log.Fatalf("Failed to update password: %v", err)
	}
	if res.MatchedCount == 0 {
		log.Fatalf("User %s not found", *email)
	}

	log.Printf("Password for %s has been reset", *email)
}
