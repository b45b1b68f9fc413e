package main

import (
	"flag"
	"fmt"
	"os"

	"codeberg.org/trigonal/backend/internal/auth"
	"codeberg.org/trigonal/backend/internal/logger"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// prints a signed JWT for exercising the admin endpoints
func main() {
	email := flag.String("email", "architect@trigonal.tech", "email claim")
	userID := flag.String("user", "", "user id claim (random when empty)")
	isAdmin := flag.Bool("admin", true, "set the is_admin claim")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logger.Debug(".env file not found, using process environment")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Fatal("JWT_SECRET not set")
	}

	if *userID == "" {
		*userID = uuid.New().String()
	}

	token, err := auth.GenerateJWT(secret, *userID, *email, *isAdmin)
	if err != nil {
		logger.FatalErr(err, "failed to sign token")
	}

	fmt.Println(token)
}
