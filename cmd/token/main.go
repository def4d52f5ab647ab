package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/Greenhouse_Go/internal/auth"
)

// token mints a bearer token for local testing against JWT_SECRET
func main() {
	account := flag.String("account", "", "account id to embed in the token")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()

	if *account == "" {
		log.Fatal("-account is required")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	token, err := auth.GenerateToken(*account, secret, *ttl)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}
	fmt.Println(auth.BearerPrefix + token)
}
