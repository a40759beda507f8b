package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"authapi/config"
	"authapi/pkg/helpers"
)

// Seeds a single user for local development. Safe to run repeatedly; an
// existing username is left untouched.
func main() {
	username := flag.String("username", "demo", "username to seed")
	password := flag.String("password", "password123", "password to seed")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	hash, err := helpers.HashPassword(*password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO NOTHING
		RETURNING id::text
	`, *username, hash).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		fmt.Printf("user %q already exists, nothing to do\n", *username)
		return
	}
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s username=%s\n", id, *username)
}
