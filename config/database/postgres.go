package database

import (
	"Eatdentify/config/environment"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
)

var PostgresDB *sql.DB

const usersSchema = `
CREATE TABLE IF NOT EXISTS users (
	username TEXT PRIMARY KEY,
	password TEXT NOT NULL,
	remarks  TEXT NOT NULL DEFAULT ''
)`

// InitPostgres opens the connection pool and makes sure the users table exists.
func InitPostgres() {
	connStr := environment.GetDatabaseURL()
	if connStr == "" {
		log.Fatal("DATABASE_URL environment variable is missing")
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalf("Failed to open Postgres connection: %v", err)
	}

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to reach Postgres: %v", err)
	}

	db.SetMaxOpenConns(10)

	if _, err := db.Exec(usersSchema); err != nil {
		log.Fatalf("Failed to create users table: %v", err)
	}

	PostgresDB = db
	log.Println("Postgres initialized successfully")
}

// GetPostgresDB returns the shared connection pool.
func GetPostgresDB() *sql.DB {
	return PostgresDB
}
