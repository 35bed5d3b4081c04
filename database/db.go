package database

import (
	"database/sql"
	"log"
	"time"

	"partyplan/config"

	_ "github.com/lib/pq"
)

// DB is the global Postgres connection pool.
var DB *sql.DB

// InitDB opens the Postgres connection and applies the schema.
func InitDB() {
	db, err := sql.Open("postgres", config.AppConfig.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open Postgres connection: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping Postgres: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to apply schema: %v", err)
	}

	DB = db
	log.Println("Connected to Postgres successfully!")
}
