package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"time"

	"makemodelyear/pkg/config"
	"makemodelyear/pkg/database"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

const usage = `Usage: migrate [-dir migrations] <command> [args]

Commands:
    up                   Apply all pending migrations
    up-to VERSION        Apply migrations up to VERSION
    down                 Roll back the latest migration
    redo                 Roll back and re-apply the latest migration
    reset                Roll back every migration
    status               Print the status of all migrations
    version              Print the current schema version
    create NAME sql      Create a new SQL migration file
`

func main() {
	dir := flag.String("dir", "migrations", "directory with migration files")
	timeout := flag.Duration("timeout", 2*time.Minute, "time limit for the whole run")
	flag.Usage = func() { os.Stderr.WriteString(usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	command, rest := args[0], args[1:]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := sql.Open("postgres", database.DSN(cfg))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set dialect: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if command != "create" {
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("Database %s@%s:%s is unreachable: %v", cfg.DBName, cfg.DBHost, cfg.DBPort, err)
		}
	}

	if err := goose.RunContext(ctx, command, db, *dir, rest...); err != nil {
		log.Fatalf("migrate %s: %v", command, err)
	}
}
