package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/JaimeStill/showroom/internal/migrations"
)

const EnvDatabaseDSN = "DATABASE_DSN"

func main() {
	var (
		dsn      = flag.String("dsn", "", "Database connection string")
		all      = flag.Bool("all", false, "Run all seeders")
		admin    = flag.Bool("admin", false, "Seed the admin account")
		products = flag.Bool("products", false, "Seed sample products")
		file     = flag.String("file", "", "External product seed file (overrides embedded)")
		list     = flag.Bool("list", false, "List available seeders")
		migrate  = flag.Bool("migrate", false, "Apply schema migrations before seeding")
		down     = flag.Bool("down", false, "Roll back every schema migration and exit")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("failed to load .env: %v", err)
	}

	if *file != "" {
		if seeder, ok := getSeeder("products"); ok {
			seeder.(*ProductSeeder).SetFile(*file)
		}
	}

	var names []string
	switch {
	case *down:
	case *all:
	case *admin || *products:
		if *admin {
			names = append(names, "admin")
		}
		if *products {
			names = append(names, "products")
		}
	case *migrate:
	default:
		fmt.Println("usage: seed -dsn <connection-string> [-migrate] [-all|-admin|-products] [-file <path>] [-list] [-down]")
		flag.PrintDefaults()
		return
	}

	if *dsn == "" {
		*dsn = os.Getenv(EnvDatabaseDSN)
	}
	if *dsn == "" {
		log.Fatalf("database connection string required: use -dsn flag or %s env var", EnvDatabaseDSN)
	}

	logger := slog.Default().With("system", "migrations")

	if *down || *migrate {
		target, err := migrationURL(*dsn)
		if err != nil {
			log.Fatal(err)
		}
		if *down {
			if err := migrations.Down(target, logger); err != nil {
				log.Fatalf("rollback failed: %v", err)
			}
			fmt.Println("schema rolled back")
			return
		}
		if err := migrations.Up(target, logger); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
		fmt.Println("schema migrated")
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	ctx := context.Background()

	if *all {
		if err := runAllSeeders(ctx, db); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("all seeders completed successfully")
		return
	}

	for _, name := range names {
		if err := runSeeder(ctx, db, name); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Printf("%s seeded successfully\n", name)
	}
}
