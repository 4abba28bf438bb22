// usertool is a maintenance CLI over the user store: list accounts or
// clear the collection. Not part of the request path.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"authservice/config"
	pginfra "authservice/internal/infrastructure/postgres"
)

func main() {
	list := flag.Bool("list", false, "print all users")
	clear := flag.Bool("clear", false, "delete all users")
	flag.Parse()

	if *list == *clear {
		log.Fatal("usage: usertool -list | -clear")
	}

	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	repo := pginfra.NewUserRepository(pool)

	switch {
	case *list:
		users, err := repo.List(ctx)
		if err != nil {
			log.Fatalf("failed to list users: %v", err)
		}
		for _, u := range users {
			// never print the hash
			fmt.Printf("%s\t%s\t%s\n", u.ID, u.Username, u.CreatedAt.Format(time.RFC3339))
		}
		fmt.Printf("%d user(s)\n", len(users))
	case *clear:
		n, err := repo.Clear(ctx)
		if err != nil {
			log.Fatalf("failed to clear users: %v", err)
		}
		fmt.Printf("removed %d user(s)\n", n)
	}
}
