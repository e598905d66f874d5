// Command admintoken prints a bearer token for the admin routes, signed with
// ADMIN_TOKEN_SECRET.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"gothamai/config"
	"gothamai/internal/adapters/auth"
)

func main() {
	subject := flag.String("subject", "admin", "who the token is issued to")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.AdminTokenSecret == "" {
		log.Fatal("ADMIN_TOKEN_SECRET is not set")
	}

	token, err := auth.NewJWT(cfg.AdminTokenSecret).Issue(*subject, *ttl)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
