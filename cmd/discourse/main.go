package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	discourse "github.com/danielsimon/discourse"
)

func main() {
	loadDotEnv()

	app := discourse.New(discourse.ConfigFromEnv())
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// loadDotEnv loads .env files with priority: .env.local > .env.
// godotenv.Load does not overwrite already-set variables, so OS env vars
// always win.
func loadDotEnv() {
	candidates := []string{".env.local", ".env"}
	var found []string
	for _, f := range candidates {
		if _, err := os.Stat(f); err == nil {
			found = append(found, f)
		}
	}
	if len(found) > 0 {
		_ = godotenv.Load(found...)
	}
}
