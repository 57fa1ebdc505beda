// Command session-purger deletes expired employee sessions. It is meant to
// run on a schedule, e.g. a cron job or a Kubernetes CronJob.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	employeespostgres "github.com/retaildesk/storefront-api/internal/domains/employees/adapters/persistence/postgres"
	platformpostgres "github.com/retaildesk/storefront-api/internal/platform/postgres"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	db, cleanup := platformpostgres.Open(ctx, os.Getenv("POSTGRES_DSN"), logger)
	defer cleanup()
	if db == nil {
		log.Fatal("POSTGRES_DSN not set or connection failed; cannot purge sessions")
	}

	store := employeespostgres.NewSessionStore(db)
	purged, err := store.PurgeExpired(ctx)
	if err != nil {
		log.Fatalf("failed to purge sessions: %v", err)
	}
	log.Printf("session purge completed, removed %d expired sessions", purged)
}
