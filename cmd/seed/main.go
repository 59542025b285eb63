// Seeds the configured review store with the site's launch reviews. Safe to
// run repeatedly: a non-empty store is left alone.
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"boost_site/internal/adapters/observability"
	"boost_site/internal/domain"
	"boost_site/internal/shared"
	filestore "boost_site/internal/storage/file"
	sqlitestore "boost_site/internal/storage/sqlite"
)

var launchReviews = []domain.Review{
	{ID: "seed-01", Author: "Customer A", Rating: 5, Service: "Long-term",
		Date:    "January 15, 2024",
		Content: "Safe and trustworthy from start to finish. Progress updates came in throughout the work, so I could hand the account over with confidence."},
	{ID: "seed-02", Author: "Customer B", Rating: 5, Service: "Starter",
		Date:    "January 12, 2024",
		Content: "Real-time chat made the whole process easy. The account came back clean and the security steps were followed to the letter."},
	{ID: "seed-03", Author: "Customer C", Rating: 5, Service: "Value",
		Date:    "January 10, 2024",
		Content: "First time using a service like this and it was far more professional than I expected. Transparent contract, quick responses when an issue came up."},
	{ID: "seed-04", Author: "Customer D", Rating: 5, Service: "Long-term",
		Date:    "January 8, 2024",
		Content: "I've used them several times and it's been great every time. The pilots are friendly and clearly know the game."},
	{ID: "seed-05", Author: "Customer E", Rating: 5, Service: "Starter",
		Date:    "January 5, 2024",
		Content: "They really cared about account security. Two-factor was set up for me and I was reminded to change my password after handback."},
	{ID: "seed-06", Author: "Customer F", Rating: 5, Service: "Value",
		Date:    "January 1, 2024",
		Content: "Reasonable prices and great quality. Everything was handled transparently, unlike other services I've tried. I'll be back."},
}

func main() {
	ctx := context.Background()
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	var store domain.ReviewStore
	switch cfg.StoreBackend {
	case "sqlite":
		repo, err := sqlitestore.Open(cfg.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Msg("open sqlite store failed")
		}
		store = repo
	case "file":
		store = filestore.Open(cfg.DataFile)
	default:
		log.Fatal().Str("backend", cfg.StoreBackend).Msg("unknown STORE_BACKEND")
	}
	defer store.Close()

	existing, err := store.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("list failed")
	}
	if len(existing) > 0 {
		log.Info().Int("count", len(existing)).Msg("store already seeded, nothing to do")
		return
	}

	// Insert oldest first so the list comes out newest-first.
	for i := len(launchReviews) - 1; i >= 0; i-- {
		if err := store.Insert(ctx, launchReviews[i]); err != nil {
			log.Fatal().Err(err).Str("id", launchReviews[i].ID).Msg("seed insert failed")
		}
	}
	log.Info().Int("count", len(launchReviews)).Str("backend", cfg.StoreBackend).Msg("seeding completed")
}
