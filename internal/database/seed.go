package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"catalog/internal/domain"
	"catalog/internal/store"
)

// Seed populates the database with initial development data.
// It inserts a few starter categories if the table is empty so the API
// has something to list on a fresh checkout.
func Seed(db *sql.DB) error {
	// Check if any categories exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	starters := []struct {
		name        string
		description string
	}{
		{"Movie", "Feature-length films"},
		{"Documentary", "Non-fiction features"},
		{"Series", "Episodic titles"},
	}

	categories := store.NewCategoryStore(db)
	ctx := context.Background()
	for _, s := range starters {
		desc := s.description
		c := domain.NewCategory(domain.CategoryInput{Name: s.name, Description: &desc})
		if err := categories.Insert(ctx, c); err != nil {
			return fmt.Errorf("seed insert category %q: %w", s.name, err)
		}
	}

	slog.Info("database seeded with starter categories", "count", len(starters))
	return nil
}
