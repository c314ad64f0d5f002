// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// usecase_test.go provides shared helpers for the use-case tests. The
// suites run against the in-memory repository so they cover the full
// orchestration without a database.
package usecase

import (
	"context"
	"testing"

	"catalog/internal/domain"
	"catalog/internal/store"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// seedCategory inserts a valid category and returns its projection.
func seedCategory(t *testing.T, repo domain.CategoryRepository, name string, description *string) *domain.Category {
	t.Helper()
	c := domain.NewCategory(domain.CategoryInput{Name: name, Description: description})
	if c.Notification.HasErrors() {
		t.Fatalf("seed category %q is invalid: %v", name, c.Notification.Errors())
	}
	if err := repo.Insert(context.Background(), c); err != nil {
		t.Fatalf("seed insert %q: %v", name, err)
	}
	return c
}

// recordingRepo wraps a repository and counts calls, so tests can assert
// that some paths never reach persistence.
type recordingRepo struct {
	domain.CategoryRepository
	calls int
}

func (r *recordingRepo) Insert(ctx context.Context, c *domain.Category) error {
	r.calls++
	return r.CategoryRepository.Insert(ctx, c)
}

func (r *recordingRepo) FindByID(ctx context.Context, id domain.CategoryID) (*domain.Category, error) {
	r.calls++
	return r.CategoryRepository.FindByID(ctx, id)
}

func (r *recordingRepo) Update(ctx context.Context, c *domain.Category) error {
	r.calls++
	return r.CategoryRepository.Update(ctx, c)
}

func (r *recordingRepo) Delete(ctx context.Context, id domain.CategoryID) error {
	r.calls++
	return r.CategoryRepository.Delete(ctx, id)
}

func newRecordingRepo() *recordingRepo {
	return &recordingRepo{CategoryRepository: store.NewMemoryCategoryStore()}
}
