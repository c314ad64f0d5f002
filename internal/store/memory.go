// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"catalog/internal/domain"
)

// MemoryCategoryStore is a mutex-guarded in-process implementation of the
// repository contract. It backs unit tests and local experiments; the
// semantics (absent marker, not-found errors, deterministic search) match
// the Postgres store.
type MemoryCategoryStore struct {
	mu    sync.RWMutex
	items map[string]*domain.Category
}

// NewMemoryCategoryStore returns an empty in-memory store.
func NewMemoryCategoryStore() *MemoryCategoryStore {
	return &MemoryCategoryStore{items: make(map[string]*domain.Category)}
}

// clone snapshots a category so callers never share mutable state with
// the store's copy.
func clone(c *domain.Category) *domain.Category {
	var desc *string
	if c.Description != nil {
		d := *c.Description
		desc = &d
	}
	return domain.RestoreCategory(c.ID, c.Name, desc, c.IsActive, c.CreatedAt)
}

// Insert persists a new category. A duplicate identifier is a persistence
// error, mirroring the primary-key violation the SQL store would raise.
func (s *MemoryCategoryStore) Insert(_ context.Context, category *domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := category.ID.String()
	if _, exists := s.items[key]; exists {
		return fmt.Errorf("insert category: id %s already exists", key)
	}
	s.items[key] = clone(category)
	return nil
}

// FindByID returns the category or (nil, nil) when absent.
func (s *MemoryCategoryStore) FindByID(_ context.Context, id domain.CategoryID) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.items[id.String()]
	if !ok {
		return nil, nil
	}
	return clone(c), nil
}

// Update replaces an existing category or reports NotFoundError.
func (s *MemoryCategoryStore) Update(_ context.Context, category *domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := category.ID.String()
	if _, ok := s.items[key]; !ok {
		return domain.NewNotFoundError(key, domain.EntityCategory)
	}
	s.items[key] = clone(category)
	return nil
}

// Delete removes a category or reports NotFoundError.
func (s *MemoryCategoryStore) Delete(_ context.Context, id domain.CategoryID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := id.String()
	if _, ok := s.items[key]; !ok {
		return domain.NewNotFoundError(key, domain.EntityCategory)
	}
	delete(s.items, key)
	return nil
}

// Search filters, sorts, and paginates the stored categories. Params are
// normalized here as well so the store is safe to call directly. The id
// breaks ordering ties to keep equal inputs deterministic.
func (s *MemoryCategoryStore) Search(_ context.Context, params domain.SearchParams) (domain.SearchResult, error) {
	params = params.Normalize()

	s.mu.RLock()
	matched := make([]*domain.Category, 0, len(s.items))
	filter := strings.ToLower(params.Filter)
	for _, c := range s.items {
		if filter != "" && !strings.Contains(strings.ToLower(c.Name), filter) {
			continue
		}
		matched = append(matched, clone(c))
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		var less, equal bool
		switch params.Sort {
		case domain.SortByName:
			less, equal = a.Name < b.Name, a.Name == b.Name
		default:
			less, equal = a.CreatedAt.Before(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
		}
		if equal {
			return a.ID.String() < b.ID.String()
		}
		if params.SortDir == domain.SortDesc {
			return !less
		}
		return less
	})

	total := len(matched)
	offset := (params.Page - 1) * params.PerPage
	if offset > total {
		offset = total
	}
	end := offset + params.PerPage
	if end > total {
		end = total
	}

	return domain.SearchResult{
		Items:       matched[offset:end],
		Total:       total,
		CurrentPage: params.Page,
		PerPage:     params.PerPage,
		LastPage:    (total + params.PerPage - 1) / params.PerPage,
	}, nil
}
