// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package domain

import "context"

// Sort columns accepted by Search. Anything else falls back to the
// default ordering so results stay deterministic.
const (
	SortByName      = "name"
	SortByCreatedAt = "created_at"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// DefaultPerPage is the page size used when the caller does not choose one.
const DefaultPerPage = 15

// SearchParams describes a paginated category listing request.
type SearchParams struct {
	Page    int
	PerPage int
	Filter  string // case-insensitive name substring
	Sort    string // SortByName or SortByCreatedAt
	SortDir string // SortAsc or SortDesc
}

// Normalize fills in defaults and clamps out-of-range values: page >= 1,
// per-page >= 1 (default 15), unknown sort columns become created_at
// descending, unknown directions become ascending.
func (p SearchParams) Normalize() SearchParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	switch p.Sort {
	case SortByName, SortByCreatedAt:
		if p.SortDir != SortAsc && p.SortDir != SortDesc {
			p.SortDir = SortAsc
		}
	default:
		p.Sort = SortByCreatedAt
		p.SortDir = SortDesc
	}
	return p
}

// SearchResult is one page of categories plus pagination totals.
type SearchResult struct {
	Items       []*Category
	Total       int
	CurrentPage int
	PerPage     int
	LastPage    int
}

// CategoryRepository is the persistence contract the application layer
// depends on. Infrastructure implements it; the domain only defines it.
//
// FindByID reports absence as (nil, nil) — callers must check, absence is
// not an error at this boundary. Update and Delete return NotFoundError
// when no row matches. Insert surfaces duplicate identifiers as a plain
// persistence error. Implementations own their transactional discipline;
// the application layer adds no locking on top.
type CategoryRepository interface {
	Insert(ctx context.Context, category *Category) error
	FindByID(ctx context.Context, id CategoryID) (*Category, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id CategoryID) error
	Search(ctx context.Context, params SearchParams) (SearchResult, error)
}
