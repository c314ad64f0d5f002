// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the persistence implementations of the domain
// repository contract.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"catalog/internal/domain"
)

// CategoryStore is the PostgreSQL implementation of
// domain.CategoryRepository.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore on the given connection pool.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryColumns = `id, name, description, is_active, created_at`

// sortColumns whitelists the ORDER BY targets. The params are normalized
// before use, but the store guards independently — sort input must never
// reach the SQL text unchecked.
var sortColumns = map[string]string{
	domain.SortByName:      "name",
	domain.SortByCreatedAt: "created_at",
}

// scanCategory rebuilds a domain category from a row.
func scanCategory(scanner interface{ Scan(...any) error }) (*domain.Category, error) {
	var (
		rawID       string
		name        string
		description sql.NullString
		isActive    bool
		createdAt   time.Time
	)
	if err := scanner.Scan(&rawID, &name, &description, &isActive, &createdAt); err != nil {
		return nil, err
	}

	id, err := domain.ParseCategoryID(rawID)
	if err != nil {
		return nil, fmt.Errorf("stored category id: %w", err)
	}

	var desc *string
	if description.Valid {
		desc = &description.String
	}
	return domain.RestoreCategory(id, name, desc, isActive, createdAt), nil
}

// Insert persists a new category. A duplicate identifier surfaces as the
// driver's unique-violation error, propagated unchanged.
func (s *CategoryStore) Insert(ctx context.Context, c *domain.Category) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (id, name, description, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, c.ID.String(), c.Name, c.Description, c.IsActive, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// FindByID retrieves a category by id. Returns (nil, nil) if not found.
func (s *CategoryStore) FindByID(ctx context.Context, id domain.CategoryID) (*domain.Category, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id.String())
	c, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return c, nil
}

// Update modifies an existing category. A missing row reports
// NotFoundError, which also covers the accepted find-then-update race
// against a concurrent delete.
func (s *CategoryStore) Update(ctx context.Context, c *domain.Category) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE categories SET name = $1, description = $2, is_active = $3
		WHERE id = $4
	`, c.Name, c.Description, c.IsActive, c.ID.String())
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update category rows affected: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError(c.ID.String(), domain.EntityCategory)
	}
	return nil
}

// Delete removes a category by id. A missing row reports NotFoundError.
func (s *CategoryStore) Delete(ctx context.Context, id domain.CategoryID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete category rows affected: %w", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError(id.String(), domain.EntityCategory)
	}
	return nil
}

// Search returns one page of categories matching the params, with the id
// as the ordering tiebreaker so equal inputs yield equal pages.
func (s *CategoryStore) Search(ctx context.Context, params domain.SearchParams) (domain.SearchResult, error) {
	params = params.Normalize()

	where := ""
	args := []any{}
	if params.Filter != "" {
		where = `WHERE name ILIKE '%' || $1 || '%'`
		args = append(args, params.Filter)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM categories ` + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return domain.SearchResult{}, fmt.Errorf("count categories: %w", err)
	}

	dir := "ASC"
	if params.SortDir == domain.SortDesc {
		dir = "DESC"
	}
	orderBy := fmt.Sprintf("ORDER BY %s %s, id ASC", sortColumns[params.Sort], dir)

	limitArg := len(args) + 1
	offsetArg := len(args) + 2
	args = append(args, params.PerPage, (params.Page-1)*params.PerPage)

	query := fmt.Sprintf(`SELECT %s FROM categories %s %s LIMIT $%d OFFSET $%d`,
		categoryColumns, where, orderBy, limitArg, offsetArg)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("search categories: %w", err)
	}
	defer rows.Close()

	var items []*domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return domain.SearchResult{}, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return domain.SearchResult{}, fmt.Errorf("search categories rows: %w", err)
	}

	return domain.SearchResult{
		Items:       items,
		Total:       total,
		CurrentPage: params.Page,
		PerPage:     params.PerPage,
		LastPage:    (total + params.PerPage - 1) / params.PerPage,
	}, nil
}
