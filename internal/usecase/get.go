// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package usecase

import (
	"context"

	"catalog/internal/domain"
)

// GetCategory loads a single category by identifier.
type GetCategory struct {
	repo domain.CategoryRepository
}

// NewGetCategory wires the use case with its repository.
func NewGetCategory(repo domain.CategoryRepository) *GetCategory {
	return &GetCategory{repo: repo}
}

// GetCategoryInput identifies the category to load.
type GetCategoryInput struct {
	ID string
}

// Execute parses the identifier (malformed input fails before any
// repository call), loads the category, and projects it.
func (uc *GetCategory) Execute(ctx context.Context, in GetCategoryInput) (CategoryOutput, error) {
	id, err := domain.ParseCategoryID(in.ID)
	if err != nil {
		return CategoryOutput{}, err
	}

	category, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return CategoryOutput{}, err
	}
	if category == nil {
		return CategoryOutput{}, domain.NewNotFoundError(in.ID, domain.EntityCategory)
	}

	return toOutput(category), nil
}
