// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package usecase

import (
	"context"

	"catalog/internal/domain"
)

// CreateCategory builds a new category from caller input and persists it.
type CreateCategory struct {
	repo domain.CategoryRepository
}

// NewCreateCategory wires the use case with its repository.
func NewCreateCategory(repo domain.CategoryRepository) *CreateCategory {
	return &CreateCategory{repo: repo}
}

// CreateCategoryInput carries the fields for a new category. IsActive is
// tri-state: nil means "not supplied" and defaults to active.
type CreateCategoryInput struct {
	Name        string
	Description *string
	IsActive    *bool
}

// Execute creates and inserts the category, returning its projection.
//
// TODO: decide with product whether create should reject categories whose
// notification has errors, the way update does. Today the gate is off and
// value-level violations are persisted; the HTTP boundary still rejects
// malformed payloads before they get here.
func (uc *CreateCategory) Execute(ctx context.Context, in CreateCategoryInput) (CategoryOutput, error) {
	category := domain.NewCategory(domain.CategoryInput{
		Name:        in.Name,
		Description: in.Description,
		IsActive:    in.IsActive,
	})

	if err := uc.repo.Insert(ctx, category); err != nil {
		return CategoryOutput{}, err
	}

	return toOutput(category), nil
}
