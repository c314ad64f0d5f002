// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package usecase

import (
	"context"

	"catalog/internal/domain"
)

// DeleteCategory removes a category by identifier.
type DeleteCategory struct {
	repo domain.CategoryRepository
}

// NewDeleteCategory wires the use case with its repository.
func NewDeleteCategory(repo domain.CategoryRepository) *DeleteCategory {
	return &DeleteCategory{repo: repo}
}

// DeleteCategoryInput identifies the category to remove.
type DeleteCategoryInput struct {
	ID string
}

// Execute parses the identifier and deletes the category. A missing row
// propagates the repository's NotFoundError unchanged.
func (uc *DeleteCategory) Execute(ctx context.Context, in DeleteCategoryInput) error {
	id, err := domain.ParseCategoryID(in.ID)
	if err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}
