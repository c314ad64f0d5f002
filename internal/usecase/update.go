// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package usecase

import (
	"context"

	"catalog/internal/domain"
)

// UpdateCategory applies a partial update to an existing category.
type UpdateCategory struct {
	repo domain.CategoryRepository
}

// NewUpdateCategory wires the use case with its repository.
func NewUpdateCategory(repo domain.CategoryRepository) *UpdateCategory {
	return &UpdateCategory{repo: repo}
}

// UpdateCategoryInput is a partial-update record. Name is applied only
// when non-empty. Description is tri-state: HasDescription distinguishes
// "not supplied" from an explicit null (Description == nil) or a value.
// IsActive is tri-state through the pointer.
type UpdateCategoryInput struct {
	ID             string
	Name           string
	Description    *string
	HasDescription bool
	IsActive       *bool
}

// Execute loads the category, applies the supplied mutations, and
// persists the result. When the entity's notification reports errors
// after the mutations, persistence is skipped entirely and a
// ValidationError with the structured payload is returned.
//
// FindByID followed by Update is not atomic: a concurrent delete between
// the two calls surfaces as NotFoundError from Update. That narrow race
// is accepted at this layer.
func (uc *UpdateCategory) Execute(ctx context.Context, in UpdateCategoryInput) (CategoryOutput, error) {
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

	if in.Name != "" {
		category.ChangeName(in.Name)
	}
	if in.HasDescription {
		category.ChangeDescription(in.Description)
	}
	if in.IsActive != nil {
		if *in.IsActive {
			category.Activate()
		} else {
			category.Deactivate()
		}
	}

	if category.Notification.HasErrors() {
		return CategoryOutput{}, domain.ValidationError{Fields: category.Notification.Errors()}
	}

	if err := uc.repo.Update(ctx, category); err != nil {
		return CategoryOutput{}, err
	}

	return toOutput(category), nil
}
