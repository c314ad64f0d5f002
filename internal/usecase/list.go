// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package usecase

import (
	"context"

	"catalog/internal/domain"
)

// ListCategories returns a filtered, sorted, paginated category page.
type ListCategories struct {
	repo domain.CategoryRepository
}

// NewListCategories wires the use case with its repository.
func NewListCategories(repo domain.CategoryRepository) *ListCategories {
	return &ListCategories{repo: repo}
}

// ListCategoriesInput mirrors the repository search parameters.
type ListCategoriesInput struct {
	Page    int
	PerPage int
	Filter  string
	Sort    string
	SortDir string
}

// ListCategoriesOutput is one projected page plus pagination totals.
type ListCategoriesOutput struct {
	Items       []CategoryOutput `json:"items"`
	Total       int              `json:"total"`
	CurrentPage int              `json:"current_page"`
	PerPage     int              `json:"per_page"`
	LastPage    int              `json:"last_page"`
}

// Execute normalizes the parameters, searches, and projects the page.
// Equal inputs always yield the same ordering.
func (uc *ListCategories) Execute(ctx context.Context, in ListCategoriesInput) (ListCategoriesOutput, error) {
	params := domain.SearchParams{
		Page:    in.Page,
		PerPage: in.PerPage,
		Filter:  in.Filter,
		Sort:    in.Sort,
		SortDir: in.SortDir,
	}.Normalize()

	result, err := uc.repo.Search(ctx, params)
	if err != nil {
		return ListCategoriesOutput{}, err
	}

	items := make([]CategoryOutput, 0, len(result.Items))
	for _, c := range result.Items {
		items = append(items, toOutput(c))
	}

	return ListCategoriesOutput{
		Items:       items,
		Total:       result.Total,
		CurrentPage: result.CurrentPage,
		PerPage:     result.PerPage,
		LastPage:    result.LastPage,
	}, nil
}
