// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package usecase contains the application-level category operations.
// Each use case is a single linear orchestration over the domain entity
// and the repository contract, with the repository injected through the
// constructor. Use cases hold no state between calls.
package usecase

import (
	"time"

	"catalog/internal/domain"
)

// CategoryOutput is the plain projection every use case returns. It is a
// one-way snapshot: it never shares mutable state with the entity, and its
// field names are stable for any transport serializing it.
type CategoryOutput struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func toOutput(c *domain.Category) CategoryOutput {
	out := CategoryOutput{
		ID:        c.ID.String(),
		Name:      c.Name,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
	if c.Description != nil {
		d := *c.Description
		out.Description = &d
	}
	return out
}
