// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package domain

import "fmt"

// InvalidIDError signals a malformed identifier string. It is raised at
// construction time, before any repository call is made.
type InvalidIDError struct {
	Value string
}

func (e InvalidIDError) Error() string {
	return fmt.Sprintf("id %q must be a valid UUID", e.Value)
}

// NotFoundError signals that no record exists for the given identifier.
type NotFoundError struct {
	ID     string
	Entity string
}

// NewNotFoundError builds a NotFoundError for an entity name and id.
func NewNotFoundError(id, entity string) NotFoundError {
	return NotFoundError{ID: id, Entity: entity}
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found using id %s", e.Entity, e.ID)
}

// ValidationError carries the structured field→messages payload of a
// failed entity mutation. Handlers surface it with full field detail.
type ValidationError struct {
	Fields map[string][]string
}

func (e ValidationError) Error() string {
	return "entity validation failed"
}
