// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package domain holds the Category aggregate, its validation protocol,
// and the repository contract the application layer depends on.
// Infrastructure packages implement the contract; nothing in here touches
// a database or the network.
package domain

import "github.com/google/uuid"

// CategoryID is the validated identifier value object for categories.
// It always holds a canonical UUID string and is immutable once built.
type CategoryID struct {
	value string
}

// NewCategoryID generates a fresh random identifier.
func NewCategoryID() CategoryID {
	return CategoryID{value: uuid.NewString()}
}

// ParseCategoryID validates and wraps an identifier received from the
// outside. A malformed string is a caller error, not a business-rule
// violation, so it fails here instead of going through a notification.
func ParseCategoryID(s string) (CategoryID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return CategoryID{}, InvalidIDError{Value: s}
	}
	return CategoryID{value: id.String()}, nil
}

// String returns the canonical UUID text form.
func (id CategoryID) String() string {
	return id.value
}

// Equals reports whether two identifiers refer to the same category.
func (id CategoryID) Equals(other CategoryID) bool {
	return id.value == other.value
}

// IsZero reports whether the identifier was never initialized.
func (id CategoryID) IsZero() bool {
	return id.value == ""
}
