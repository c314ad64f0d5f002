// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package domain

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestNewCategoryDefaults(t *testing.T) {
	before := time.Now().UTC()
	c := NewCategory(CategoryInput{Name: "Movie"})
	after := time.Now().UTC()

	if c.ID.IsZero() {
		t.Error("factory should assign a fresh id")
	}
	if c.Name != "Movie" {
		t.Errorf("Name = %q, want %q", c.Name, "Movie")
	}
	if c.Description != nil {
		t.Errorf("Description = %v, want nil", *c.Description)
	}
	if !c.IsActive {
		t.Error("IsActive should default to true")
	}
	if c.CreatedAt.Before(before) || c.CreatedAt.After(after) {
		t.Errorf("CreatedAt = %v, want between %v and %v", c.CreatedAt, before, after)
	}
	if c.Notification.HasErrors() {
		t.Errorf("valid input produced errors: %v", c.Notification.Errors())
	}
}

func TestNewCategoryWithValues(t *testing.T) {
	c := NewCategory(CategoryInput{
		Name:        "Movie",
		Description: strPtr("Movie description"),
		IsActive:    boolPtr(false),
	})

	if c.Name != "Movie" {
		t.Errorf("Name = %q, want %q", c.Name, "Movie")
	}
	if c.Description == nil || *c.Description != "Movie description" {
		t.Errorf("Description = %v, want %q", c.Description, "Movie description")
	}
	if c.IsActive {
		t.Error("IsActive = true, want false when explicitly supplied")
	}
}

func TestNewCategoryValidation(t *testing.T) {
	tests := []struct {
		name  string
		input CategoryInput
		field string
		want  []string
	}{
		{
			name:  "empty name",
			input: CategoryInput{Name: ""},
			field: FieldName,
			want:  []string{MsgNameRequired},
		},
		{
			name:  "name too long",
			input: CategoryInput{Name: strings.Repeat("t", 256)},
			field: FieldName,
			want:  []string{MsgNameTooLong},
		},
		{
			name:  "name at the limit is fine",
			input: CategoryInput{Name: strings.Repeat("t", 255)},
			field: FieldName,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCategory(tt.input)
			got := c.Notification.FieldErrors(tt.field)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FieldErrors(%s) = %v, want %v", tt.field, got, tt.want)
			}
		})
	}
}

func TestChangeName(t *testing.T) {
	c := NewCategory(CategoryInput{Name: "Movie"})
	c.ChangeName("other name")

	if c.Name != "other name" {
		t.Errorf("Name = %q, want %q", c.Name, "other name")
	}
	if c.Notification.HasErrors() {
		t.Errorf("valid rename produced errors: %v", c.Notification.Errors())
	}
}

func TestChangeNameRecordsViolations(t *testing.T) {
	tests := []struct {
		name    string
		newName string
		want    []string
	}{
		{"empty", "", []string{MsgNameRequired}},
		{"too long", strings.Repeat("t", 256), []string{MsgNameTooLong}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCategory(CategoryInput{Name: "Movie"})
			c.ChangeName(tt.newName)
			if got := c.Notification.FieldErrors(FieldName); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FieldErrors(name) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChangeDescription(t *testing.T) {
	c := NewCategory(CategoryInput{Name: "Movie"})
	c.ChangeDescription(strPtr("some description"))

	if c.Description == nil || *c.Description != "some description" {
		t.Errorf("Description = %v, want %q", c.Description, "some description")
	}
	if c.Notification.HasErrors() {
		t.Errorf("valid description produced errors: %v", c.Notification.Errors())
	}

	// Explicit nil clears the description and stays valid.
	c.ChangeDescription(nil)
	if c.Description != nil {
		t.Errorf("Description = %v, want nil after clearing", *c.Description)
	}
	if c.Notification.HasErrors() {
		t.Errorf("clearing description produced errors: %v", c.Notification.Errors())
	}
}

func TestActivateDeactivate(t *testing.T) {
	c := NewCategory(CategoryInput{Name: "Movie", IsActive: boolPtr(false)})

	c.Activate()
	if !c.IsActive {
		t.Error("Activate: IsActive = false, want true")
	}

	// Activating an already-active category is an observational no-op.
	c.Activate()
	if !c.IsActive {
		t.Error("second Activate flipped IsActive")
	}
	if c.Notification.HasErrors() {
		t.Errorf("Activate produced errors: %v", c.Notification.Errors())
	}

	c.Deactivate()
	if c.IsActive {
		t.Error("Deactivate: IsActive = true, want false")
	}
}

func TestNotificationIsAppendOnly(t *testing.T) {
	c := NewCategory(CategoryInput{Name: ""})
	if !c.Notification.HasErrors() {
		t.Fatal("empty name should leave an error behind")
	}

	// Fixing the name later does not erase the already-recorded failure.
	c.ChangeName("Movie")
	if !c.Notification.HasErrors() {
		t.Error("notification was cleared by a later valid mutation")
	}
}

func TestRestoreCategorySkipsValidation(t *testing.T) {
	id := NewCategoryID()
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	// Restore a row that would fail the factory's rules. Reads must not
	// reject historical data.
	c := RestoreCategory(id, "", nil, false, createdAt)

	if !c.ID.Equals(id) {
		t.Errorf("ID = %s, want %s", c.ID, id)
	}
	if !c.CreatedAt.Equal(createdAt) {
		t.Errorf("CreatedAt = %v, want %v", c.CreatedAt, createdAt)
	}
	if c.Notification.HasErrors() {
		t.Errorf("restore ran validation: %v", c.Notification.Errors())
	}
}
