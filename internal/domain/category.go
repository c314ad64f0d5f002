// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package domain

import "time"

// EntityCategory is the entity name used in not-found errors.
const EntityCategory = "Category"

// Category is the aggregate root for catalog categories. It owns its
// identifier and its validation notification; other aggregates reference
// it by CategoryID value only, never by pointer.
//
// Mutation commands never return errors. Business-rule violations are
// recorded on the notification and callers decide whether they are fatal.
type Category struct {
	ID          CategoryID
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time

	Notification *Notification
}

// CategoryInput carries the caller-supplied fields for NewCategory.
// IsActive is tri-state: nil means "not supplied" and defaults to true.
type CategoryInput struct {
	Name        string
	Description *string
	IsActive    *bool
}

// NewCategory is the factory for fresh categories. It assigns a random
// identifier and the current UTC timestamp, then runs full validation
// exactly once. The entity is returned regardless of validation outcome;
// inspect Notification to find out whether it is valid.
func NewCategory(in CategoryInput) *Category {
	c := &Category{
		ID:           NewCategoryID(),
		Name:         in.Name,
		Description:  in.Description,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
		Notification: NewNotification(),
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	c.Validate()
	return c
}

// RestoreCategory rebuilds a category from persisted values. It does not
// re-run validation: stored rows already went through the factory or were
// deliberately persisted, and reads must not fail on historical data.
func RestoreCategory(id CategoryID, name string, description *string, isActive bool, createdAt time.Time) *Category {
	return &Category{
		ID:           id,
		Name:         name,
		Description:  description,
		IsActive:     isActive,
		CreatedAt:    createdAt,
		Notification: NewNotification(),
	}
}

// Validate runs the rule groups for the given fields (all fields when none
// are named) against the current values and records failures on the
// notification. It never fails itself.
func (c *Category) Validate(fields ...string) {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDescription, FieldIsActive}
	}
	for _, f := range fields {
		switch f {
		case FieldName:
			CheckName(c.Notification, c.Name)
		case FieldDescription:
			if c.Description == nil {
				CheckDescription(c.Notification, nil)
			} else {
				CheckDescription(c.Notification, *c.Description)
			}
		case FieldIsActive:
			CheckIsActive(c.Notification, c.IsActive)
		}
	}
}

// ChangeName replaces the name and re-validates it.
func (c *Category) ChangeName(name string) {
	c.Name = name
	c.Validate(FieldName)
}

// ChangeDescription replaces the description (nil clears it) and
// re-validates it.
func (c *Category) ChangeDescription(description *string) {
	c.Description = description
	c.Validate(FieldDescription)
}

// Activate marks the category active. Always valid, no re-validation.
func (c *Category) Activate() {
	c.IsActive = true
}

// Deactivate marks the category inactive.
func (c *Category) Deactivate() {
	c.IsActive = false
}
