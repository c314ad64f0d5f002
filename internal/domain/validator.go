// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package domain

import "unicode/utf8"

// Field names used by the validation protocol and the notification keys.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldIsActive    = "is_active"
)

// maxNameLen is the upper bound for category names.
const maxNameLen = 255

// Validation messages. The exact wording is part of the API contract —
// clients match on these strings.
const (
	MsgNameRequired       = "name should not be empty"
	MsgNameNotString      = "name must be a string"
	MsgNameTooLong        = "name must be shorter than or equal to 255 characters"
	MsgDescriptionNotStr  = "description must be a string"
	MsgIsActiveNotBoolean = "is_active must be a boolean value"
)

// The rule functions below operate on loosely typed values. Input reaches
// this layer from weakly typed boundaries (JSON bodies), so each rule group
// must handle nil and wrong-typed values, not just bad strings. Rules never
// fail fast: every broken rule in a group records its own message.

// CheckName records every broken name rule on n. A nil value breaks all
// three rules; a non-string value breaks the type and length rules together.
func CheckName(n *Notification, value any) {
	if value == nil {
		n.AddErrors(FieldName, []string{MsgNameRequired, MsgNameNotString, MsgNameTooLong})
		return
	}
	s, ok := value.(string)
	if !ok {
		n.AddErrors(FieldName, []string{MsgNameNotString, MsgNameTooLong})
		return
	}
	if s == "" {
		n.AddError(FieldName, MsgNameRequired)
	}
	if utf8.RuneCountInString(s) > maxNameLen {
		n.AddError(FieldName, MsgNameTooLong)
	}
}

// CheckDescription records description rule violations on n. Description
// is nullable, so nil is valid.
func CheckDescription(n *Notification, value any) {
	if value == nil {
		return
	}
	if _, ok := value.(string); !ok {
		n.AddError(FieldDescription, MsgDescriptionNotStr)
	}
}

// CheckIsActive records is_active rule violations on n. The field is
// optional, so nil is valid.
func CheckIsActive(n *Notification, value any) {
	if value == nil {
		return
	}
	if _, ok := value.(bool); !ok {
		n.AddError(FieldIsActive, MsgIsActiveNotBoolean)
	}
}
