// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package domain

// Notification accumulates validation error messages keyed by field
// instead of failing on the first broken rule. Each entity owns exactly
// one for its lifetime; rules append to it and callers decide whether
// accumulated errors are fatal.
//
// The container is append-only. Messages are kept in insertion order and
// adding the same (field, message) pair twice is a no-op.
type Notification struct {
	errors map[string][]string
	order  []string
}

// NewNotification returns an empty notification.
func NewNotification() *Notification {
	return &Notification{errors: make(map[string][]string)}
}

// AddError records a message under a field. Duplicate messages for the
// same field are silently dropped.
func (n *Notification) AddError(field, message string) {
	for _, m := range n.errors[field] {
		if m == message {
			return
		}
	}
	if _, seen := n.errors[field]; !seen {
		n.order = append(n.order, field)
	}
	n.errors[field] = append(n.errors[field], message)
}

// AddErrors records several messages under a field at once.
func (n *Notification) AddErrors(field string, messages []string) {
	for _, m := range messages {
		n.AddError(field, m)
	}
}

// HasErrors reports whether any field has at least one message.
func (n *Notification) HasErrors() bool {
	for _, msgs := range n.errors {
		if len(msgs) > 0 {
			return true
		}
	}
	return false
}

// Errors returns a copy of the field→messages mapping, safe for callers
// to hold after the entity mutates further.
func (n *Notification) Errors() map[string][]string {
	out := make(map[string][]string, len(n.errors))
	for field, msgs := range n.errors {
		out[field] = append([]string(nil), msgs...)
	}
	return out
}

// FieldErrors returns the messages recorded for one field, in order.
func (n *Notification) FieldErrors(field string) []string {
	return append([]string(nil), n.errors[field]...)
}
