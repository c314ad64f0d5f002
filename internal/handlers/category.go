// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"catalog/internal/cache"
	"catalog/internal/domain"
	"catalog/internal/usecase"
)

// Categories groups the category HTTP handlers and their use cases.
type Categories struct {
	create *usecase.CreateCategory
	get    *usecase.GetCategory
	update *usecase.UpdateCategory
	remove *usecase.DeleteCategory
	list   *usecase.ListCategories
	cache  *cache.CategoryCache
}

// NewCategories wires the handler group onto a repository implementation.
// categoryCache may be nil when Valkey is not configured; reads then
// always go through the repository.
func NewCategories(repo domain.CategoryRepository, categoryCache *cache.CategoryCache) *Categories {
	return &Categories{
		create: usecase.NewCreateCategory(repo),
		get:    usecase.NewGetCategory(repo),
		update: usecase.NewUpdateCategory(repo),
		remove: usecase.NewDeleteCategory(repo),
		list:   usecase.NewListCategories(repo),
		cache:  categoryCache,
	}
}

// categoryPayload keeps body fields raw so the handler can tell apart
// "absent", "null", and wrong-typed values. The domain rule functions run
// over the decoded values before anything is coerced.
type categoryPayload struct {
	Name        json.RawMessage `json:"name"`
	Description json.RawMessage `json:"description"`
	IsActive    json.RawMessage `json:"is_active"`
}

// value decodes a raw field into a loosely typed value. Absent fields and
// JSON null both come back as nil.
func value(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return v
}

// Create handles POST /categories.
func (h *Categories) Create(w http.ResponseWriter, r *http.Request) {
	var p categoryPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			StatusCode: http.StatusBadRequest,
			Error:      "Bad Request",
			Message:    "request body must be valid JSON",
		})
		return
	}

	name := value(p.Name)
	description := value(p.Description)
	isActive := value(p.IsActive)

	// Boundary validation over the raw values. This is what keeps
	// wrong-typed payloads out of persistence while the create use case
	// itself stays ungated.
	n := domain.NewNotification()
	domain.CheckName(n, name)
	domain.CheckDescription(n, description)
	domain.CheckIsActive(n, isActive)
	if n.HasErrors() {
		writeValidationErrors(w, n.Errors())
		return
	}

	in := usecase.CreateCategoryInput{Name: name.(string)}
	if s, ok := description.(string); ok {
		in.Description = &s
	}
	if b, ok := isActive.(bool); ok {
		in.IsActive = &b
	}

	out, err := h.create.Execute(r.Context(), in)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.cacheSet(r, out)
	writeJSON(w, http.StatusCreated, dataEnvelope{Data: out})
}

// Get handles GET /categories/{id}.
func (h *Categories) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if h.cache != nil {
		if payload, ok := h.cache.Get(r.Context(), id); ok {
			writeJSON(w, http.StatusOK, dataEnvelope{Data: json.RawMessage(payload)})
			return
		}
	}

	out, err := h.get.Execute(r.Context(), usecase.GetCategoryInput{ID: id})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.cacheSet(r, out)
	writeJSON(w, http.StatusOK, dataEnvelope{Data: out})
}

// Update handles PATCH /categories/{id}.
func (h *Categories) Update(w http.ResponseWriter, r *http.Request) {
	var p categoryPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			StatusCode: http.StatusBadRequest,
			Error:      "Bad Request",
			Message:    "request body must be valid JSON",
		})
		return
	}

	name := value(p.Name)
	description := value(p.Description)
	isActive := value(p.IsActive)

	// Partial update: every field is optional, so rules only run for
	// values the caller actually sent. A null name means "leave it",
	// matching the use case's non-empty-name guard.
	n := domain.NewNotification()
	if name != nil {
		domain.CheckName(n, name)
	}
	domain.CheckDescription(n, description)
	domain.CheckIsActive(n, isActive)
	if n.HasErrors() {
		writeValidationErrors(w, n.Errors())
		return
	}

	in := usecase.UpdateCategoryInput{ID: chi.URLParam(r, "id")}
	if s, ok := name.(string); ok {
		in.Name = s
	}
	if len(p.Description) > 0 {
		in.HasDescription = true
		if s, ok := description.(string); ok {
			in.Description = &s
		}
	}
	if b, ok := isActive.(bool); ok {
		in.IsActive = &b
	}

	out, err := h.update.Execute(r.Context(), in)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.cacheSet(r, out)
	writeJSON(w, http.StatusOK, dataEnvelope{Data: out})
}

// Delete handles DELETE /categories/{id}.
func (h *Categories) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.remove.Execute(r.Context(), usecase.DeleteCategoryInput{ID: id}); err != nil {
		writeDomainError(w, err)
		return
	}

	if h.cache != nil {
		h.cache.Invalidate(r.Context(), id)
	}
	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /categories.
func (h *Categories) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := usecase.ListCategoriesInput{
		Page:    atoiOrZero(q.Get("page")),
		PerPage: atoiOrZero(q.Get("per_page")),
		Filter:  q.Get("filter"),
		Sort:    q.Get("sort"),
		SortDir: q.Get("sort_dir"),
	}

	out, err := h.list.Execute(r.Context(), in)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dataEnvelope{
		Data: out.Items,
		Meta: map[string]int{
			"total":        out.Total,
			"current_page": out.CurrentPage,
			"per_page":     out.PerPage,
			"last_page":    out.LastPage,
		},
	})
}

// cacheSet stores the projection for id-keyed reads. Serialization errors
// only cost the cache entry, never the response.
func (h *Categories) cacheSet(r *http.Request, out usecase.CategoryOutput) {
	if h.cache == nil {
		return
	}
	payload, err := json.Marshal(out)
	if err != nil {
		return
	}
	h.cache.Set(r.Context(), out.ID, payload)
}

// atoiOrZero parses a query integer, treating anything unparsable as zero
// so the search defaults kick in.
func atoiOrZero(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
