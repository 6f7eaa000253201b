package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Jerdirlson/api-task/internal/api"
	"github.com/Jerdirlson/api-task/internal/cachestore"
	"github.com/gin-gonic/gin"
)

// ResourceRepository is the uniform CRUD capability every resource
// repository exposes.
type ResourceRepository[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, rec *T) error
	Update(ctx context.Context, id int64, rec *T) error
	Delete(ctx context.Context, id int64) error
}

// ResourceHandler serves the CRUD endpoints of one resource. The label is
// used in user-facing messages ("Character not found").
type ResourceHandler[T any] struct {
	repo   ResourceRepository[T]
	name   string
	label  string
	logger *slog.Logger
}

// NewResourceHandler creates a ResourceHandler for one resource.
func NewResourceHandler[T any](name, label string, repo ResourceRepository[T], logger *slog.Logger) *ResourceHandler[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResourceHandler[T]{
		repo:   repo,
		name:   name,
		label:  label,
		logger: logger,
	}
}

// Index lists all records. A backing-store failure degrades to an empty
// list with a logged error instead of a 5xx; staleness is bounded by the
// cache TTL and the store stays authoritative.
func (h *ResourceHandler[T]) Index(c *gin.Context) {
	records, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list resource", "resource", h.name, "error", err)
		api.Success(c, http.StatusOK, []T{})
		return
	}
	api.Success(c, http.StatusOK, records)
}

// Show returns a single record by id.
func (h *ResourceHandler[T]) Show(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	record, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, cachestore.ErrNotFound) {
			h.logger.Error("failed to fetch resource", "resource", h.name, "id", id, "error", err)
		}
		api.Error(c, http.StatusNotFound, h.label+" not found")
		return
	}
	api.Success(c, http.StatusOK, record)
}

// Store creates a record from the request body.
func (h *ResourceHandler[T]) Store(c *gin.Context) {
	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		api.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.Create(c.Request.Context(), &record); err != nil {
		h.logger.Error("failed to create resource", "resource", h.name, "error", err)
		api.Error(c, http.StatusInternalServerError, "Failed to create "+h.name)
		return
	}
	api.Success(c, http.StatusCreated, gin.H{"message": h.label + " created successfully"})
}

// Update rewrites the record with the given id from the request body.
func (h *ResourceHandler[T]) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		api.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.Update(c.Request.Context(), id, &record); err != nil {
		if errors.Is(err, cachestore.ErrNotFound) {
			api.Error(c, http.StatusNotFound, h.label+" not found")
			return
		}
		h.logger.Error("failed to update resource", "resource", h.name, "id", id, "error", err)
		api.Error(c, http.StatusInternalServerError, "Failed to update "+h.name)
		return
	}
	api.Success(c, http.StatusOK, gin.H{"message": h.label + " updated successfully"})
}

// Destroy deletes the record with the given id.
func (h *ResourceHandler[T]) Destroy(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, cachestore.ErrNotFound) {
			api.Error(c, http.StatusNotFound, h.label+" not found")
			return
		}
		h.logger.Error("failed to delete resource", "resource", h.name, "id", id, "error", err)
		api.Error(c, http.StatusInternalServerError, "Failed to delete "+h.name)
		return
	}
	api.Success(c, http.StatusOK, gin.H{"message": h.label + " deleted successfully"})
}

func (h *ResourceHandler[T]) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		api.Error(c, http.StatusBadRequest, "Invalid "+h.name+" id")
		return 0, false
	}
	return id, true
}
