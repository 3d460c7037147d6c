package handler

import (
	"net/http"

	"measure/internal/delivery/http/response"
	"measure/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CollectionHandler holds dependencies for persisted measurement collections.
type CollectionHandler struct {
	collections repository.CollectionRepository
}

// NewCollectionHandler is the constructor for CollectionHandler, injected by Fx.
func NewCollectionHandler(collections repository.CollectionRepository) *CollectionHandler {
	return &CollectionHandler{
		collections: collections,
	}
}

// ListCollections returns every persisted collection in creation order.
func (h *CollectionHandler) ListCollections(c echo.Context) error {
	collections, err := h.collections.ListCollections(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, collections, "Collections listed")
}

// GetCollection returns one persisted collection by name.
func (h *CollectionHandler) GetCollection(c echo.Context) error {
	collection, err := h.collections.FindCollectionByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, collection, "Collection found")
}
