// Package handlers contains the HTTP handlers for the API surface.
package handlers

import (
	"errors"
	"net/http"

	"github.com/wolfplanner/wolf-planner-api/internal/http/respond"
	"github.com/wolfplanner/wolf-planner-api/internal/middleware"
	"github.com/wolfplanner/wolf-planner-api/internal/storage"

	"github.com/google/uuid"
)

// storeError maps service/store failures onto the API error taxonomy: masked
// not-found is a 404, everything else from the store surfaces as a 400 with
// the upstream message. Nothing is retried.
func storeError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		respond.Error(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, storage.ErrAlreadyExists):
		respond.Error(w, http.StatusConflict, err.Error())
	default:
		respond.Error(w, http.StatusBadRequest, err.Error())
	}
}

// callerID pulls the authenticated user from the request context. The auth
// middleware guarantees it for protected routes.
func callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing bearer credential")
		return uuid.Nil, false
	}
	return userID, true
}

// pathID parses the {id} path segment as a UUID.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid identifier")
		return uuid.Nil, false
	}
	return id, true
}
