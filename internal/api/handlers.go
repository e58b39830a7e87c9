// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/linkmark/internal/config"
	"github.com/tomtom215/linkmark/internal/database"
	"github.com/tomtom215/linkmark/internal/metrics"
	"github.com/tomtom215/linkmark/internal/models"
	"github.com/tomtom215/linkmark/internal/suggest"
	"github.com/tomtom215/linkmark/internal/validation"
)

// defaultUserID scopes requests that omit the user_id query parameter.
// Linkmark is a personal manager; multi-user deployments pass user_id
// explicitly.
const defaultUserID = 1

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	db        *database.DB
	engine    *suggest.Engine
	cfg       *config.Config
	startTime time.Time
}

// NewHandler creates the API handler.
func NewHandler(db *database.DB, engine *suggest.Engine, cfg *config.Config) *Handler {
	return &Handler{
		db:        db,
		engine:    engine,
		cfg:       cfg,
		startTime: time.Now(),
	}
}

// healthResponse is the health endpoint payload.
type healthResponse struct {
	Status        string `json:"status"`
	Database      string `json:"database"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// Health reports liveness and database connectivity.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	resp := healthResponse{
		Status:        "ok",
		Database:      "ok",
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	}

	status := http.StatusOK
	if err := h.db.Ping(r.Context()); err != nil {
		resp.Status = "degraded"
		resp.Database = "unreachable"
		status = http.StatusServiceUnavailable
	}

	respondSuccess(w, status, resp, started)
}

// CreateBookmark saves a new bookmark with optional tags.
func (h *Handler) CreateBookmark(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req models.CreateBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errCodeValidation, "request body must be valid JSON", err)
		return
	}
	if validationErr := validation.ValidateStruct(&req); validationErr != nil {
		respondValidationError(w, validationErr)
		return
	}

	bookmark := &models.Bookmark{
		UserID: int64(getIntParam(r, "user_id", defaultUserID)),
		URL:    req.URL,
		Title:  req.Title,
		Tags:   req.Tags,
	}
	if err := h.db.InsertBookmark(r.Context(), bookmark); err != nil {
		respondError(w, http.StatusInternalServerError, errCodeDatabase, "failed to save bookmark", err)
		return
	}

	metrics.RecordBookmarkCreated()
	respondSuccess(w, http.StatusCreated, bookmark, started)
}

// ListBookmarks returns a page of the user's bookmarks, newest first.
func (h *Handler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	limit := getIntParam(r, "limit", h.cfg.API.DefaultPageSize)
	if limit <= 0 {
		limit = h.cfg.API.DefaultPageSize
	}
	if limit > h.cfg.API.MaxPageSize {
		limit = h.cfg.API.MaxPageSize
	}
	offset := getIntParam(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	userID := int64(getIntParam(r, "user_id", defaultUserID))

	bookmarks, err := h.db.ListBookmarks(r.Context(), userID, limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, errCodeDatabase, "failed to list bookmarks", err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"bookmarks": bookmarks,
		"limit":     limit,
		"offset":    offset,
		"count":     len(bookmarks),
	}, started)
}

// ClickBookmark records a click on a bookmark.
func (h *Handler) ClickBookmark(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, errCodeValidation, "id must be a positive integer", nil)
		return
	}
	userID := int64(getIntParam(r, "user_id", defaultUserID))

	err := h.db.IncrementClickCount(r.Context(), userID, id)
	if errors.Is(err, database.ErrNotFound) {
		respondError(w, http.StatusNotFound, errCodeNotFound, "bookmark not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, errCodeDatabase, "failed to record click", err)
		return
	}

	metrics.RecordBookmarkClick()
	respondSuccess(w, http.StatusOK, map[string]int64{"id": id}, started)
}

// ListTags returns the user's tags with usage counts.
func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	userID := int64(getIntParam(r, "user_id", defaultUserID))
	tags, err := h.db.ListTags(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, errCodeDatabase, "failed to list tags", err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"tags":  tags,
		"count": len(tags),
	}, started)
}
