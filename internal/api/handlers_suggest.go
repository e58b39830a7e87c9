// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/linkmark/internal/metrics"
)

// suggestURLRequest validates the url query parameter shared by the tag
// suggestion and domain endpoints.
type suggestURLRequest struct {
	URL string `validate:"required,url,max=2048"`
}

// SuggestTags returns scored tag suggestions for a URL.
func (h *Handler) SuggestTags(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	userID, ok := userIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, errCodeValidation, "userID must be a positive integer", nil)
		return
	}

	req := suggestURLRequest{URL: r.URL.Query().Get("url")}
	if validationErr := validateRequest(&req); validationErr != nil {
		respondError(w, http.StatusBadRequest, errCodeValidation, validationErr.Message, nil)
		return
	}

	limit := getIntParam(r, "limit", 0)
	suggestions := h.engine.SuggestTags(r.Context(), userID, req.URL, limit)
	metrics.RecordSuggestion("tags", time.Since(started), len(suggestions))

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"url":         req.URL,
		"suggestions": suggestions,
		"count":       len(suggestions),
	}, started)
}

// SuggestCollections returns derived smart collections for a user.
func (h *Handler) SuggestCollections(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	userID, ok := userIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, errCodeValidation, "userID must be a positive integer", nil)
		return
	}

	collections := h.engine.SuggestCollections(r.Context(), userID)
	metrics.RecordSuggestion("collections", time.Since(started), len(collections))

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"collections": collections,
		"count":       len(collections),
	}, started)
}

// SuggestClusters returns tag clusters for a user.
func (h *Handler) SuggestClusters(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	userID, ok := userIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, errCodeValidation, "userID must be a positive integer", nil)
		return
	}

	clusters := h.engine.BuildClusters(r.Context(), userID)
	metrics.RecordSuggestion("clusters", time.Since(started), len(clusters))

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"clusters": clusters,
		"count":    len(clusters),
	}, started)
}

// SuggestDomain classifies a URL's domain and summarizes the user's
// bookmarks on it.
func (h *Handler) SuggestDomain(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	userID, ok := userIDParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, errCodeValidation, "userID must be a positive integer", nil)
		return
	}

	req := suggestURLRequest{URL: r.URL.Query().Get("url")}
	if validationErr := validateRequest(&req); validationErr != nil {
		respondError(w, http.StatusBadRequest, errCodeValidation, validationErr.Message, nil)
		return
	}

	info := h.engine.DomainInfo(r.Context(), userID, req.URL)
	metrics.RecordSuggestion("domain", time.Since(started), len(info.TagDistribution))

	respondSuccess(w, http.StatusOK, info, started)
}
