// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

/*
Package api provides HTTP routing and handlers for Linkmark.

# Architecture

Routing uses chi. The middleware stack, outermost first:

  - middleware.RequestID: X-Request-ID header and request-scoped logger
  - chi Recoverer and RealIP
  - CORS (go-chi/cors), configured from api.cors_origins
  - httprate IP rate limiting, unless api.rate_limit_disabled
  - middleware.PrometheusMetrics
  - middleware.Compression

All endpoints respond with the models.APIResponse envelope. Suggestion
endpoints never fail on statistics errors; the engine degrades to empty
results, so those handlers only reject malformed input.

# Endpoints

	GET  /api/v1/health
	POST /api/v1/bookmarks
	GET  /api/v1/bookmarks
	POST /api/v1/bookmarks/{id}/click
	GET  /api/v1/tags
	GET  /api/v1/suggestions/tags/user/{userID}?url=...&limit=...
	GET  /api/v1/suggestions/collections/user/{userID}
	GET  /api/v1/suggestions/clusters/user/{userID}
	GET  /api/v1/suggestions/domain/user/{userID}?url=...
	GET  /metrics

# Thread Safety

Handlers hold no mutable state beyond the database pool and the engine,
both safe for concurrent use.
*/
package api
