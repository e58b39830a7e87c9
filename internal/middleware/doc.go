// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

/*
Package middleware provides HTTP middleware components for the application.

These components complement the chi router's built-in middleware (CORS,
rate limiting) to form the complete request processing stack.

Key Components:

  - RequestID: UUID-based request tracking, propagated through context
    and the request-scoped logger
  - PrometheusMetrics: HTTP request/response instrumentation
  - Compression: Gzip compression for responses when the client accepts it

Middleware Stack:

The router applies middleware in this order:

	RequestID -> PrometheusMetrics -> Compression -> handler

Thread Safety:

All middleware is safe for concurrent use. The gzip writer pool is
shared across requests.
*/
package middleware
