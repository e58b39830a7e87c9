// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

/*
Package models defines data structures for the Linkmark application.

This package contains the data models shared across the application:
database records, API request/response structures and the standard
response envelope. It serves as the single source of truth for data
structure definitions.

Model Categories:

 1. Database Models:
    - Bookmark: A saved URL with title, click count and timestamps
    - Tag: A normalized tag name with usage count

 2. API Request/Response Models:
    - APIResponse: Standard response wrapper
    - APIError: Error details
    - Metadata: Response metadata (timestamp, query time)

Usage Example:

	import "github.com/tomtom215/linkmark/internal/models"

	bookmark := &models.Bookmark{
	    UserID: 1,
	    URL:    "https://github.com/golang/go",
	    Title:  "The Go Programming Language",
	}

Thread Safety:

All models are plain data structures without synchronization. Callers
must not share a model instance across goroutines while mutating it.
*/
package models
