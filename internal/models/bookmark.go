// Linkmark - Personal Bookmark Manager with Smart Organization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/linkmark

package models

import "time"

// Bookmark is a saved URL belonging to one user.
type Bookmark struct {
	// ID is the database identifier.
	ID int64 `json:"id"`

	// UserID is the owning user. Users are opaque identifiers; there is
	// no user table behind them.
	UserID int64 `json:"user_id"`

	// URL is the bookmarked address.
	URL string `json:"url"`

	// Title is the display title, possibly empty.
	Title string `json:"title,omitempty"`

	// Tags is the list of tag names attached to the bookmark.
	Tags []string `json:"tags"`

	// ClickCount is how many times the bookmark has been opened.
	ClickCount int `json:"click_count"`

	// CreatedAt is when the bookmark was saved.
	CreatedAt time.Time `json:"created_at"`
}

// Tag is a normalized tag name with its usage count.
type Tag struct {
	// ID is the database identifier.
	ID int64 `json:"id"`

	// Name is the lowercase tag name.
	Name string `json:"name"`

	// BookmarkCount is how many of the user's bookmarks carry the tag.
	BookmarkCount int `json:"bookmark_count"`
}

// CreateBookmarkRequest is the payload for creating a bookmark.
type CreateBookmarkRequest struct {
	// URL is the address to bookmark.
	URL string `json:"url" validate:"required,url,max=2048"`

	// Title is the optional display title.
	Title string `json:"title" validate:"max=512"`

	// Tags are optional initial tag names.
	Tags []string `json:"tags" validate:"max=50,dive,min=1,max=100"`
}
