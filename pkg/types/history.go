// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// User identifies the person running an analysis. Identity only gates
// history persistence; the scoring engine never consults it.
type User struct {
	// Email is the account address, empty for anonymous users.
	Email string `json:"email" yaml:"email"`

	// UID is the opaque account identifier used as the history key.
	UID string `json:"uid" yaml:"uid"`

	// Anonymous is true when no session was found. Anonymous analyses
	// are not persisted.
	Anonymous bool `json:"anonymous" yaml:"anonymous"`
}

// HistoryRecord is one saved analysis, keyed by user and ordered by time.
type HistoryRecord struct {
	// ID is a generated identifier, unique across all records.
	ID string `json:"id" yaml:"id"`

	// UserID is the owning user's UID.
	UserID string `json:"user_id" yaml:"user_id"`

	// Text is the analyzed passage as submitted (post-truncation).
	Text string `json:"text" yaml:"text"`

	// Analysis is the full result computed for Text.
	Analysis AnalysisResult `json:"analysis" yaml:"analysis"`

	// CreatedAt is the analysis timestamp in UTC.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
