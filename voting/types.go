// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "time"

// Media types a nominee can carry
const (
	MediaImage = "image"
	MediaVideo = "video"
	MediaAudio = "audio"
	MediaText  = "text"
)

type User struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	CreatedAt       time.Time `json:"created_at"`
	CompletedVoting bool      `json:"completed_voting"`
}

// Media is an optional reference attached to a nominee (image, video,
// audio clip, or inline text).
type Media struct {
	Type    string `json:"type"`
	URL     string `json:"url,omitempty"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
}

type Nominee struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Media       *Media `json:"media,omitempty"`
}

// Award is one category with its nominees in display order. The catalog
// is immutable during an active voting period.
type Award struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Nominees    []Nominee `json:"nominees"`
}

// Ballot is one user's ranked submission for one award. Rankings holds
// nominee IDs in preference order (best first). Ballots are immutable
// once created.
type Ballot struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	AwardID     string    `json:"award_id"`
	Rankings    []string  `json:"rankings"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Result is one leaderboard row. Computed on every query, never stored.
type Result struct {
	Nominee Nominee `json:"nominee"`
	Points  int     `json:"points"`
}
