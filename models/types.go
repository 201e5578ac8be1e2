// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "github.com/AngelStivenToro/OgAwards/voting"

// Request types

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
}

// Nominee IDs in preference order, best first
type SubmitVoteRequest struct {
	Rankings []string `json:"rankings"`
}

// Response types

type SessionResponse struct {
	Token string      `json:"token"`
	User  voting.User `json:"user"`
}

type AwardListResponse struct {
	Awards []voting.Award `json:"awards"`
}

type SubmitVoteResponse struct {
	Message string `json:"message"`
}

type MyVotesResponse struct {
	AwardIDs        []string `json:"award_ids"`
	CompletedVoting bool     `json:"completed_voting"`
}

type ResultsResponse struct {
	AwardID     string          `json:"award_id"`
	Results     []voting.Result `json:"results"`
	BallotCount int             `json:"ballot_count"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
