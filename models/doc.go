// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

Types for parsing incoming JSON, with validator tags:

  - RegisterRequest: username (2-50 chars), email
  - LoginRequest: username
  - SubmitVoteRequest: rankings ([]string of nominee IDs, best first)

# Response Types

Types for JSON responses:

  - SessionResponse: token, user
  - AwardListResponse: awards
  - SubmitVoteResponse: message
  - MyVotesResponse: award_ids, completed_voting
  - ResultsResponse: award_id, results, ballot_count
  - ErrorResponse: error, message

Domain types (User, Award, Nominee, Result) live in the voting package
and are embedded in responses directly.
*/
package models
