// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session token generation and validation.

# Session Tokens

Sessions are JWTs signed with HMAC-SHA256:

	token, err := auth.GenerateSessionToken(userID, secret, auth.DefaultTokenTTL)
	userID, err := auth.ParseSessionToken(token, secret)

The user ID travels in a custom "uid" claim alongside the registered
issued-at and expiry claims. ParseSessionToken accepts only HS256 and
returns ErrInvalidToken for anything it cannot verify - expired, badly
signed, or malformed tokens all look alike to callers.
*/
package auth
