// Copyright (c) 2025 Angel Stiven Toro.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "errors"

// Expected, user-facing vote rejections. Messages are shown verbatim by
// the frontend, hence Spanish.
var (
	ErrNotAuthenticated      = errors.New("Debes iniciar sesión para votar")
	ErrAlreadyCompleted      = errors.New("Ya has votado anteriormente")
	ErrDuplicateCategoryVote = errors.New("Ya has votado para esta categoría")
	ErrEmptyRanking          = errors.New("Debes seleccionar al menos un nominado")
	ErrInvalidNominee        = errors.New("La votación incluye nominados inválidos para esta categoría")
)
