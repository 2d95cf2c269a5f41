package repository

import "errors"

// ErrNotFound covers both genuinely missing rows and rows that exist under a
// different company. Callers cannot tell the two apart; that is the point.
var ErrNotFound = errors.New("record not found")
