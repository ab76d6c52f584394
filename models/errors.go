package models

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the root of every input error the engine returns.
// Callers map it to a 4xx-style response with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrNotEnoughPlayers      = fmt.Errorf("%w: at least 2 players are required", ErrInvalidInput)
	ErrDuplicatePlayer       = fmt.Errorf("%w: duplicate player", ErrInvalidInput)
	ErrUnknownFormat         = fmt.Errorf("%w: unknown tournament format", ErrInvalidInput)
	ErrUnknownSeedingPolicy  = fmt.Errorf("%w: unknown seeding policy", ErrInvalidInput)
	ErrInvalidAdvancingCount = fmt.Errorf("%w: advancing per group must be positive", ErrInvalidInput)
	ErrInvalidGroupCount     = fmt.Errorf("%w: group count must be positive", ErrInvalidInput)
)
