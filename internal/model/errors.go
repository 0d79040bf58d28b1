package model

import "errors"

// Business-rule rejections. Every operation validates against these before any
// write, so a rejected call leaves no partial effect.
var (
	ErrInvalidCode         = errors.New("game code must be 6 digits")
	ErrSessionNotFound     = errors.New("game session not found")
	ErrSessionInactive     = errors.New("game session is not active")
	ErrSessionNotWaiting   = errors.New("game session has already started")
	ErrNicknameTaken       = errors.New("nickname is already taken in this session")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrItemNotFound        = errors.New("item not found in catalog")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrLevelGate           = errors.New("house level 3 required for this item")
	ErrAlreadyClaimed      = errors.New("reward already claimed")
	ErrMissionNotFound     = errors.New("mission not found")
	ErrMissionNotEligible  = errors.New("mission conditions not met")
	ErrInvalidCategory     = errors.New("unknown card category")
	ErrNotOwned            = errors.New("item is not in your inventory")
	ErrPriceTooHigh        = errors.New("price exceeds the resale cap")
	ErrPriceTooLow         = errors.New("price must be at least 1")
	ErrListingCapExceeded  = errors.New("active listing limit reached")
	ErrListingNotFound     = errors.New("listing not found")
	ErrSelfTradeForbidden  = errors.New("cannot buy your own listing")
	ErrInvalidTransition   = errors.New("invalid session state transition")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrResumeStateNotFound = errors.New("no saved session to resume")
)
