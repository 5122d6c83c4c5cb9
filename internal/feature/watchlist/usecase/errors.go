// Package usecase implements the business logic for the watchlist feature.
package usecase

import "errors"

var (
	// ErrWatchlistNotFound is returned when no watchlist entry matches the request.
	ErrWatchlistNotFound = errors.New("watchlist not found")

	// ErrAlreadyInWatchlist is returned when the symbol is already tracked by the user.
	ErrAlreadyInWatchlist = errors.New("symbol already in watchlist")

	// ErrSymbolNotFound is returned when the symbol is not in the given watchlist.
	ErrSymbolNotFound = errors.New("symbol not found in watchlist")

	// ErrHoldingNotFound is returned when a watchlist entry has no holding yet.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrInvalidAssetType is returned for asset types other than stocks or crypto.
	ErrInvalidAssetType = errors.New("invalid asset type")

	// ErrPriceUnavailable is returned when a live price is required but the
	// provider could not supply one.
	ErrPriceUnavailable = errors.New("current price unavailable")
)
