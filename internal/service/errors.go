package service

import (
	"errors"

	"connectrpc.com/connect"
	"github.com/mmynk/whistkeeper/internal/ledger"
	"github.com/mmynk/whistkeeper/internal/storage"
)

// connectError maps ledger and storage errors to Connect codes.
func connectError(err error) error {
	switch {
	case errors.Is(err, ledger.ErrInvalidRound),
		errors.Is(err, ledger.ErrInvalidGame),
		errors.Is(err, ledger.ErrInvalidPlayer),
		errors.Is(err, storage.ErrInvalidExport):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, ledger.ErrGameNotActive),
		errors.Is(err, ledger.ErrPlayerInUse):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
