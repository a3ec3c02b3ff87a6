package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrWalletNameNotUnique           = errors.New("the wallet name must be unique")
	ErrSourceDoesNotEqualDestination = errors.New("source and destination wallet of a transfer must be different")
)
