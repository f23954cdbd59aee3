package export

import "errors"

var (
	// ErrNoData is returned for an empty table. Nothing is produced.
	ErrNoData        = errors.New("no data to export")
	ErrUnknownFormat = errors.New("unknown export format")
	ErrInvalidRecord = errors.New("invalid export record")
)
