package domain

import "errors"

// Fatal startup errors.
var (
	// ErrStateTable is returned when the state-name table does not match the state enum.
	ErrStateTable = errors.New("connection state table has the wrong number of elements")

	// ErrVersionParse is returned when a version string does not follow the version grammar.
	ErrVersionParse = errors.New("invalid version")

	// ErrVersionTooOld is returned when the running build is older than the requested minimum.
	ErrVersionTooOld = errors.New("version older than requested minimum")
)

// Recoverable action errors. They are reported to the UI and leave all state unchanged.
var (
	ErrUnknownAction      = errors.New("unknown action")
	ErrArgumentCount      = errors.New("wrong number of arguments")
	ErrSyntax             = errors.New("syntax error")
	ErrInvalidToggle      = errors.New("invalid toggle")
	ErrConnected          = errors.New("cannot change model while connected")
	ErrInvalidModel       = errors.New("model must be 327[89]-[2345]")
	ErrInvalidOversize    = errors.New("oversize must be <rows>x<cols>")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidSize        = errors.New("invalid size")
	ErrInvalidParameter   = errors.New("invalid parameter")
	ErrTraceActive        = errors.New("cannot specify filename when tracing is already on")
)
