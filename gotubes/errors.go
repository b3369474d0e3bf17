package gotubes

import "errors"

// Errors
var (
	ErrBadEncoding     = errors.New("bad graph encoding")
	ErrBadVtxID        = errors.New("bad graph vertex ID")
	ErrBadMode         = errors.New("bad search mode (expected paths or cycles)")
	ErrBadTries        = errors.New("number of tries must be > 0")
	ErrBadConfig       = errors.New("bad run config")
	ErrNilGraph        = errors.New("nil graph")
	ErrBrokenFlipGraph = errors.New("flip graph is inconsistent with its tubings")
)
