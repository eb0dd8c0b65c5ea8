// Package capi is the foreign-function boundary over the scenario codec.
// Scenarios are held behind opaque integer handles; every operation
// returns a flat result code so no Go error type crosses the boundary.
package capi

import (
	"bytes"
	"errors"
	"sync"

	"github.com/scxtools/scx/pkg/scen"
	"github.com/scxtools/scx/pkg/scx"
)

// ResultCode is the flat status returned across the boundary. The codes
// map 1:1 onto the codec error taxonomy.
type ResultCode int32

const (
	// ResultOK means the operation succeeded.
	ResultOK ResultCode = 0
	// ResultErrNullHandle means the handle does not reference a loaded
	// scenario.
	ResultErrNullHandle ResultCode = 1
	// ResultErrUnknownEdition means the edition token was not recognized.
	ResultErrUnknownEdition ResultCode = 2
	// ResultErrConvert means the conversion engine rejected the migration.
	ResultErrConvert ResultCode = 3
	// ResultErrSerialize means encoding the target layout failed.
	ResultErrSerialize ResultCode = 4
	// ResultErrCreateOutput means the output destination could not be
	// written.
	ResultErrCreateOutput ResultCode = 5
)

var (
	handleMu   sync.Mutex
	handles    = map[uintptr]*scen.Scenario{}
	nextHandle uintptr
)

func register(s *scen.Scenario) uintptr {
	handleMu.Lock()
	defer handleMu.Unlock()
	nextHandle++
	handles[nextHandle] = s
	return nextHandle
}

func lookup(h uintptr) *scen.Scenario {
	handleMu.Lock()
	defer handleMu.Unlock()
	return handles[h]
}

func replace(h uintptr, s *scen.Scenario) {
	handleMu.Lock()
	defer handleMu.Unlock()
	if _, ok := handles[h]; ok {
		handles[h] = s
	}
}

func release(h uintptr) {
	handleMu.Lock()
	defer handleMu.Unlock()
	delete(handles, h)
}

// loadPath reads a scenario file and returns its handle, or 0 on any
// failure.
func loadPath(path string) uintptr {
	s, err := scx.LoadFile(path)
	if err != nil {
		return 0
	}
	return register(s)
}

// loadMem reads a scenario from an in-memory buffer and returns its
// handle, or 0 on any failure.
func loadMem(data []byte) uintptr {
	s, err := scx.Load(bytes.NewReader(data))
	if err != nil {
		return 0
	}
	return register(s)
}

// convertHandle migrates the scenario behind h to the edition named by
// token.
func convertHandle(h uintptr, token string) ResultCode {
	s := lookup(h)
	if s == nil {
		return ResultErrNullHandle
	}
	target, err := scen.ParseName(token)
	if err != nil {
		return ResultErrUnknownEdition
	}
	out, _, err := scx.Convert(s, target)
	if err != nil {
		return classify(err, ResultErrConvert)
	}
	replace(h, out)
	return ResultOK
}

// saveHandle serializes the scenario behind h to path. An empty token
// keeps the scenario's current edition.
func saveHandle(h uintptr, token, path string) ResultCode {
	s := lookup(h)
	if s == nil {
		return ResultErrNullHandle
	}
	target := s.Edition
	if token != "" {
		var err error
		if target, err = scen.ParseName(token); err != nil {
			return ResultErrUnknownEdition
		}
	}
	if _, err := scx.SaveFile(s, target, path); err != nil {
		return classify(err, ResultErrCreateOutput)
	}
	return ResultOK
}

// freeHandle releases the scenario behind h. Freeing an unknown handle
// is a no-op.
func freeHandle(h uintptr) {
	release(h)
}

// classify maps a codec error onto the flat result codes; ioCode is used
// for host I/O failures.
func classify(err error, ioCode ResultCode) ResultCode {
	var (
		playerCount *scen.PlayerCountExceededError
		outOfRange  *scen.ValueOutOfRangeError
		missing     *scen.MissingRequiredFieldError
		tooLong     *scen.StringTooLongError
		unknownTag  *scen.UnknownEditionTagError
	)
	switch {
	case err == nil:
		return ResultOK
	case errors.As(err, &unknownTag):
		return ResultErrUnknownEdition
	case errors.As(err, &playerCount), errors.As(err, &outOfRange):
		return ResultErrConvert
	case errors.As(err, &missing), errors.As(err, &tooLong):
		return ResultErrSerialize
	default:
		return ioCode
	}
}
