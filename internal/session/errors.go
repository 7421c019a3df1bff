package session

import (
	"errors"
	"fmt"

	"github.com/lotushuong244-bit/englishmaster/internal/speech"
)

var (
	// ErrModeUnavailable is returned by New when the unit has no content
	// for the requested mode.
	ErrModeUnavailable = errors.New("mode not available in this unit")

	// ErrCompleted is returned for actions on a finished session.
	ErrCompleted = errors.New("session already completed")

	// ErrExited is returned for actions on a session after Exit.
	ErrExited = errors.New("session exited")

	ErrAlreadySubmitted = errors.New("answers already submitted")
	ErrIncomplete       = errors.New("answer every question first")
	ErrNotSubmitted     = errors.New("answers not submitted yet")
	ErrInvalidSelection = errors.New("no such question or option")

	// ErrWrongMode is returned when an action does not apply to the
	// session's mode.
	ErrWrongMode = errors.New("action not available in this mode")

	// ErrBusy is returned when a recording or evaluation is in progress.
	ErrBusy = errors.New("still working on the last attempt")

	// ErrCapabilityUnavailable is returned when speech input or output is
	// missing on this machine. It matches speech.ErrUnavailable.
	ErrCapabilityUnavailable = fmt.Errorf("capability unavailable: %w", speech.ErrUnavailable)
)
