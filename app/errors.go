package app

import "github.com/ayoisaiah/dayclock/internal/apperr"

var (
	errNoSessionIDs = &apperr.Error{
		Message: "specify the id of at least one session to delete",
	}

	errSessionNotFound = &apperr.Error{
		Message: "no session with id %s",
	}

	errConfirmRequired = &apperr.Error{
		Message: "refusing to delete without confirmation: pass --yes when stdin is not a terminal",
	}

	errSaveAborted = &apperr.Error{
		Message: "session not saved: the timer is still running",
	}

	errUnknownFace = &apperr.Error{
		Message: "unknown face %q (supported: day, am, pm)",
	}

	errUnknownSort = &apperr.Error{
		Message: "unknown sort order %q (supported: start, name)",
	}

	errImportPath = &apperr.Error{
		Message: "specify the file to import",
	}
)
