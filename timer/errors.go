package timer

import "github.com/ayoisaiah/dayclock/internal/apperr"

var (
	errAlreadyTracking = &apperr.Error{
		Message: "a timer is already running since %s",
	}

	errAwaitingSave = &apperr.Error{
		Message: "the stopped timer must be saved or cancelled first",
	}

	errNotTracking = &apperr.Error{
		Message: "no timer is running",
	}

	errStillTracking = &apperr.Error{
		Message: "the timer must be stopped before the session can be saved",
	}

	errNoStartTime = &apperr.Error{
		Message: "cannot save a session without a start time",
	}

	errFutureStart = &apperr.Error{
		Message: "start time %s is in the future",
	}

	errParseSessionCmd = &apperr.Error{
		Message: "unable to parse session command",
	}
)

var errInvalidColor = &apperr.Error{
	Message: "%s is not a hex colour code such as #3B82F6",
}
