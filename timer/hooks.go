package timer

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"strconv"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/dayclock/internal/models"
	"github.com/ayoisaiah/dayclock/internal/timeutil"
)

// Hook is run after every saved session.
type Hook func(ctx context.Context, sess models.Session) error

// notifyFunc is swapped in tests.
var notifyFunc = func(title, msg string) error {
	return beeep.Notify(title, msg, "")
}

// SessionCmdHook returns a hook that executes sessionCmd. The session is
// described to the command through DAYCLOCK_SESSION_* variables. An empty
// command yields nil.
func SessionCmdHook(sessionCmd string) (Hook, error) {
	if sessionCmd == "" {
		return nil, nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return nil, errParseSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil, nil
	}

	return func(ctx context.Context, sess models.Session) error {
		cmd := exec.CommandContext(ctx, cmdSlice[0], cmdSlice[1:]...)
		cmd.Env = append(os.Environ(), sessionEnv(&sess)...)

		return cmd.Run()
	}, nil
}

func sessionEnv(sess *models.Session) []string {
	return []string{
		"DAYCLOCK_SESSION_ID=" + sess.ID,
		"DAYCLOCK_SESSION_NAME=" + sess.Name,
		"DAYCLOCK_SESSION_COLOR=" + sess.Color,
		"DAYCLOCK_SESSION_START=" + strconv.FormatInt(sess.StartTime.UnixMilli(), 10),
		"DAYCLOCK_SESSION_END=" + strconv.FormatInt(sess.EndTime.UnixMilli(), 10),
		"DAYCLOCK_SESSION_DURATION=" + strconv.Itoa(sess.Duration),
	}
}

// NotifyHook sends a desktop notification for each saved session.
func NotifyHook() Hook {
	return func(_ context.Context, sess models.Session) error {
		return notifyFunc(
			sess.Name,
			"Session saved: "+timeutil.FormatMinutes(sess.Duration),
		)
	}
}

// RunHooks runs every non-nil hook in order. Failures are logged and do not
// stop later hooks.
func RunHooks(ctx context.Context, sess models.Session, hooks ...Hook) {
	for _, h := range hooks {
		if h == nil {
			continue
		}

		err := h(ctx, sess)
		if err != nil {
			slog.ErrorContext(
				ctx,
				"post-save hook failed",
				slog.String("id", sess.ID),
				slog.Any("error", err),
			)
		}
	}
}
