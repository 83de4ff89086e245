package timer

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/dayclock/internal/models"
)

func testSession() models.Session {
	return models.NewSession("id-1", "Reading", "#112233", t0, t0.Add(125*time.Second))
}

func TestSessionCmdHookParse(t *testing.T) {
	h, err := SessionCmdHook("")
	require.NoError(t, err)
	assert.Nil(t, h)

	_, err = SessionCmdHook(`echo "unterminated`)
	assert.ErrorIs(t, err, errParseSessionCmd)
}

func TestSessionCmdHookExposesSession(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	h, err := SessionCmdHook(`sh -c 'test "$DAYCLOCK_SESSION_NAME" = Reading && test "$DAYCLOCK_SESSION_DURATION" = 2'`)
	require.NoError(t, err)

	assert.NoError(t, h(context.Background(), testSession()))

	h, err = SessionCmdHook(`sh -c 'test "$DAYCLOCK_SESSION_NAME" = Writing'`)
	require.NoError(t, err)

	assert.Error(t, h(context.Background(), testSession()))
}

func TestRunHooksContinuesAfterFailure(t *testing.T) {
	var calls []string

	failing := func(context.Context, models.Session) error {
		calls = append(calls, "failing")
		return errors.New("boom")
	}

	ok := func(_ context.Context, sess models.Session) error {
		calls = append(calls, sess.Name)
		return nil
	}

	RunHooks(context.Background(), testSession(), failing, nil, ok)

	assert.Equal(t, []string{"failing", "Reading"}, calls)
}

func TestNotifyHook(t *testing.T) {
	orig := notifyFunc

	t.Cleanup(func() { notifyFunc = orig })

	var title, msg string

	notifyFunc = func(t, m string) error {
		title, msg = t, m
		return nil
	}

	require.NoError(t, NotifyHook()(context.Background(), testSession()))

	assert.Equal(t, "Reading", title)
	assert.Equal(t, "Session saved: 2m", msg)
}
