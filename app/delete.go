package app

import (
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/dayclock/internal/models"
)

// confirm asks the user to approve a destructive operation. skip approves
// without asking.
func confirm(title string, skip bool) (bool, error) {
	if skip {
		return true, nil
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return false, errConfirmRequired
	}

	var ok bool

	err := huh.NewConfirm().
		Title(title).
		Affirmative("Delete").
		Negative("Cancel").
		Value(&ok).
		Run()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// selectSessions returns the stored sessions with the given ids, in the
// order requested.
func selectSessions(all []models.Session, ids []string) ([]models.Session, error) {
	if len(ids) == 0 {
		return nil, errNoSessionIDs
	}

	byID := make(map[string]models.Session, len(all))
	for _, sess := range all {
		byID[sess.ID] = sess
	}

	selected := make([]models.Session, 0, len(ids))

	for _, id := range ids {
		sess, ok := byID[id]
		if !ok {
			return nil, errSessionNotFound.Fmt(id)
		}

		selected = append(selected, sess)
	}

	return selected, nil
}

// delSessions deletes all the specified sessions. It requests for confirmation
// before proceeding with the operation.
func delSessions(w io.Writer, e *env, ids []string, skipConfirm bool) error {
	sessions, err := selectSessions(e.sessions.ListSessions(), ids)
	if err != nil {
		return err
	}

	err = printSessionsTable(w, sessions, e.timeFormat())
	if err != nil {
		return err
	}

	ok, err := confirm("The above sessions will be deleted permanently", skipConfirm)
	if err != nil || !ok {
		return err
	}

	for _, sess := range sessions {
		e.sessions.DeleteSession(sess.ID)
	}

	pterm.Success.Printfln("deleted %d session(s)", len(sessions))

	return nil
}

// clearSessions removes every stored session after confirmation.
func clearSessions(e *env, skipConfirm bool) error {
	n := len(e.sessions.ListSessions())
	if n == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	ok, err := confirm(pterm.Sprintf("All %d sessions will be deleted permanently", n), skipConfirm)
	if err != nil || !ok {
		return err
	}

	e.sessions.ClearAllSessions()

	pterm.Success.Printfln("deleted %d session(s)", n)

	return nil
}
