package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/dayclock/chart"
	"github.com/ayoisaiah/dayclock/internal/i18n"
	"github.com/ayoisaiah/dayclock/internal/models"
	"github.com/ayoisaiah/dayclock/internal/osutil"
	"github.com/ayoisaiah/dayclock/internal/pathutil"
	"github.com/ayoisaiah/dayclock/internal/timeutil"
	"github.com/ayoisaiah/dayclock/internal/ui"
	"github.com/ayoisaiah/dayclock/report"
	"github.com/ayoisaiah/dayclock/store"
	"github.com/ayoisaiah/dayclock/timer"
)

const (
	envNoColor         = "NO_COLOR"
	envDayclockNoColor = "DAYCLOCK_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// withEnv opens the configuration and storage for the duration of fn.
func withEnv(fn func(ctx *cli.Context, e *env) error) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}

		defer e.Close()

		return fn(ctx, e)
	}
}

// defaultAction runs the interactive timer.
func defaultAction(ctx *cli.Context, e *env) error {
	hooks, err := e.hooks()
	if err != nil {
		return err
	}

	m := timer.NewModel(e.machine(), timer.ModelOptions{
		Palette:        e.cfg.Session.Palette,
		Hooks:          hooks,
		Style:          timer.NewStyle(e.cfg.Display.DarkTheme),
		TwentyFourHour: e.cfg.Display.TwentyFourHour,
		Debug:          e.cfg.Debug,
	})

	_, err = tea.NewProgram(m, tea.WithContext(ctx.Context)).Run()

	return err
}

// startAction starts the timer now or at the time given by --since.
func startAction(ctx *cli.Context, e *env) error {
	m := e.machine()
	defer m.Close()

	var err error

	if since := ctx.String("since"); since != "" {
		var t time.Time

		t, err = timeutil.FromStr(since, time.Now())
		if err != nil {
			return err
		}

		err = m.StartAt(t)
	} else {
		err = m.Start()
	}

	if err != nil {
		return err
	}

	pterm.Success.Printfln(
		"tracking since %s",
		ui.Highlight(m.StartTime().Format(e.timeFormat())),
	)

	return nil
}

// stopAction stops the timer and saves the session under the name and
// colour from the flags, or from a form when neither flag is set.
func stopAction(ctx *cli.Context, e *env) error {
	m := e.machine()
	defer m.Close()

	hooks, err := e.hooks()
	if err != nil {
		return err
	}

	err = m.Stop()
	if err != nil {
		return err
	}

	fields := timer.SaveFields{
		Name:  ctx.String("name"),
		Color: ctx.String("color"),
	}

	interactive := !ctx.IsSet("name") && !ctx.IsSet("color") &&
		isatty.IsTerminal(os.Stdin.Fd())

	if interactive {
		err = timer.NewSaveForm(m.Draft(), e.cfg.Session.Palette, &fields).Run()
		if errors.Is(err, huh.ErrUserAborted) {
			return errSaveAborted
		}

		if err != nil {
			return err
		}
	}

	color := fields.ChosenColor()

	err = timer.ValidateColor(color)
	if err != nil {
		return err
	}

	sess, err := m.Submit(fields.Name, color)
	if err != nil {
		return err
	}

	timer.RunHooks(ctx.Context, sess, hooks...)

	report.SessionSaved(&sess)

	return nil
}

// cancelAction discards the running timer.
func cancelAction(_ *cli.Context, e *env) error {
	m := e.machine()
	defer m.Close()

	err := m.Cancel()
	if err != nil {
		return err
	}

	pterm.Info.Println("timer cancelled")

	return nil
}

func statusLine(start time.Time, elapsed time.Duration, layout string) string {
	return fmt.Sprintf(
		"%s since %s (%s)",
		ui.Highlight(timeutil.FormatElapsed(elapsed)),
		start.Format(layout),
		humanize.Time(start),
	)
}

// statusAction prints the elapsed time of the running timer. With --watch
// the line is redrawn every second until interrupted.
func statusAction(ctx *cli.Context, e *env) error {
	st := e.runState.Load()
	if !st.IsTracking {
		pterm.Info.Println("no timer is running")
		return nil
	}

	if !ctx.Bool("watch") {
		pterm.Println(statusLine(st.StartTime, time.Since(st.StartTime), e.timeFormat()))
		return nil
	}

	// The watcher works on a snapshot so the database is not held while
	// the line is redrawn.
	e.Close()

	snapshot := store.NewMemoryKV()
	runState := store.NewRunState(snapshot)

	err := runState.Save(st)
	if err != nil {
		return err
	}

	area, err := pterm.DefaultArea.Start(statusLine(st.StartTime, time.Since(st.StartTime), e.timeFormat()))
	if err != nil {
		return err
	}

	defer func() {
		_ = area.Stop()
	}()

	m := timer.New(
		store.NewSessions(snapshot),
		runState,
		timer.WithTickHandler(func(elapsed time.Duration) {
			area.Update(statusLine(st.StartTime, elapsed, e.timeFormat()))
		}),
	)
	defer m.Close()

	sigCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-sigCtx.Done()

	return nil
}

// listAction prints the stored sessions.
func listAction(ctx *cli.Context, e *env) error {
	day, err := parseDay(ctx.String("date"), time.Now())
	if err != nil {
		return err
	}

	sessions := sessionsOn(e, day)

	err = sortSessions(sessions, ctx.String("sort"))
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(os.Stdout, sessions)
	}

	return listSessions(os.Stdout, sessions, e.timeFormat())
}

// deleteAction deletes the sessions whose ids are passed as arguments.
func deleteAction(ctx *cli.Context, e *env) error {
	return delSessions(os.Stdout, e, ctx.Args().Slice(), ctx.Bool("yes"))
}

// clearAction deletes every stored session.
func clearAction(ctx *cli.Context, e *env) error {
	return clearSessions(e, ctx.Bool("yes"))
}

// legendAction prints the total time of each activity and, for a single
// day, the tracked and idle totals.
func legendAction(ctx *cli.Context, e *env) error {
	day, err := parseDay(ctx.String("date"), time.Now())
	if err != nil {
		return err
	}

	sessions := sessionsClippedTo(e, day)
	legend := chart.Legend(sessions)

	if ctx.Bool("json") {
		return printJSON(os.Stdout, legend)
	}

	err = printLegend(os.Stdout, legend)
	if err != nil || day.IsZero() || len(legend) == 0 {
		return err
	}

	summary := chart.Summarize(chart.ProjectIn(sessions, time.Local))

	pterm.Info.Printfln(
		"tracked %s, %s %s",
		timeutil.FormatMinutes(summary.Tracked),
		e.tr.T(i18n.Idle),
		timeutil.FormatMinutes(summary.Idle),
	)

	return nil
}

func (e *env) chartOptions(day time.Time) chart.Options {
	return chart.Options{
		Translator: e.tr,
		Location:   time.Local,
		Day:        day,
		Size:       e.cfg.Chart.Size,
		Radius:     e.cfg.Chart.Radius,
	}
}

// createOutput returns the file named by path, or stdout when path is empty.
func createOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}

	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, osutil.FilePermission)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// chartAction writes one clock face as an SVG document.
func chartAction(ctx *cli.Context, e *env) error {
	face := chart.Face(ctx.String("face"))

	switch face {
	case chart.FaceDay, chart.FaceAM, chart.FacePM:
	default:
		return errUnknownFace.Fmt(face)
	}

	day, err := parseDay(ctx.String("date"), time.Now())
	if err != nil {
		return err
	}

	faces := chart.ProjectIn(sessionsClippedTo(e, day), time.Local)

	view := chart.NewFaceView(
		face,
		faces.Arcs(face),
		e.cfg.Chart.Size,
		e.cfg.Chart.Radius,
		chart.Titles(e.tr)[face],
	)

	out, err := createOutput(ctx.String("out"))
	if err != nil {
		return err
	}

	err = chart.RenderSVG(out, view)
	if err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}

// serveAction serves the overview page until interrupted.
func serveAction(ctx *cli.Context, e *env) error {
	day, err := parseDay(ctx.String("date"), time.Now())
	if err != nil {
		return err
	}

	port := e.cfg.Chart.Port
	if ctx.IsSet("port") {
		port = ctx.Uint("port")
	}

	sigCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return chart.Serve(sigCtx, e.sessions, port, ctx.Bool("open"), e.chartOptions(day))
}

// exportAction writes every stored session as JSON or yaml.
func exportAction(ctx *cli.Context, e *env) error {
	path := ctx.String("out")
	format := firstNonEmptyString(ctx.String("format"), store.FormatFromPath(path))

	sessions := e.sessions.ListSessions()

	out, err := createOutput(path)
	if err != nil {
		return err
	}

	err = store.Encode(out, sessions, format)
	if err != nil {
		_ = out.Close()
		return err
	}

	if path != "" {
		pterm.Success.Printfln("exported %d session(s) to %s", len(sessions), path)
	}

	return out.Close()
}

// importAction merges sessions from a previously exported file.
func importAction(ctx *cli.Context, e *env) error {
	path := ctx.Args().First()
	if path == "" {
		return errImportPath
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer f.Close()

	format := firstNonEmptyString(ctx.String("format"), store.FormatFromPath(path))

	var records []models.Session

	records, err = store.Decode(f, format)
	if err != nil {
		return err
	}

	n, err := e.sessions.Import(records, e.defaultName())
	if err != nil {
		return err
	}

	pterm.Success.Printfln("imported %d of %d session(s)", n, len(records))

	return nil
}

// editConfigAction handles the edit-config command which opens the dayclock
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		osutil.DefaultEditor(),
	)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, cfg.PathToConfig)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if DAYCLOCK_NO_COLOR is set
	if _, exists := os.LookupEnv(envDayclockNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	err := pathutil.Initialize()
	if err != nil {
		return err
	}

	logWriter = setupLogger(ctx.Bool("debug"))

	slog.DebugContext(ctx.Context, "starting dayclock", slog.Any("args", ctx.Args().Slice()))

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting dayclock")

	if logWriter != nil {
		return logWriter.Close()
	}

	return nil
}
