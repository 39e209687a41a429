package ui

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	oteltrace "go.opentelemetry.io/otel/trace"

	"termfolio/internal/content"
	"termfolio/internal/shell"
	"termfolio/internal/telemetry"
	"termfolio/internal/typing"
	"termfolio/internal/ui/textutil"
)

const (
	titleHeight  = 1
	footerHeight = 1
	// Used until the first WindowSizeMsg arrives.
	defaultWidth  = 80
	defaultHeight = 24
)

// titleGlyphs are the candidates for the title-bar glyph.
var titleGlyphs = []string{"λ", "✦", "◆", "❖", "✧", "☾", "⌘", "♜", "✺", "❂"}

// Options configures NewAppModel.
type Options struct {
	Profile     content.Profile
	Loader      StartupLoader
	TypingDelay time.Duration
	Logger      *slog.Logger
	Telemetry   *telemetry.Provider
	// SessionID tags log records and spans; generated when empty.
	SessionID string
	// Glyph is the title-bar glyph; picked at random when empty.
	Glyph string
}

// AppModel is the root model: one terminal session.
type AppModel struct {
	Mode       AppMode
	Screen     *shell.Screen
	Dispatcher *shell.Dispatcher
	Keys       *KeybindRegistry
	Input      textinput.Model
	Viewport   viewport.Model
	Help       help.Model

	title     string
	loader    StartupLoader
	delay     time.Duration
	logger    *slog.Logger
	tracer    oteltrace.Tracer
	sessionID string
	glyph     string

	// startup is nil until the startup text (or its error) arrives.
	startup *typing.Session
	// revealSkipped: a link was activated before the startup text arrived,
	// so the text is not shown.
	revealSkipped bool
	// startupDiscarded: the terminal was cleared before the startup text
	// arrived; it is never shown.
	startupDiscarded bool
	// helpClickedEarly suppresses the automatic command list.
	helpClickedEarly bool

	clearing *typing.Session

	width, height int
	layout        layout
	// linkFocus is the ordinal of the focused command link, -1 for none.
	linkFocus int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel builds the command registry for opts.Profile and returns a
// model in ModeStartup.
func NewAppModel(opts Options) (*AppModel, error) {
	registry, err := shell.NewPortfolioRegistry(opts.Profile)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	glyph := opts.Glyph
	if glyph == "" {
		glyph = titleGlyphs[rand.IntN(len(titleGlyphs))]
	}

	screen := &shell.Screen{}
	input := textinput.New()
	input.Prompt = promptGlyph
	input.PromptStyle = Styles.PromptAccepted
	input.TextStyle = Styles.Normal
	input.CharLimit = 256

	keys := NewKeybindRegistry()
	DefaultKeybinds(keys)

	a := &AppModel{
		Mode:       ModeStartup,
		Screen:     screen,
		Dispatcher: shell.NewDispatcher(registry, shell.NewState(), screen),
		Keys:       keys,
		Input:      input,
		Viewport:   viewport.New(defaultWidth, defaultHeight-titleHeight-footerHeight),
		Help:       newHelpModel(),
		title:      opts.Profile.Title,
		loader:     opts.Loader,
		delay:      opts.TypingDelay,
		logger:     logger.With("session", sessionID),
		tracer:     opts.Telemetry.Tracer(),
		sessionID:  sessionID,
		glyph:      glyph,
		linkFocus:  -1,
	}
	a.resize(defaultWidth, defaultHeight)
	return a, nil
}

// AsTeaModel returns the tea.Model for tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// SessionID identifies this terminal session in logs and spans.
func (a *AppModel) SessionID() string { return a.sessionID }

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	a.logger.Info("session started")
	return after(introFirstDelay, introStepMsg(1))
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil
	case introStepMsg:
		return a, a.handleIntroStep(int(msg))
	case StartupLoadedMsg:
		return a, a.handleStartupLoaded(msg)
	case typing.TickMsg:
		return a, a.handleTypingTick(msg)
	case startupSettledMsg:
		return a, a.handleStartupSettled()
	case promptArmedMsg:
		if a.Mode != ModeStartup {
			return a, nil
		}
		return a, a.armPrompt()
	case clearSettledMsg:
		if a.Mode != ModeClearing {
			return a, nil
		}
		a.clearing = nil
		return a, a.armPrompt()
	case FastForwardMsg:
		return a, a.fastForwardStartup()
	case ClearShortcutMsg:
		return a, a.handleClearShortcut()
	case SubmitMsg:
		return a, a.submit(msg.Command, msg.FromLink)
	case ScrollMsg:
		a.scroll(msg.Lines)
		return a, nil
	case PageMsg:
		a.page(msg.Down)
		return a, nil
	case FocusLinkMsg:
		a.focusLink(msg.Delta)
		return a, nil
	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	case tea.KeyMsg:
		if consumed, keyCmd := a.Keys.Handle(msg, a.Mode); consumed {
			return a, keyCmd
		}
		if msg.Type == tea.KeyEnter {
			return a, a.handleEnter()
		}
		if a.Mode != ModePrompt {
			return a, nil
		}
		var cmd tea.Cmd
		a.Input, cmd = a.Input.Update(msg)
		a.linkFocus = -1
		a.refresh(true)
		return a, cmd
	}
	if a.Mode == ModePrompt {
		var cmd tea.Cmd
		a.Input, cmd = a.Input.Update(msg)
		return a, cmd
	}
	return a, nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		a.renderTitle(),
		a.Viewport.View(),
		RenderKeybindHelp(a.Help, a.Keys, a.Mode, a.width),
	)
}

func (a *AppModel) renderTitle() string {
	glyph := Styles.Glyph.Render(a.glyph + " ")
	title := textutil.Truncate(a.title, a.width-textutil.VisualWidth(a.glyph)-1)
	return Styles.TitleBar.Width(a.width).Render(glyph + title)
}

func (a *AppModel) resize(width, height int) {
	a.width, a.height = width, height
	a.Viewport.Width = width
	a.Viewport.Height = max(height-titleHeight-footerHeight, 1)
	a.Input.Width = max(width-textutil.VisualWidth(promptGlyph)-1, 1)
	a.refresh(true)
}

// refresh re-renders the scrollback. follow scrolls to the bottom.
func (a *AppModel) refresh(follow bool) {
	r := newRenderer(a.width, a.linkFocus)
	blocks := a.Screen.Blocks()
	if a.clearing != nil {
		// The cleared screen stays hidden until the notice is typed.
		blocks = nil
	}
	for _, b := range blocks {
		r.block(b, false)
	}
	if s := a.startup; s != nil && !s.Finished() {
		r.block(shell.Text(s.Text()), true)
	}
	if s := a.clearing; s != nil {
		if s.Finished() {
			for _, b := range a.Screen.Blocks() {
				r.block(b, false)
			}
		} else {
			r.block(shell.Notice(s.Text()), true)
		}
	}
	if a.Mode == ModePrompt {
		r.line(a.Input.View())
	}
	a.layout = r.out
	a.Viewport.SetContent(strings.Join(a.layout.lines, "\n"))
	if follow {
		a.Viewport.GotoBottom()
	}
}

// dispatch submits line to the shell, recording a span and a debug record.
func (a *AppModel) dispatch(line, source string) shell.Outcome {
	_, span := a.tracer.Start(context.Background(), "shell.dispatch")
	defer span.End()

	outcome := a.Dispatcher.Submit(line)
	span.SetAttributes(
		telemetry.AttrSession.String(a.sessionID),
		telemetry.AttrCommand.String(outcome.Command),
		telemetry.AttrSource.String(source),
		telemetry.AttrModeIn.String(outcome.From.String()),
		telemetry.AttrModeOut.String(outcome.Mode.String()),
		telemetry.AttrOutcome.String(outcome.Kind.String()),
	)
	a.logger.Debug("dispatch",
		"command", outcome.Command,
		"source", source,
		"from", outcome.From,
		"mode", outcome.Mode,
		"outcome", outcome.Kind,
	)
	return outcome
}

// loadErrorMessage is the line shown in place of startup text that failed
// to load.
func loadErrorMessage(err error) string {
	var le *content.LoadError
	if errors.As(err, &le) {
		return le.Message()
	}
	return "Error: " + err.Error()
}
