package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"termfolio/internal/content"
	"termfolio/internal/shell"
	"termfolio/internal/typing"
)

const testStartupText = "hello\nworld\n"

func staticLoader(text string) StartupLoader {
	return StartupLoaderFunc(func(context.Context) (string, error) {
		return text, nil
	})
}

func failingLoader(err error) StartupLoader {
	return StartupLoaderFunc(func(context.Context) (string, error) {
		return "", err
	})
}

func newTestApp(t *testing.T, loader StartupLoader) (*AppModel, *appModelAdapter) {
	t.Helper()
	a, err := NewAppModel(Options{
		Profile:     content.DefaultProfile(),
		Loader:      loader,
		TypingDelay: time.Millisecond,
		SessionID:   "test-session",
		Glyph:       "λ",
	})
	if err != nil {
		t.Fatalf("NewAppModel: %v", err)
	}
	return a, &appModelAdapter{AppModel: a}
}

// loadStartup runs the intro and delivers the loaded startup text.
func loadStartup(t *testing.T, ad *appModelAdapter) {
	t.Helper()
	ad.Update(introStepMsg(1))
	ad.Update(introStepMsg(2))
	_, cmd := ad.Update(introStepMsg(3))
	if cmd == nil {
		t.Fatal("intro step 3 should return the load command")
	}
	ad.Update(cmd())
}

// pump delivers ticks until s finishes.
func pump(t *testing.T, ad *appModelAdapter, s *typing.Session) {
	t.Helper()
	for i := 0; !s.Finished(); i++ {
		if i > s.Len()+1 {
			t.Fatalf("session did not finish after %d ticks", i)
		}
		ad.Update(typing.TickMsg{ID: s.ID()})
	}
}

// armedApp returns an app that has completed startup.
func armedApp(t *testing.T) (*AppModel, *appModelAdapter) {
	t.Helper()
	a, ad := newTestApp(t, staticLoader(testStartupText))
	loadStartup(t, ad)
	pump(t, ad, a.startup)
	ad.Update(startupSettledMsg{})
	ad.Update(promptArmedMsg{})
	if a.Mode != ModePrompt {
		t.Fatalf("expected ModePrompt after startup, got %v", a.Mode)
	}
	return a, ad
}

func typeLine(ad *appModelAdapter, s string) {
	for _, r := range s {
		ad.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	ad.Update(keyMsg("enter"))
}

func blockKinds(a *AppModel) []shell.BlockKind {
	var out []shell.BlockKind
	for _, b := range a.Screen.Blocks() {
		out = append(out, b.Kind)
	}
	return out
}

func lastBlock(t *testing.T, a *AppModel) shell.Block {
	t.Helper()
	blocks := a.Screen.Blocks()
	if len(blocks) == 0 {
		t.Fatal("screen is empty")
	}
	return blocks[len(blocks)-1]
}

func countKind(a *AppModel, kind shell.BlockKind) int {
	n := 0
	for _, b := range a.Screen.Blocks() {
		if b.Kind == kind {
			n++
		}
	}
	return n
}

// runKey presses a bound key and delivers the message its command produces.
func runKey(t *testing.T, ad *appModelAdapter, s string) {
	t.Helper()
	_, cmd := ad.Update(keyMsg(s))
	if cmd == nil {
		t.Fatalf("key %q returned no command", s)
	}
	ad.Update(cmd())
}

func TestStartup_IntroTextThenCommandList(t *testing.T) {
	a, ad := armedApp(t)

	want := []shell.BlockKind{shell.BlockText, shell.BlockText, shell.BlockText, shell.BlockCommandList}
	got := blockKinds(a)
	if len(got) != len(want) {
		t.Fatalf("blocks = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("block %d = %v, want %v", i, got[i], want[i])
		}
	}
	blocks := a.Screen.Blocks()
	if blocks[0].PlainText() != welcomeLine {
		t.Errorf("first line = %q", blocks[0].PlainText())
	}
	if links := blocks[1].Links(); len(links) != 1 || links[0] != shell.CmdHelp {
		t.Errorf("help hint links = %v", links)
	}
	if blocks[2].PlainText() != "hello\nworld" {
		t.Errorf("startup block = %q", blocks[2].PlainText())
	}
	view := ad.View()
	for _, s := range []string{"Welcome!", "hello", shell.CommandListLabel(), "λ"} {
		if !strings.Contains(view, s) {
			t.Errorf("view missing %q", s)
		}
	}
}

func TestStartup_RevealIsIncremental(t *testing.T) {
	a, ad := newTestApp(t, staticLoader("abc"))
	loadStartup(t, ad)

	if a.startup == nil || !a.startup.Running() {
		t.Fatal("startup reveal should be running")
	}
	ad.Update(typing.TickMsg{ID: a.startup.ID()})
	if got := a.startup.Text(); got != "a" {
		t.Errorf("after one tick text = %q, want %q", got, "a")
	}
	if !strings.Contains(ad.View(), cursorGlyph) {
		t.Error("cursor should be shown while typing")
	}
}

func TestStartup_LoadErrorShowsOneErrorLine(t *testing.T) {
	a, ad := newTestApp(t, failingLoader(&content.LoadError{Source: "http://x/startup.txt", Status: 404}))
	loadStartup(t, ad)

	if n := countKind(a, shell.BlockError); n != 1 {
		t.Fatalf("expected 1 error block, got %d", n)
	}
	want := "Error: failed to load startup text (HTTP 404)."
	if got := lastBlock(t, a).PlainText(); got != want {
		t.Errorf("error line = %q, want %q", got, want)
	}

	ad.Update(startupSettledMsg{})
	if lastBlock(t, a).Kind != shell.BlockCommandList {
		t.Error("command list should follow the error line")
	}
	ad.Update(promptArmedMsg{})
	if a.Mode != ModePrompt {
		t.Errorf("expected ModePrompt, got %v", a.Mode)
	}
}

func TestStartup_EscFastForwards(t *testing.T) {
	a, ad := newTestApp(t, staticLoader(testStartupText))
	loadStartup(t, ad)
	ad.Update(typing.TickMsg{ID: a.startup.ID()})

	runKey(t, ad, "esc")
	if !a.startup.Finished() {
		t.Fatal("esc should finish the reveal")
	}
	if got := lastBlock(t, a).PlainText(); got != "hello\nworld" {
		t.Errorf("startup block = %q", got)
	}

	n := a.Screen.Len()
	ad.Update(typing.TickMsg{ID: a.startup.ID()})
	if a.Screen.Len() != n {
		t.Error("stale tick after fast-forward should be ignored")
	}
}

func TestStartup_EnterFastForwards(t *testing.T) {
	a, ad := newTestApp(t, staticLoader(testStartupText))
	loadStartup(t, ad)

	ad.Update(keyMsg("enter"))
	if !a.startup.Finished() {
		t.Error("enter should finish the reveal during startup")
	}
	if a.Mode != ModeStartup {
		t.Errorf("prompt should not be armed yet, got %v", a.Mode)
	}
}

func TestStartup_TypingIgnoredBeforePrompt(t *testing.T) {
	a, ad := newTestApp(t, staticLoader(testStartupText))
	loadStartup(t, ad)

	ad.Update(keyMsg("x"))
	if a.Input.Value() != "" {
		t.Errorf("input should be ignored during startup, got %q", a.Input.Value())
	}
}

func TestStartup_HelpLinkSuppressesCommandList(t *testing.T) {
	a, ad := newTestApp(t, staticLoader(testStartupText))
	loadStartup(t, ad)
	ad.Update(typing.TickMsg{ID: a.startup.ID()})

	ad.Update(SubmitMsg{Command: shell.CmdHelp, FromLink: true})
	if !a.startup.Finished() {
		t.Fatal("link activation should fast-forward the reveal")
	}
	blocks := a.Screen.Blocks()
	if blocks[2].PlainText() != "hello\nworld" {
		t.Errorf("startup text should precede the command output, got %q", blocks[2].PlainText())
	}
	if blocks[3].Kind != shell.BlockAccepted || blocks[3].Command != shell.CmdHelp {
		t.Errorf("expected help echo after startup text, got %v %q", blocks[3].Kind, blocks[3].Command)
	}

	ad.Update(startupSettledMsg{})
	if a.Mode != ModePrompt {
		t.Errorf("expected prompt armed immediately, got %v", a.Mode)
	}
	if n := countKind(a, shell.BlockCommandList); n != 0 {
		t.Errorf("command list should be suppressed, got %d", n)
	}
}

func TestStartup_LinkBeforeTextArrivesDropsText(t *testing.T) {
	a, ad := newTestApp(t, staticLoader("abc"))
	ad.Update(introStepMsg(1))
	ad.Update(introStepMsg(2))

	ad.Update(SubmitMsg{Command: shell.CmdWhoami, FromLink: true})
	if a.Dispatcher.State().LastOutputKey != shell.CmdWhoami {
		t.Fatalf("LastOutputKey = %q", a.Dispatcher.State().LastOutputKey)
	}
	n := a.Screen.Len()

	_, cmd := ad.Update(introStepMsg(3))
	_, cmd = ad.Update(cmd())
	if a.startup != nil {
		t.Error("startup text should not be revealed after an early command")
	}
	if cmd == nil {
		t.Fatal("expected the startup sequence to continue")
	}
	if a.Screen.Len() != n {
		t.Errorf("startup text appended after command output: %v", blockKinds(a))
	}
	if strings.Contains(ad.View(), "abc") {
		t.Error("view should not show the startup text")
	}

	ad.Update(startupSettledMsg{})
	if lastBlock(t, a).Kind != shell.BlockCommandList {
		t.Error("command list should still follow")
	}
}

func TestStartup_LinkBeforeLoadErrorStillReportsError(t *testing.T) {
	a, ad := newTestApp(t, failingLoader(&content.LoadError{Source: "x", Status: 503}))
	ad.Update(SubmitMsg{Command: shell.CmdWhoami, FromLink: true})
	ad.Update(StartupLoadedMsg{Err: &content.LoadError{Source: "x", Status: 503}})

	if n := countKind(a, shell.BlockError); n != 1 {
		t.Errorf("expected 1 error block, got %d", n)
	}
}

func TestStartup_LinkMarkupRevealedWhole(t *testing.T) {
	a, ad := newTestApp(t, staticLoader("go [whoami](cmd:whoami)!"))
	loadStartup(t, ad)

	for i := 0; !a.startup.Finished(); i++ {
		if i > a.startup.Len() {
			t.Fatal("reveal did not finish")
		}
		if text := a.startup.Text(); strings.Contains(text, "[") && !strings.Contains(text, "(cmd:whoami)") {
			t.Fatalf("partial link markup revealed: %q", text)
		}
		if strings.Contains(ad.View(), "[whoami") {
			t.Fatalf("raw markup visible at tick %d", i)
		}
		ad.Update(typing.TickMsg{ID: a.startup.ID()})
	}
	if got := lastBlock(t, a).Links(); len(got) != 1 || got[0] != shell.CmdWhoami {
		t.Errorf("links = %v", got)
	}
}

func TestPrompt_TypedCommandDispatches(t *testing.T) {
	a, ad := armedApp(t)

	typeLine(ad, "projects")
	if a.Dispatcher.State().Mode != shell.ModeProjects {
		t.Errorf("shell mode = %v, want Projects", a.Dispatcher.State().Mode)
	}
	if a.Input.Value() != "" {
		t.Errorf("input should be cleared, got %q", a.Input.Value())
	}
	if countKind(a, shell.BlockAccepted) != 1 {
		t.Error("expected one accepted echo")
	}
}

func TestPrompt_DuplicateCommandSuppressed(t *testing.T) {
	a, ad := armedApp(t)

	typeLine(ad, "whoami")
	n := a.Screen.Len()
	typeLine(ad, "whoami")
	if a.Screen.Len() != n {
		t.Errorf("duplicate command appended %d blocks", a.Screen.Len()-n)
	}
}

func TestPrompt_UnknownCommand(t *testing.T) {
	a, ad := armedApp(t)

	typeLine(ad, "sudo")
	if countKind(a, shell.BlockRejected) != 1 {
		t.Fatal("expected a rejected echo")
	}
	if got := lastBlock(t, a).PlainText(); !strings.Contains(got, "command not found: sudo") {
		t.Errorf("message = %q", got)
	}
}

func TestPrompt_EmptyEnterDoesNothing(t *testing.T) {
	a, ad := armedApp(t)

	n := a.Screen.Len()
	typeLine(ad, "   ")
	if a.Screen.Len() != n {
		t.Error("empty input should not render anything")
	}
}

func TestClear_TypesNoticeThenArmsPrompt(t *testing.T) {
	a, ad := armedApp(t)
	typeLine(ad, "whoami")

	typeLine(ad, "clear")
	if a.Mode != ModeClearing {
		t.Fatalf("expected ModeClearing, got %v", a.Mode)
	}
	if strings.Contains(ad.View(), "Welcome!") {
		t.Error("cleared output should not be visible")
	}
	if strings.Contains(ad.View(), shell.CommandListLabel()) {
		t.Error("command list should wait for the notice")
	}

	ad.Update(keyMsg("x"))
	if a.Input.Value() != "" {
		t.Error("input should be ignored while clearing")
	}

	pump(t, ad, a.clearing)
	ad.Update(clearSettledMsg{})
	if a.Mode != ModePrompt {
		t.Fatalf("expected ModePrompt after clear, got %v", a.Mode)
	}
	got := blockKinds(a)
	if len(got) != 2 || got[0] != shell.BlockNotice || got[1] != shell.BlockCommandList {
		t.Errorf("blocks after clear = %v", got)
	}
	if !strings.Contains(ad.View(), shell.ClearedMessage) {
		t.Error("view should show the clear notice")
	}
	if a.Dispatcher.State().LastOutputKey != "" {
		t.Error("clear should reset LastOutputKey")
	}
}

func TestClear_ShortcutDuringStartup(t *testing.T) {
	a, ad := newTestApp(t, staticLoader(testStartupText))
	loadStartup(t, ad)

	runKey(t, ad, "ctrl+l")
	if a.Mode != ModeClearing {
		t.Fatalf("expected ModeClearing, got %v", a.Mode)
	}
	if !a.startup.Finished() {
		t.Error("startup reveal should be finished")
	}
	pump(t, ad, a.clearing)
	ad.Update(clearSettledMsg{})
	ad.Update(startupSettledMsg{})
	ad.Update(promptArmedMsg{})

	if a.Mode != ModePrompt {
		t.Errorf("expected ModePrompt, got %v", a.Mode)
	}
	if n := countKind(a, shell.BlockCommandList); n != 1 {
		t.Errorf("expected exactly one command list, got %d", n)
	}
}

func TestClear_BeforeStartupTextDropsIt(t *testing.T) {
	a, ad := newTestApp(t, staticLoader(testStartupText))
	ad.Update(introStepMsg(1))

	ad.Update(ClearShortcutMsg{})
	pump(t, ad, a.clearing)
	ad.Update(clearSettledMsg{})
	ad.Update(introStepMsg(2))
	ad.Update(StartupLoadedMsg{Text: testStartupText})

	if a.startup != nil {
		t.Error("startup text arriving after clear should be dropped")
	}
	if got := blockKinds(a); len(got) != 2 {
		t.Errorf("blocks = %v", got)
	}
}

func TestMouse_ClickActivatesLink(t *testing.T) {
	a, ad := armedApp(t)
	ad.Update(tea.WindowSizeMsg{Width: 80, Height: 40})

	var zone linkZone
	found := false
	for _, z := range a.layout.zones {
		if z.Command == shell.CmdWhoami {
			zone, found = z, true
			break
		}
	}
	if !found {
		t.Fatal("no whoami link on screen")
	}

	ad.Update(tea.MouseMsg{
		X:      zone.Start,
		Y:      zone.Line - a.Viewport.YOffset + titleHeight,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if a.Dispatcher.State().LastOutputKey != shell.CmdWhoami {
		t.Errorf("LastOutputKey = %q, want whoami", a.Dispatcher.State().LastOutputKey)
	}
}

func TestMouse_ClickOutsideLinkDoesNothing(t *testing.T) {
	a, ad := armedApp(t)
	n := a.Screen.Len()

	ad.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if a.Screen.Len() != n {
		t.Error("click on the title bar should not dispatch")
	}
}

func TestMouse_WheelScrolls(t *testing.T) {
	a, ad := armedApp(t)
	ad.Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	typeLine(ad, "help")

	bottom := a.Viewport.YOffset
	if bottom == 0 {
		t.Fatal("content should overflow the viewport")
	}
	ad.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if a.Viewport.YOffset >= bottom {
		t.Errorf("wheel up should scroll up, offset %d -> %d", bottom, a.Viewport.YOffset)
	}
	runKey(t, ad, "pgdown")
	if a.Viewport.YOffset != bottom {
		t.Errorf("pgdown should return to the bottom, got %d want %d", a.Viewport.YOffset, bottom)
	}
}

func TestKeyboard_TabFocusThenEnterActivates(t *testing.T) {
	a, ad := armedApp(t)

	runKey(t, ad, "tab")
	if a.linkFocus != 0 {
		t.Fatalf("linkFocus = %d, want 0", a.linkFocus)
	}
	first := a.layout.links[0]

	ad.Update(keyMsg("enter"))
	if a.Dispatcher.State().LastOutputKey != first {
		t.Errorf("LastOutputKey = %q, want %q", a.Dispatcher.State().LastOutputKey, first)
	}
	if a.linkFocus != -1 {
		t.Error("focus should reset after activation")
	}
}

func TestKeyboard_ShiftTabWrapsToLastLink(t *testing.T) {
	a, ad := armedApp(t)

	runKey(t, ad, "shift+tab")
	if want := len(a.layout.links) - 1; a.linkFocus != want {
		t.Errorf("linkFocus = %d, want %d", a.linkFocus, want)
	}
	ad.Update(keyMsg("x"))
	if a.linkFocus != -1 {
		t.Error("typing should drop link focus")
	}
}
