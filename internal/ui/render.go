package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"termfolio/internal/shell"
	"termfolio/internal/ui/textutil"
)

const (
	// codeColumn is the width of the command column of a code block.
	codeColumn = 14
	// minDescWidth keeps descriptions readable on narrow terminals.
	minDescWidth = 12
	cursorGlyph  = "█"
	promptGlyph  = "❯ "
)

// linkZone is the clickable area of a command link on one rendered line.
// Columns are visual; End is exclusive.
type linkZone struct {
	Line, Start, End int
	Link             int
	Command          string
}

// layout is the rendered scrollback.
type layout struct {
	lines []string
	zones []linkZone
	// links holds the command of each link, by ordinal.
	links []string
}

// zoneAt returns the link zone under (line, col).
func (l layout) zoneAt(line, col int) (linkZone, bool) {
	for _, z := range l.zones {
		if z.Line == line && col >= z.Start && col < z.End {
			return z, true
		}
	}
	return linkZone{}, false
}

// firstLine returns the first line the link with ordinal link is drawn on.
func (l layout) firstLine(link int) int {
	for _, z := range l.zones {
		if z.Link == link {
			return z.Line
		}
	}
	return -1
}

type renderer struct {
	width int
	focus int
	out   layout
}

func newRenderer(width, focus int) *renderer {
	if width < 1 {
		width = 1
	}
	return &renderer{width: width, focus: focus}
}

// rspan is a span being laid out; dim marks the URL hint after a web link.
type rspan struct {
	shell.Span
	dim bool
}

// block renders b. cursor appends the typing cursor to its last line.
func (r *renderer) block(b shell.Block, cursor bool) {
	switch b.Kind {
	case shell.BlockCode:
		r.code(b)
	case shell.BlockAccepted:
		r.echo(b.Command, Styles.PromptAccepted, Styles.Accepted)
	case shell.BlockRejected:
		r.echo(b.Command, Styles.PromptRejected, Styles.Rejected)
	case shell.BlockCommandList:
		spans := []shell.Span{{Text: shell.CommandListLabel()}}
		for _, c := range b.Commands {
			spans = append(spans, shell.Span{Text: "  "}, shell.Span{Text: c, Command: c})
		}
		r.flow(spans, Styles.Hint, cursor)
	case shell.BlockError:
		r.flow(b.Spans, Styles.Error, cursor)
	case shell.BlockNotice:
		r.flow(b.Spans, Styles.Hint, cursor)
	default:
		r.flow(b.Spans, Styles.Normal, cursor)
	}
}

// line appends a raw, already styled line.
func (r *renderer) line(s string) {
	r.out.lines = append(r.out.lines, s)
}

func (r *renderer) newLink(command string) int {
	r.out.links = append(r.out.links, command)
	return len(r.out.links) - 1
}

func (r *renderer) linkStyle(ord int) lipgloss.Style {
	if ord == r.focus {
		return Styles.CommandFocus
	}
	return Styles.Command
}

func (r *renderer) flow(spans []shell.Span, base lipgloss.Style, cursor bool) {
	var expanded []rspan
	ords := map[int]int{}
	for _, s := range spans {
		if s.Command != "" {
			ords[len(expanded)] = r.newLink(s.Command)
		}
		expanded = append(expanded, rspan{Span: s})
		if s.URL != "" && s.URL != s.Text {
			expanded = append(expanded, rspan{Span: shell.Span{Text: " <" + s.URL + ">"}, dim: true})
		}
	}

	lines := wrapSpans(expanded, r.width)
	for _, pieces := range lines {
		lineNo := len(r.out.lines)
		var sb strings.Builder
		col := 0
		for _, p := range pieces {
			s := expanded[p.span]
			w := textutil.VisualWidth(p.text)
			switch {
			case s.Command != "":
				ord := ords[p.span]
				sb.WriteString(r.linkStyle(ord).Render(p.text))
				r.out.zones = append(r.out.zones, linkZone{
					Line: lineNo, Start: col, End: col + w,
					Link: ord, Command: s.Command,
				})
			case s.URL != "":
				sb.WriteString(textutil.Hyperlink(s.URL, Styles.WebLink.Render(p.text)))
			case s.dim:
				sb.WriteString(Styles.Description.Render(p.text))
			default:
				sb.WriteString(base.Render(p.text))
			}
			col += w
		}
		r.line(sb.String())
	}
	if cursor {
		last := len(r.out.lines) - 1
		r.out.lines[last] += Styles.Cursor.Render(cursorGlyph)
	}
}

func (r *renderer) code(b shell.Block) {
	ord := r.newLink(b.Command)
	cmdWidth := textutil.VisualWidth(b.Command)
	col := max(codeColumn, cmdWidth+2)
	descWidth := max(r.width-col, minDescWidth)

	desc := wrapSpans([]rspan{{Span: shell.Span{Text: b.Description}}}, descWidth)
	for i, pieces := range desc {
		var text strings.Builder
		for _, p := range pieces {
			text.WriteString(p.text)
		}
		line := textutil.PadRightVisual("", col)
		if i == 0 {
			r.out.zones = append(r.out.zones, linkZone{
				Line: len(r.out.lines), Start: 0, End: cmdWidth,
				Link: ord, Command: b.Command,
			})
			styled := r.linkStyle(ord).Render(b.Command)
			line = styled + textutil.PadRightVisual("", col-textutil.VisualWidthStyled(styled))
		}
		r.line(line + Styles.Description.Render(text.String()))
	}
}

func (r *renderer) echo(command string, prompt, text lipgloss.Style) {
	avail := r.width - textutil.VisualWidth(promptGlyph)
	r.line(prompt.Render(promptGlyph) + text.Render(textutil.Truncate(command, avail)))
}

// piece is a run of one span's text on one line.
type piece struct {
	text string
	span int
}

type tokenKind int

const (
	tokWord tokenKind = iota
	tokSpace
	tokBreak
)

type token struct {
	text string
	span int
	kind tokenKind
}

func tokenize(spans []rspan) []token {
	var toks []token
	for i, s := range spans {
		var word strings.Builder
		flush := func() {
			if word.Len() > 0 {
				toks = append(toks, token{text: word.String(), span: i, kind: tokWord})
				word.Reset()
			}
		}
		for _, c := range s.Text {
			switch c {
			case '\n':
				flush()
				toks = append(toks, token{span: i, kind: tokBreak})
			case ' ', '\t':
				flush()
				toks = append(toks, token{text: " ", span: i, kind: tokSpace})
			case '\r':
			default:
				word.WriteRune(c)
			}
		}
		flush()
	}
	return toks
}

// wrapSpans lays spans out in lines of at most width columns. Words move
// to the next line whole when they fit on one; adjacent words from
// different spans stay together. Spaces at the start of a hard line are
// kept so preformatted text keeps its indentation; spaces at a soft break
// are dropped.
func wrapSpans(spans []rspan, width int) [][]piece {
	if width < 1 {
		width = 1
	}
	var (
		lines [][]piece
		cur   []piece
		col   int
		soft  bool
	)
	newline := func(isSoft bool) {
		lines = append(lines, trimTrailingSpace(cur))
		cur, col, soft = nil, 0, isSoft
	}
	place := func(text string, span int) {
		if n := len(cur); n > 0 && cur[n-1].span == span {
			cur[n-1].text += text
			return
		}
		cur = append(cur, piece{text: text, span: span})
	}

	toks := tokenize(spans)
	for i := 0; i < len(toks); {
		t := toks[i]
		switch t.kind {
		case tokBreak:
			newline(false)
			i++
		case tokSpace:
			switch {
			case col == 0 && soft:
			case col+1 > width:
				newline(true)
			default:
				place(" ", t.span)
				col++
			}
			i++
		default:
			j, unit := i, 0
			for j < len(toks) && toks[j].kind == tokWord {
				unit += textutil.VisualWidth(toks[j].text)
				j++
			}
			if col > 0 && col+unit > width && unit <= width {
				newline(true)
			}
			for k := i; k < j; k++ {
				for _, c := range toks[k].text {
					w := textutil.RuneWidth(c)
					if col > 0 && col+w > width {
						newline(true)
					}
					place(string(c), toks[k].span)
					col += w
				}
			}
			i = j
		}
	}
	lines = append(lines, trimTrailingSpace(cur))
	return lines
}

func trimTrailingSpace(line []piece) []piece {
	for len(line) > 0 {
		last := &line[len(line)-1]
		trimmed := strings.TrimRight(last.text, " ")
		if trimmed != "" {
			last.text = trimmed
			return line
		}
		line = line[:len(line)-1]
	}
	return line
}
