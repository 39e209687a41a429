package shell

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// BlockKind identifies how a display block is drawn.
type BlockKind int

const (
	BlockText        BlockKind = iota // paragraph of spans
	BlockCode                         // command + description, two columns
	BlockAccepted                     // echo of an accepted command
	BlockRejected                     // echo of a rejected command
	BlockCommandList                  // the standing command-shortcut list
	BlockError                        // a single error line
	BlockNotice                       // status line typed out by the ui (e.g. after clear)
)

func (k BlockKind) String() string {
	switch k {
	case BlockText:
		return "Text"
	case BlockCode:
		return "Code"
	case BlockAccepted:
		return "Accepted"
	case BlockRejected:
		return "Rejected"
	case BlockCommandList:
		return "CommandList"
	case BlockError:
		return "Error"
	case BlockNotice:
		return "Notice"
	default:
		return "Unknown"
	}
}

// Span is a run of text inside a block. A span with Command set is a
// command link; one with URL set is a web link.
type Span struct {
	Text    string
	Command string
	URL     string
}

// Block is one entry of the append-only display surface.
type Block struct {
	Kind  BlockKind
	Spans []Span
	// Command is the command name for Code, Accepted and Rejected blocks.
	Command string
	// Description is the right-hand column of a Code block.
	Description string
	// Commands lists the entries of a CommandList block.
	Commands []string
}

// PlainText returns the block's text without styling or link targets.
func (b Block) PlainText() string {
	switch b.Kind {
	case BlockCode:
		return b.Command + " " + b.Description
	case BlockAccepted, BlockRejected:
		return b.Command
	case BlockCommandList:
		return commandListLabel + " " + strings.Join(b.Commands, " ")
	}
	var sb strings.Builder
	for _, s := range b.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Links returns the command names of all command links in the block.
func (b Block) Links() []string {
	switch b.Kind {
	case BlockCode:
		return []string{b.Command}
	case BlockCommandList:
		return append([]string(nil), b.Commands...)
	}
	var out []string
	for _, s := range b.Spans {
		if s.Command != "" {
			out = append(out, s.Command)
		}
	}
	return out
}

const commandListLabel = "Available commands:"

// CommandListLabel is the lead-in text of a CommandList block.
func CommandListLabel() string { return commandListLabel }

var linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]*)\)`)

// ParseSpans splits text into spans, turning [label](url) into web links and
// [label](cmd:name) into command links. An empty target leaves plain text.
func ParseSpans(text string) []Span {
	var spans []Span
	last := 0
	for _, m := range linkPattern.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			spans = append(spans, Span{Text: text[last:m[0]]})
		}
		label, target := text[m[2]:m[3]], text[m[4]:m[5]]
		switch {
		case strings.HasPrefix(target, "cmd:"):
			spans = append(spans, Span{Text: label, Command: strings.TrimPrefix(target, "cmd:")})
		case target == "":
			spans = append(spans, Span{Text: label})
		default:
			spans = append(spans, Span{Text: label, URL: target})
		}
		last = m[1]
	}
	if last < len(text) {
		spans = append(spans, Span{Text: text[last:]})
	}
	return spans
}

// MarkupRanges returns the [start, end) rune offsets of every link markup
// in text, so a reveal can show each link whole.
func MarkupRanges(text string) [][2]int {
	var out [][2]int
	for _, m := range linkPattern.FindAllStringIndex(text, -1) {
		start := utf8.RuneCountInString(text[:m[0]])
		out = append(out, [2]int{start, start + utf8.RuneCountInString(text[m[0]:m[1]])})
	}
	return out
}

// Text builds a paragraph block from link markup.
func Text(markup string) Block {
	return Block{Kind: BlockText, Spans: ParseSpans(markup)}
}

// Link builds a paragraph holding a single web link.
func Link(label, url string) Block {
	return Block{Kind: BlockText, Spans: []Span{{Text: label, URL: url}}}
}

// Code builds a two-column command + description block.
func Code(command, description string) Block {
	return Block{Kind: BlockCode, Command: command, Description: description}
}

// Accepted echoes a command that resolved.
func Accepted(command string) Block {
	return Block{Kind: BlockAccepted, Command: command}
}

// Rejected echoes a command that did not resolve.
func Rejected(command string) Block {
	return Block{Kind: BlockRejected, Command: command}
}

// Error builds a single error line.
func Error(message string) Block {
	return Block{Kind: BlockError, Spans: []Span{{Text: message}}}
}

// Notice builds a status line.
func Notice(message string) Block {
	return Block{Kind: BlockNotice, Spans: []Span{{Text: message}}}
}

// CommandList builds the standing command-shortcut list.
func CommandList(commands ...string) Block {
	return Block{Kind: BlockCommandList, Commands: append([]string(nil), commands...)}
}
