package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/ordtree/btree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for printing trees.
type Config struct {
	LineWidth int            // wrap lines exceeding this number of en's
	Colors    bool           // color nodes by tree level
	Context   *uax11.Context // context for measuring widths; nil selects uax11.LatinContext
}

// Printer outputs trees to a console with a fixed width font.
//
// The empty instance is not usable; create printers with NewPrinter.
type Printer struct {
	palette []*color.Color
	ccnt    int // number of character positions already printed for line
}

// NewPrinter creates a new printer. palette holds colors to use for tree
// levels, cycling through them for deep trees. If palette is empty, a default
// palette is used.
func NewPrinter(palette ...*color.Color) *Printer {
	p := &Printer{palette: palette}
	if len(p.palette) == 0 {
		p.palette = makeDefaultPalette()
	}
	return p
}

func makeDefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgBlue, color.Bold),
		color.New(color.FgGreen),
		color.New(color.FgMagenta),
		color.New(color.FgCyan),
		color.New(color.FgRed),
	}
}

var setupGraphemes sync.Once

// Print outputs the levels of tree to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive). Config.Context will
// also be created based on heuristics from the user environment.
func Print[T any](tree *btree.Tree[T], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return NewPrinter().Fprint(os.Stdout, Levels(tree), config)
}

// Fprint outputs levels to w, one line per depth. Lines are prefixed with the
// depth; wrapped lines are indented to the first node of the line.
func (p *Printer) Fprint(w io.Writer, levels []Level, config *Config) error {
	if config == nil {
		return fmt.Errorf("console: config must not be nil")
	}
	ctx := config.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	ew := &errWriter{w: w}
	for _, level := range levels {
		prefix := fmt.Sprintf("%2d:", level.Depth)
		ew.writeString(prefix)
		p.ccnt = len(prefix)
		var c *color.Color
		if config.Colors {
			c = p.palette[level.Depth%len(p.palette)]
		}
		for _, node := range level.Nodes {
			group := "[" + strings.Join(node, " ") + "]"
			width := Width(group, ctx)
			if p.ccnt > len(prefix) && p.ccnt+1+width > config.LineWidth {
				tracer().Debugf("wrapping level %d at %d en", level.Depth, p.ccnt)
				ew.writeString("\n" + strings.Repeat(" ", len(prefix)))
				p.ccnt = len(prefix)
			}
			ew.writeString(" ")
			if c != nil {
				ew.fprint(c, group)
			} else {
				ew.writeString(group)
			}
			p.ccnt += 1 + width
		}
		ew.writeString("\n")
	}
	return ew.err
}

// Level holds the formatted elements of all nodes at a given depth, from left
// to right.
type Level struct {
	Depth int
	Nodes [][]string
}

// Levels formats the elements of tree with %v and groups its nodes by depth.
func Levels[T any](tree *btree.Tree[T]) []Level {
	var levels []Level
	for depth, elems := range tree.Levels() {
		if len(levels) == 0 || levels[len(levels)-1].Depth != depth {
			levels = append(levels, Level{Depth: depth})
		}
		node := make([]string, len(elems))
		for i, e := range elems {
			node[i] = fmt.Sprint(e)
		}
		lv := &levels[len(levels)-1]
		lv.Nodes = append(lv.Nodes, node)
	}
	return levels
}

// Width returns the number of fixed-width positions s occupies on a console.
//
// Printable ASCII always occupies a single position. Runs of other
// characters are measured as grapheme strings with uax11, respecting ctx.
func Width(s string, ctx *uax11.Context) int {
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	width, start := 0, 0
	for start < len(s) {
		end := start
		for end < len(s) && isNarrowASCII(s[end]) {
			end++
		}
		width += end - start
		start = end
		for end < len(s) && !isNarrowASCII(s[end]) {
			end++
		}
		if end > start {
			width += wideWidth(s[start:end], ctx)
		}
		start = end
	}
	return width
}

func isNarrowASCII(b byte) bool {
	return b >= 0x20 && b < 0x7f
}

func wideWidth(s string, ctx *uax11.Context) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(s)
	return uax11.StringWidth(gstr, ctx)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) writeString(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

func (ew *errWriter) fprint(c *color.Color, s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = c.Fprint(ew.w, s)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a printing Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are switched on
// for interactive terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		config.Colors = !color.NoColor
		w, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			config.LineWidth = 72
		} else {
			config.LineWidth = lineWidthFor(w)
		}
	} else {
		config.LineWidth = 72
	}
	tracer().Infof("console: setting line length to %d en", config.LineWidth)
	return config
}

func lineWidthFor(termwidth int) int {
	if termwidth > 65 {
		return termwidth - 2
	} else if termwidth > 10 {
		return termwidth
	}
	return 10
}
