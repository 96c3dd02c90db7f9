package parser

import (
	"strconv"
	"strings"

	"github.com/leengari/listdiff/internal/column"
)

// Delimiter separates the left and right token on every line
const Delimiter = "   "

// MalformedPolicy decides what happens to a line with fewer than two fields
type MalformedPolicy string

const (
	MalformedAbort MalformedPolicy = "abort"
	MalformedSkip  MalformedPolicy = "skip"
)

// Options controls how lenient the parser is
type Options struct {
	Malformed MalformedPolicy
	// Strict rejects tokens that are not unsigned decimal integers instead of reading them as 0
	Strict bool
}

// Stats describes what the parser saw while reading the input
type Stats struct {
	Lines     int // lines read, including blank and skipped ones
	Rows      int // rows appended to the pair
	Blank     int // empty lines ignored
	Skipped   int // malformed lines skipped
	Defaulted int // tokens that failed to parse and were read as 0
}

// Result is the parsed pair of columns together with the parse statistics
type Result struct {
	Pair  *column.Pair
	Stats Stats
}

// Parser turns input text into a pair of columns, one line at a time
type Parser struct {
	lines  []string
	opts   Options
	curPos int
	stats  Stats
}

// New creates a parser over text; an empty Malformed policy means MalformedAbort
func New(text string, opts Options) *Parser {
	if opts.Malformed == "" {
		opts.Malformed = MalformedAbort
	}
	return &Parser{lines: splitLines(text), opts: opts}
}

// Parse is a shortcut for New(text, opts).Parse()
func Parse(text string, opts Options) (*Result, error) {
	return New(text, opts).Parse()
}

// Parse reads every line into the left and right column, in input order
func (p *Parser) Parse() (*Result, error) {
	pair := column.NewPair(len(p.lines))

	for p.curPos < len(p.lines) {
		lineNo := p.curPos + 1
		line := p.lines[p.curPos]
		p.curPos++
		p.stats.Lines++

		if line == "" {
			p.stats.Blank++
			continue
		}

		fields := strings.Split(line, Delimiter)
		if len(fields) < 2 {
			if p.opts.Malformed == MalformedSkip {
				p.stats.Skipped++
				continue
			}
			return nil, &LineError{Line: lineNo, Text: line, Reason: "expected two values separated by three spaces"}
		}

		left, err := p.parseToken(lineNo, line, column.SideLeft, fields[0])
		if err != nil {
			return nil, err
		}
		right, err := p.parseToken(lineNo, line, column.SideRight, fields[1])
		if err != nil {
			return nil, err
		}

		pair.Append(left, right)
		p.stats.Rows++
	}

	return &Result{Pair: pair, Stats: p.stats}, nil
}

func (p *Parser) parseToken(lineNo int, line string, side column.Side, token string) (uint64, error) {
	v, err := strconv.ParseUint(trimPlus(token), 10, 64)
	if err == nil {
		return v, nil
	}
	if p.opts.Strict {
		return 0, &LineError{Line: lineNo, Text: line, Side: side, Reason: "invalid number", Err: err}
	}
	p.stats.Defaulted++
	return 0, nil
}

// trimPlus drops a single leading '+' when a digit follows it, so "+5" reads as 5
// while "+" and "++5" stay invalid
func trimPlus(token string) string {
	if len(token) > 1 && token[0] == '+' && token[1] >= '0' && token[1] <= '9' {
		return token[1:]
	}
	return token
}

// splitLines breaks text on LF, dropping a trailing CR from each line and
// the empty remainder after a final terminator
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
