package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Parser is a fluent pipeline over a working Value that starts as the raw
// puzzle text. Transform methods reshape or map the value and return the
// parser for chaining; terminators return plain data.
//
// Errors are sticky: the first failing transform freezes the pipeline and
// every later call is a no-op, so a chain can be written without
// intermediate error checks and the error collected once at the end.
type Parser struct {
	value Value
	err   error
}

// New wraps raw puzzle text in a parser.
func New(raw string) *Parser {
	return &Parser{value: Str(raw)}
}

// Err returns the pipeline's sticky error, if any transform has failed.
func (p *Parser) Err() error { return p.err }

// Lines splits the text into a list of non-empty lines, trimming outer
// whitespace first. It is a no-op if the value is no longer a string.
func (p *Parser) Lines() *Parser {
	if p.err != nil || p.value.kind != KindString {
		return p
	}
	var items []Value
	for _, line := range strings.Split(strings.TrimSpace(p.value.str), "\n") {
		if line != "" {
			items = append(items, Str(line))
		}
	}
	p.value = List(items...)
	return p
}

// Blocks splits the text into blank-line-delimited blocks, trimming each
// block and dropping empty ones. It is a no-op if the value is no longer a
// string.
func (p *Parser) Blocks() *Parser {
	if p.err != nil || p.value.kind != KindString {
		return p
	}
	var items []Value
	for _, block := range strings.Split(strings.TrimSpace(p.value.str), "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			items = append(items, Str(block))
		}
	}
	p.value = List(items...)
	return p
}

// Split splits every leaf string on sep, replacing each leaf with a list of
// its parts. A non-string leaf is an error.
func (p *Parser) Split(sep string) *Parser {
	return p.leafTransform("split", func(leaf Value) (Value, error) {
		if leaf.kind != KindString {
			return Value{}, fmt.Errorf("cannot split %s leaf", leaf.kind)
		}
		parts := strings.Split(leaf.str, sep)
		items := make([]Value, len(parts))
		for i, part := range parts {
			items[i] = Str(part)
		}
		return List(items...), nil
	})
}

// Strip trims whitespace from every leaf string. Non-string leaves pass
// through unchanged.
func (p *Parser) Strip() *Parser {
	return p.leafTransform("strip", func(leaf Value) (Value, error) {
		if leaf.kind == KindString {
			return Str(strings.TrimSpace(leaf.str)), nil
		}
		return leaf, nil
	})
}

// Ints converts every leaf to an integer. A leaf that is not a valid
// integer literal fails the pipeline; silently skipping it could corrupt
// puzzle data without the caller noticing.
func (p *Parser) Ints() *Parser {
	return p.leafTransform("ints", func(leaf Value) (Value, error) {
		switch leaf.kind {
		case KindInt:
			return leaf, nil
		case KindFloat:
			return Int(int(leaf.f)), nil
		default:
			n, err := strconv.Atoi(strings.TrimSpace(leaf.str))
			if err != nil {
				return Value{}, fmt.Errorf("invalid integer %q", leaf.str)
			}
			return Int(n), nil
		}
	})
}

// Floats converts every leaf to a float. A leaf that is not a valid number
// fails the pipeline.
func (p *Parser) Floats() *Parser {
	return p.leafTransform("floats", func(leaf Value) (Value, error) {
		switch leaf.kind {
		case KindInt:
			return Float(float64(leaf.i)), nil
		case KindFloat:
			return leaf, nil
		default:
			f, err := strconv.ParseFloat(strings.TrimSpace(leaf.str), 64)
			if err != nil {
				return Value{}, fmt.Errorf("invalid number %q", leaf.str)
			}
			return Float(f), nil
		}
	})
}

// Extract replaces every leaf string with the list of capture-group matches
// of pattern within it. With a single capture group each match is a plain
// string; with several it is a tuple of the groups; with none it is the
// whole match text. A leaf with zero matches becomes an empty list.
func (p *Parser) Extract(pattern string) *Parser {
	re, err := p.compile("extract", pattern)
	if err != nil {
		return p
	}
	groups := re.NumSubexp()
	return p.leafTransform("extract", func(leaf Value) (Value, error) {
		if leaf.kind != KindString {
			return Value{}, fmt.Errorf("cannot match %s leaf", leaf.kind)
		}
		matches := re.FindAllStringSubmatch(leaf.str, -1)
		items := make([]Value, 0, len(matches))
		for _, m := range matches {
			switch groups {
			case 0:
				items = append(items, Str(m[0]))
			case 1:
				items = append(items, Str(m[1]))
			default:
				tuple := make([]Value, groups)
				for i := 0; i < groups; i++ {
					tuple[i] = Str(m[i+1])
				}
				items = append(items, Tuple(tuple...))
			}
		}
		return List(items...), nil
	})
}

// FindAll replaces every leaf string with the list of non-overlapping
// matches of pattern, without capture-group restructuring. A leaf with zero
// matches becomes an empty list.
func (p *Parser) FindAll(pattern string) *Parser {
	re, err := p.compile("findall", pattern)
	if err != nil {
		return p
	}
	return p.leafTransform("findall", func(leaf Value) (Value, error) {
		if leaf.kind != KindString {
			return Value{}, fmt.Errorf("cannot match %s leaf", leaf.kind)
		}
		matches := re.FindAllString(leaf.str, -1)
		items := make([]Value, len(matches))
		for i, m := range matches {
			items[i] = Str(m)
		}
		return List(items...), nil
	})
}

// Apply maps fn over every leaf, recursing through nesting. Errors from fn
// fail the pipeline.
func (p *Parser) Apply(fn func(Value) (Value, error)) *Parser {
	return p.leafTransform("apply", fn)
}

// Map applies fn to each top-level item of a list, or to the value itself
// if it is not a list. Unlike Apply it does not recurse, so fn sees whole
// items (for example a block's list of numbers, ready to be summed).
func (p *Parser) Map(fn func(Value) (Value, error)) *Parser {
	if p.err != nil {
		return p
	}
	if p.value.kind != KindList {
		v, err := fn(p.value)
		if err != nil {
			p.fail("map", err)
			return p
		}
		p.value = v
		return p
	}
	out := make([]Value, len(p.value.items))
	for i, item := range p.value.items {
		v, err := fn(item)
		if err != nil {
			p.fail("map", err)
			return p
		}
		out[i] = v
	}
	p.value = List(out...)
	return p
}

// Filter keeps only the top-level list items for which keep returns true.
// It is a no-op on a non-list value.
func (p *Parser) Filter(keep func(Value) bool) *Parser {
	if p.err != nil || p.value.kind != KindList {
		return p
	}
	items := make([]Value, 0, len(p.value.items))
	for _, item := range p.value.items {
		if keep(item) {
			items = append(items, item)
		}
	}
	p.value = List(items...)
	return p
}

// Flatten splices the items of top-level containers up one level. Leaf
// items are kept as-is. It is a no-op on a non-list value.
func (p *Parser) Flatten() *Parser {
	if p.err != nil || p.value.kind != KindList {
		return p
	}
	var items []Value
	for _, item := range p.value.items {
		if item.IsLeaf() {
			items = append(items, item)
			continue
		}
		items = append(items, item.items...)
	}
	p.value = List(items...)
	return p
}

// Get terminates the pipeline, returning the current value and the sticky
// error if any transform failed.
func (p *Parser) Get() (Value, error) {
	if p.err != nil {
		return Value{}, p.err
	}
	return p.value, nil
}

// MustGet is Get for chains the caller knows cannot fail. It panics on a
// pipeline error.
func (p *Parser) MustGet() Value {
	v, err := p.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// Strings terminates the pipeline as a flat []string.
func (p *Parser) Strings() ([]string, error) {
	v, err := p.Get()
	if err != nil {
		return nil, err
	}
	return v.Strings()
}

// IntSlice terminates the pipeline as a flat []int.
func (p *Parser) IntSlice() ([]int, error) {
	v, err := p.Get()
	if err != nil {
		return nil, err
	}
	return v.Ints()
}

// Grid terminates the pipeline as a single character (or token) grid. The
// value must be a single string; use Grids after Blocks to build one grid
// per block. With an empty delimiter every character becomes a cell,
// otherwise each line is split on the delimiter first.
func (p *Parser) Grid(delimiter string) (*Grid[string], error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.value.kind != KindString {
		return nil, fmt.Errorf("parse: grid needs a string value, have %s (did you mean Grids?)", p.value.kind)
	}
	return gridFromBlock(p.value.str, delimiter)
}

// Grids terminates the pipeline as one grid per string unit: a single
// string yields a one-element slice, a list of strings (for example after
// Blocks) yields one grid per block.
func (p *Parser) Grids(delimiter string) ([]*Grid[string], error) {
	if p.err != nil {
		return nil, p.err
	}
	var blocks []string
	switch p.value.kind {
	case KindString:
		blocks = []string{p.value.str}
	case KindList:
		var err error
		blocks, err = p.value.Strings()
		if err != nil {
			return nil, fmt.Errorf("parse: grids: %w", err)
		}
	default:
		return nil, fmt.Errorf("parse: grids needs a string or list of strings, have %s", p.value.kind)
	}
	grids := make([]*Grid[string], len(blocks))
	for i, block := range blocks {
		g, err := gridFromBlock(block, delimiter)
		if err != nil {
			return nil, fmt.Errorf("parse: block %d: %w", i, err)
		}
		grids[i] = g
	}
	return grids, nil
}

// IntMatrix terminates the pipeline as a dense [][]int built via Grid.
func (p *Parser) IntMatrix(delimiter string) ([][]int, error) {
	g, err := p.Grid(delimiter)
	if err != nil {
		return nil, err
	}
	return intMatrix(g)
}

// IntMatrices terminates the pipeline as one dense [][]int per string unit,
// built via Grids.
func (p *Parser) IntMatrices(delimiter string) ([][][]int, error) {
	grids, err := p.Grids(delimiter)
	if err != nil {
		return nil, err
	}
	out := make([][][]int, len(grids))
	for i, g := range grids {
		m, err := intMatrix(g)
		if err != nil {
			return nil, fmt.Errorf("parse: grid %d: %w", i, err)
		}
		out[i] = m
	}
	return out, nil
}

func gridFromBlock(block, delimiter string) (*Grid[string], error) {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	rows := make([][]string, len(lines))
	for i, line := range lines {
		if delimiter == "" {
			cells := make([]string, 0, len(line))
			for _, r := range line {
				cells = append(cells, string(r))
			}
			rows[i] = cells
		} else {
			rows[i] = strings.Split(line, delimiter)
		}
	}
	return NewGrid(rows)
}

func intMatrix(g *Grid[string]) ([][]int, error) {
	out := make([][]int, g.Height())
	for r, row := range g.Rows() {
		out[r] = make([]int, len(row))
		for c, cell := range row {
			n, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("parse: cell (%d,%d): invalid integer %q", r, c, cell)
			}
			out[r][c] = n
		}
	}
	return out, nil
}

func (p *Parser) leafTransform(op string, fn func(Value) (Value, error)) *Parser {
	if p.err != nil {
		return p
	}
	v, err := mapLeaves(p.value, fn)
	if err != nil {
		p.fail(op, err)
		return p
	}
	p.value = v
	return p
}

func (p *Parser) compile(op, pattern string) (*regexp.Regexp, error) {
	if p.err != nil {
		return nil, p.err
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		p.fail(op, err)
		return nil, err
	}
	return re, nil
}

func (p *Parser) fail(op string, err error) {
	p.err = fmt.Errorf("parse: %s: %w", op, err)
}
