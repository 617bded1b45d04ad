// Package parse provides a fluent pipeline for turning raw puzzle text into
// structured data: lines, blank-line blocks, nested token lists, typed
// numbers, and 2D grids. A pipeline starts from a single string and is
// reshaped by chainable transforms; terminators return plain values.
package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the variants of a Value.
type Kind uint8

const (
	// KindString is a string leaf.
	KindString Kind = iota
	// KindInt is an integer leaf.
	KindInt
	// KindFloat is a floating-point leaf.
	KindFloat
	// KindList is an ordered sequence of values.
	KindList
	// KindTuple is an ordered, fixed-arity sequence, produced by regex
	// extraction with multiple capture groups.
	KindTuple
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindList:
		return "list"
	case KindTuple:
		return "tuple"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Value is a tagged variant: a leaf (string, int, or float) or a container
// (list or tuple) of further values. Leaf transforms recurse through
// containers and touch only leaves, so the nesting shape is preserved
// exactly.
type Value struct {
	kind  Kind
	str   string
	i     int
	f     float64
	items []Value
}

// Str returns a string leaf.
func Str(s string) Value { return Value{kind: KindString, str: s} }

// Int returns an integer leaf.
func Int(n int) Value { return Value{kind: KindInt, i: n} }

// Float returns a float leaf.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// List returns a list of the given values.
func List(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindList, items: items}
}

// Tuple returns a tuple of the given values.
func Tuple(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindTuple, items: items}
}

// Kind reports the variant of v.
func (v Value) Kind() Kind { return v.kind }

// IsLeaf reports whether v is a non-container value.
func (v Value) IsLeaf() bool { return v.kind != KindList && v.kind != KindTuple }

// Str returns the string content of a string leaf. It returns "" for any
// other variant.
func (v Value) Str() string { return v.str }

// Int returns the integer content of an int leaf, or 0 otherwise.
func (v Value) Int() int { return v.i }

// Float returns the float content of a float leaf. An int leaf is widened;
// other variants return 0.
func (v Value) Float() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

// Len returns the number of items in a container, or 0 for a leaf.
func (v Value) Len() int { return len(v.items) }

// At returns the i-th item of a container. It panics if v is a leaf or i is
// out of range, mirroring slice indexing.
func (v Value) At(i int) Value { return v.items[i] }

// Items returns the container's items. The returned slice is shared with v
// and must not be mutated.
func (v Value) Items() []Value { return v.items }

// Equal reports deep equality of two values, including kind tags. An int
// leaf and a float leaf never compare equal even when numerically identical.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	default:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	}
}

// String renders the value in a compact literal form, useful in logs and
// test failure messages.
func (v Value) String() string {
	var sb strings.Builder
	v.render(&sb)
	return sb.String()
}

func (v Value) render(sb *strings.Builder) {
	switch v.kind {
	case KindString:
		sb.WriteString(strconv.Quote(v.str))
	case KindInt:
		sb.WriteString(strconv.Itoa(v.i))
	case KindFloat:
		sb.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case KindList, KindTuple:
		open, close := "[", "]"
		if v.kind == KindTuple {
			open, close = "(", ")"
		}
		sb.WriteString(open)
		for i, item := range v.items {
			if i > 0 {
				sb.WriteString(" ")
			}
			item.render(sb)
		}
		sb.WriteString(close)
	}
}

// mapLeaves applies fn to every leaf of v, rebuilding containers with the
// same kind and arity. The first error aborts the traversal.
func mapLeaves(v Value, fn func(Value) (Value, error)) (Value, error) {
	if v.IsLeaf() {
		return fn(v)
	}
	out := make([]Value, len(v.items))
	for i, item := range v.items {
		m, err := mapLeaves(item, fn)
		if err != nil {
			return Value{}, err
		}
		out[i] = m
	}
	return Value{kind: v.kind, items: out}, nil
}

// Strings converts a flat list of string leaves to a []string. It fails if
// v is not a list or contains non-string items.
func (v Value) Strings() ([]string, error) {
	if v.kind != KindList {
		return nil, fmt.Errorf("parse: value is %s, not a list", v.kind)
	}
	out := make([]string, len(v.items))
	for i, item := range v.items {
		if item.kind != KindString {
			return nil, fmt.Errorf("parse: item %d is %s, not a string", i, item.kind)
		}
		out[i] = item.str
	}
	return out, nil
}

// Ints converts a flat list of int leaves to a []int. It fails if v is not
// a list or contains non-int items.
func (v Value) Ints() ([]int, error) {
	if v.kind != KindList {
		return nil, fmt.Errorf("parse: value is %s, not a list", v.kind)
	}
	out := make([]int, len(v.items))
	for i, item := range v.items {
		if item.kind != KindInt {
			return nil, fmt.Errorf("parse: item %d is %s, not an int", i, item.kind)
		}
		out[i] = item.i
	}
	return out, nil
}
