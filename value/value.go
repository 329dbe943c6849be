package value

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupported is thrown if a Go value of a dynamic type outside the
// union (bool, integer, float, string, list) is handed to Of.
var ErrUnsupported = errors.New("unsupported value type")

// kind discriminates the variants of T.
type kind uint8

const (
	boolKind kind = iota + 1
	intKind
	uintKind
	floatKind
	stringKind
	listKind
)

// T is a CSS property value: a tagged union over booleans, integers,
// floats, strings and lists of T. The zero value of T is the empty
// string value.
//
// T is immutable; Append returns a new value.
type T struct {
	kind kind
	b    bool
	i    int64
	u    uint64
	f    float64
	s    string
	list []T
}

// Bool wraps a boolean value.
func Bool(b bool) T {
	return T{kind: boolKind, b: b}
}

// Int wraps a signed integer value.
func Int(i int64) T {
	return T{kind: intKind, i: i}
}

// Uint wraps an unsigned integer value.
func Uint(u uint64) T {
	return T{kind: uintKind, u: u}
}

// Float wraps a floating point value.
func Float(f float64) T {
	return T{kind: floatKind, f: f}
}

// Str wraps a string value.
func Str(s string) T {
	return T{kind: stringKind, s: s}
}

// List wraps a sequence of values. Lists display as their elements
// joined by a single space.
func List(vs ...T) T {
	l := make([]T, len(vs))
	copy(l, vs)
	return T{kind: listKind, list: l}
}

// Of converts a native Go value into a T. Accepted are bool, all
// integer and float widths, string, T itself, and slices of T.
// Anything else is refused with ErrUnsupported.
func Of(v interface{}) (T, error) {
	switch x := v.(type) {
	case T:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return Str(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Uint(uint64(x)), nil
	case uint8:
		return Uint(uint64(x)), nil
	case uint16:
		return Uint(uint64(x)), nil
	case uint32:
		return Uint(uint64(x)), nil
	case uint64:
		return Uint(x), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case []T:
		return List(x...), nil
	}
	tracer().Errorf("cannot wrap value of type %T", v)
	return T{}, fmt.Errorf("%w: %T", ErrUnsupported, v)
}

// Append appends v. If t already is a list, v becomes its last element;
// otherwise the result is a two-element list (t, v).
func (t T) Append(v T) T {
	if t.kind == listKind {
		l := make([]T, len(t.list), len(t.list)+1)
		copy(l, t.list)
		return T{kind: listKind, list: append(l, v)}
	}
	return List(t, v)
}

// IsList denotes whether t is a list of values.
func (t T) IsList() bool {
	return t.kind == listKind
}

// AsStr returns the wrapped string, if t is a string value.
// Other variants are not converted; use String() for that.
func (t T) AsStr() (string, bool) {
	if t.kind == stringKind {
		return t.s, true
	}
	return "", false
}

// AsBool returns the wrapped boolean, if t is a boolean value.
func (t T) AsBool() (bool, bool) {
	if t.kind == boolKind {
		return t.b, true
	}
	return false, false
}

// AsF64 converts t to float64, if t wraps a number.
func (t T) AsF64() (float64, bool) {
	switch t.kind {
	case intKind:
		return float64(t.i), true
	case uintKind:
		return float64(t.u), true
	case floatKind:
		return t.f, true
	}
	return 0, false
}

// Elements returns the elements of a list value, or nil if t is not
// a list.
func (t T) Elements() []T {
	if t.kind != listKind {
		return nil
	}
	l := make([]T, len(t.list))
	copy(l, t.list)
	return l
}

// String renders the value in its CSS textual form: booleans as
// true/false, numbers in their shortest decimal representation, lists
// as elements joined by a single space.
func (t T) String() string {
	switch t.kind {
	case boolKind:
		return strconv.FormatBool(t.b)
	case intKind:
		return strconv.FormatInt(t.i, 10)
	case uintKind:
		return strconv.FormatUint(t.u, 10)
	case floatKind:
		return strconv.FormatFloat(t.f, 'f', -1, 64)
	case stringKind:
		return t.s
	case listKind:
		parts := make([]string, len(t.list))
		for i, v := range t.list {
			parts[i] = v.String()
		}
		return strings.Join(parts, " ")
	}
	return ""
}
