// Package optional provides explicit present/absent values and
// keep/set/clear patches for partial updates.
//
// Value[T] replaces nullable pointers on record fields: it is either present
// (Some) or absent (None), and marshals to JSON as the bare value or null.
// Together with the `omitzero` struct tag an absent Value is left out of the
// encoded object entirely.
//
// Patch[T] describes what a partial update does to one field. Keep leaves the
// field untouched, Set replaces it, Clear makes it absent. Keeping "absent
// from the update" distinct from "cleared by the update" is the point of the
// type; a zero Patch is Keep.
package optional

import (
	"bytes"
	"encoding/json"
)

// Value is an optional T.
type Value[T any] struct {
	v  T
	ok bool
}

// Some returns a present value.
func Some[T any](v T) Value[T] {
	return Value[T]{v: v, ok: true}
}

// None returns an absent value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the wrapped value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.v, o.ok
}

// OrElse returns the wrapped value, or def when absent.
func (o Value[T]) OrElse(def T) T {
	if !o.ok {
		return def
	}
	return o.v
}

// IsPresent reports whether a value is set.
func (o Value[T]) IsPresent() bool {
	return o.ok
}

// IsZero reports absence. encoding/json consults it for `omitzero`.
func (o Value[T]) IsZero() bool {
	return !o.ok
}

// MarshalJSON encodes an absent value as null.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.v)
}

// UnmarshalJSON decodes null as absent.
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// Op is the action a Patch performs.
type Op uint8

const (
	OpKeep Op = iota
	OpSet
	OpClear
)

func (op Op) String() string {
	switch op {
	case OpSet:
		return "set"
	case OpClear:
		return "clear"
	default:
		return "keep"
	}
}

// Patch is a single-field partial update.
type Patch[T any] struct {
	op Op
	v  T
}

// Keep leaves the field as is.
func Keep[T any]() Patch[T] {
	return Patch[T]{}
}

// Set replaces the field with v.
func Set[T any](v T) Patch[T] {
	return Patch[T]{op: OpSet, v: v}
}

// Clear makes the field absent.
func Clear[T any]() Patch[T] {
	return Patch[T]{op: OpClear}
}

// Op returns the patch action.
func (p Patch[T]) Op() Op {
	return p.op
}

// Value returns the replacement value for a Set patch.
func (p Patch[T]) Value() (T, bool) {
	return p.v, p.op == OpSet
}

// Apply returns cur with the patch applied.
func (p Patch[T]) Apply(cur Value[T]) Value[T] {
	switch p.op {
	case OpSet:
		return Some(p.v)
	case OpClear:
		return None[T]()
	default:
		return cur
	}
}
