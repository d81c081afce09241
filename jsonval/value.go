// File: jsonval/value.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package jsonval

// Kind discriminates the tag of a Value's underlying union.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is the recursive JSON value model: exactly one of its fields is
// meaningful, selected by Kind.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  []*Value
	obj  []member // insertion-ordered, matching spec.md's document-order
}

type member struct {
	key string
	val *Value
}

func Null() *Value                { return &Value{kind: KindNull} }
func Bool(b bool) *Value          { return &Value{kind: KindBool, b: b} }
func Number(n float64) *Value     { return &Value{kind: KindNumber, n: n} }
func String(s string) *Value      { return &Value{kind: KindString, s: s} }
func Array(items ...*Value) *Value {
	return &Value{kind: KindArray, arr: items}
}
func Object() *Value { return &Value{kind: KindObject} }

// Kind returns the value's tag.
func (v *Value) Kind() Kind { return v.kind }

func (v *Value) Bool() bool      { return v.b }
func (v *Value) Number() float64 { return v.n }
func (v *Value) String() string  { return v.s }
func (v *Value) Array() []*Value { return v.arr }

// Set inserts or overwrites key in an object value. Panics if v is not
// an object — mirroring the narrow, non-defensive contract of the
// teacher's own wire-format types.
func (v *Value) Set(key string, val *Value) *Value {
	if v.kind != KindObject {
		panic("jsonval: Set called on a non-object Value")
	}
	for i := range v.obj {
		if v.obj[i].key == key {
			v.obj[i].val = val
			return v
		}
	}
	v.obj = append(v.obj, member{key: key, val: val})
	return v
}

// Get looks up key in an object value; ok is false if v is not an
// object or the key is absent.
func (v *Value) Get(key string) (val *Value, ok bool) {
	if v.kind != KindObject {
		return nil, false
	}
	for _, m := range v.obj {
		if m.key == key {
			return m.val, true
		}
	}
	return nil, false
}

// Keys returns an object's member keys in insertion order.
func (v *Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, len(v.obj))
	for i, m := range v.obj {
		keys[i] = m.key
	}
	return keys
}

// Append appends an item to an array value. Panics if v is not an array.
func (v *Value) Append(item *Value) *Value {
	if v.kind != KindArray {
		panic("jsonval: Append called on a non-array Value")
	}
	v.arr = append(v.arr, item)
	return v
}

// Equal does a structural deep-equality comparison, used by round-trip
// tests (S6) instead of comparing serialized bytes, which is brittle
// against key-order/number-formatting differences.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.n == b.n
	case KindString:
		return a.s == b.s
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for _, m := range a.obj {
			bv, ok := b.Get(m.key)
			if !ok || !Equal(m.val, bv) {
				return false
			}
		}
		return true
	}
	return false
}
