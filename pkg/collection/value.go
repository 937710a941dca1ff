// Package collection models Postman collection documents as an order-preserving
// tree of values, so a collection can be loaded, extended and saved without
// reordering keys or rewriting number literals.
package collection

import "encoding/json"

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Member is a single key/value pair of an object. Objects keep their members in
// document order.
type Member struct {
	Key   string
	Value Value
}

// Value is a JSON value: a mapping, an ordered sequence, a string, a number,
// a boolean or null. The zero Value is null.
type Value struct {
	kind    Kind
	boolean bool
	number  json.Number
	str     string
	elems   []Value
	members []Member
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Number wraps a number literal. The literal is written back exactly as given.
func Number(n json.Number) Value { return Value{kind: KindNumber, number: n} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array builds an ordered sequence.
func Array(elems ...Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: KindArray, elems: elems}
}

// Object builds a mapping with the members in the given order.
func Object(members ...Member) Value {
	if members == nil {
		members = []Member{}
	}
	return Value{kind: KindObject, members: members}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean and whether v is a boolean.
func (v Value) AsBool() (bool, bool) { return v.boolean, v.kind == KindBool }

// AsNumber returns the number literal and whether v is a number.
func (v Value) AsNumber() (json.Number, bool) { return v.number, v.kind == KindNumber }

// AsString returns the string and whether v is a string.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// Elems returns the elements of an array, or nil for any other kind.
func (v Value) Elems() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.elems
}

// Members returns the members of an object, or nil for any other kind.
func (v Value) Members() []Member {
	if v.kind != KindObject {
		return nil
	}
	return v.members
}

// Len returns the number of elements or members, and 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.elems)
	case KindObject:
		return len(v.members)
	}
	return 0
}

// Get returns the value of the first member named key.
func (v Value) Get(key string) (Value, bool) {
	if i := v.index(key); i >= 0 {
		return v.members[i].Value, true
	}
	return Value{}, false
}

// Name returns the "name" member when v is an object with a string name.
func (v Value) Name() (string, bool) {
	name, ok := v.Get("name")
	if !ok {
		return "", false
	}
	return name.AsString()
}

// Set replaces the first member named key, keeping its position, or appends a
// new member when the key is absent. It panics if v is not an object.
func (v *Value) Set(key string, val Value) {
	if v.kind != KindObject {
		panic("collection: Set on " + v.kind.String())
	}
	if i := v.index(key); i >= 0 {
		v.members[i].Value = val
		return
	}
	v.members = append(v.members, Member{Key: key, Value: val})
}

// Append adds elements to the end of an array. It panics if v is not an array.
func (v *Value) Append(elems ...Value) {
	if v.kind != KindArray {
		panic("collection: Append on " + v.kind.String())
	}
	v.elems = append(v.elems, elems...)
}

func (v Value) index(key string) int {
	if v.kind != KindObject {
		return -1
	}
	for i, m := range v.members {
		if m.Key == key {
			return i
		}
	}
	return -1
}

// Equal reports whether v and other are the same tree. Member order matters and
// numbers compare by literal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolean == other.boolean
	case KindNumber:
		return v.number == other.number
	case KindString:
		return v.str == other.str
	case KindArray:
		if len(v.elems) != len(other.elems) {
			return false
		}
		for i := range v.elems {
			if !v.elems[i].Equal(other.elems[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.members) != len(other.members) {
			return false
		}
		for i := range v.members {
			if v.members[i].Key != other.members[i].Key || !v.members[i].Value.Equal(other.members[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// Clone returns a deep copy of v, so appending a shared candidate to several
// documents never aliases their slices.
func (v Value) Clone() Value {
	switch v.kind {
	case KindArray:
		elems := make([]Value, len(v.elems))
		for i, e := range v.elems {
			elems[i] = e.Clone()
		}
		return Value{kind: KindArray, elems: elems}
	case KindObject:
		members := make([]Member, len(v.members))
		for i, m := range v.members {
			members[i] = Member{Key: m.Key, Value: m.Value.Clone()}
		}
		return Value{kind: KindObject, members: members}
	}
	return v
}
