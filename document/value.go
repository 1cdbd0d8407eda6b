package document

import "encoding/json"

// Kind identifies which JSON shape a Value holds.
type Kind int

const (
	// KindNull is the JSON null value.
	KindNull Kind = iota
	// KindBool is a JSON boolean.
	KindBool
	// KindNumber is a JSON number, kept in its literal form.
	KindNumber
	// KindString is a JSON string.
	KindString
	// KindArray is a JSON array.
	KindArray
	// KindObject is a JSON object with ordered members.
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
	default:
		return "unknown"
	}
}

// Member is one key/value pair of an object, in source position.
type Member struct {
	Key   string
	Value *Value
}

// Value is a single JSON value. The zero Value is null; use the constructors
// for everything else. Reads are safe on any kind; the object and array
// mutators panic when called on the wrong kind, since that is always a
// programming error.
type Value struct {
	kind    Kind
	boolean bool
	num     json.Number
	str     string
	items   []*Value
	members []Member
	index   map[string]int
}

// Null returns the JSON null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// NewBool returns a boolean value.
func NewBool(b bool) *Value {
	return &Value{kind: KindBool, boolean: b}
}

// NewNumber returns a number value holding the given literal.
func NewNumber(n json.Number) *Value {
	return &Value{kind: KindNumber, num: n}
}

// NewString returns a string value.
func NewString(s string) *Value {
	return &Value{kind: KindString, str: s}
}

// NewArray returns an array value holding the given items.
func NewArray(items ...*Value) *Value {
	return &Value{kind: KindArray, items: items}
}

// NewObject returns an empty object value.
func NewObject() *Value {
	return &Value{kind: KindObject, index: make(map[string]int)}
}

// Kind returns the JSON shape of the value. A nil Value is null.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsObject reports whether the value is a JSON object.
func (v *Value) IsObject() bool {
	return v.Kind() == KindObject
}

// BoolValue returns the boolean content; ok is false for other kinds.
func (v *Value) BoolValue() (value, ok bool) {
	if v == nil || v.kind != KindBool {
		return false, false
	}
	return v.boolean, true
}

// NumberValue returns the number literal; ok is false for other kinds.
func (v *Value) NumberValue() (json.Number, bool) {
	if v == nil || v.kind != KindNumber {
		return "", false
	}
	return v.num, true
}

// StringValue returns the string content; ok is false for other kinds.
func (v *Value) StringValue() (string, bool) {
	if v == nil || v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Items returns the array's items, nil for other kinds. The returned slice
// is the value's own backing storage and must not be modified.
func (v *Value) Items() []*Value {
	if v == nil || v.kind != KindArray {
		return nil
	}
	return v.items
}

// Append adds items to the end of an array.
func (v *Value) Append(items ...*Value) {
	if v == nil || v.kind != KindArray {
		panic("document: Append called on non-array value")
	}
	v.items = append(v.items, items...)
}

// Len returns the member count of an object or the item count of an array,
// and 0 for every other kind.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindObject:
		return len(v.members)
	case KindArray:
		return len(v.items)
	default:
		return 0
	}
}

// Get returns the member value for key; ok is false when the key is absent
// or the value is not an object.
func (v *Value) Get(key string) (*Value, bool) {
	if v == nil || v.kind != KindObject {
		return nil, false
	}
	i, ok := v.index[key]
	if !ok {
		return nil, false
	}
	return v.members[i].Value, true
}

// Has reports whether an object has the given key.
func (v *Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Set adds or replaces an object member. A new key is appended; an existing
// key keeps its original position and has its value replaced.
func (v *Value) Set(key string, value *Value) {
	if v == nil || v.kind != KindObject {
		panic("document: Set called on non-object value")
	}
	if i, ok := v.index[key]; ok {
		v.members[i].Value = value
		return
	}
	v.index[key] = len(v.members)
	v.members = append(v.members, Member{Key: key, Value: value})
}

// Keys returns an object's keys in source order, nil for other kinds.
func (v *Value) Keys() []string {
	if v == nil || v.kind != KindObject {
		return nil
	}
	keys := make([]string, len(v.members))
	for i, m := range v.members {
		keys[i] = m.Key
	}
	return keys
}

// Members returns an object's key/value pairs in source order, nil for other
// kinds. The returned slice is the value's own backing storage and must not
// be modified.
func (v *Value) Members() []Member {
	if v == nil || v.kind != KindObject {
		return nil
	}
	return v.members
}
