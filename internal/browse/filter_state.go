// Package browse turns browse/search filter selections into the boolean filter
// expression understood by the product search index.
package browse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"resale/internal/domain"
)

// Kind is the shape of a filter value.
type Kind int

const (
	KindString Kind = iota
	KindList
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindBool:
		return "bool"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a single filter value: a scalar string, an ordered list of strings or a flag.
type Value struct {
	kind Kind
	str  string
	list []string
	flag bool
}

func String(s string) Value { return Value{kind: KindString, str: s} }

func List(vs ...string) Value {
	return Value{kind: KindList, list: slices.Clone(vs)}
}

func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) Str() string { return v.str }

// Items returns a copy of the list elements.
func (v Value) Items() []string { return slices.Clone(v.list) }

func (v Value) Flag() bool { return v.flag }

// IsEmpty reports whether the value means "no filter": "", [] or false.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindList:
		return len(v.list) == 0
	case KindBool:
		return !v.flag
	default:
		return v.str == ""
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	case KindBool:
		return json.Marshal(v.flag)
	default:
		return json.Marshal(v.str)
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = String(s)
	case len(data) > 0 && data[0] == '[':
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("filter list must hold strings: %w", err)
		}
		*v = List(list...)
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		*v = Bool(data[0] == 't')
	default:
		return fmt.Errorf("unsupported filter value %s", data)
	}
	return nil
}

// FilterState is an insertion-ordered mapping of filter key to value. The order is
// kept all the way into the built filter string.
type FilterState struct {
	keys   []string
	values map[string]Value
}

// NewFilterState returns an empty state.
func NewFilterState() FilterState {
	return FilterState{values: map[string]Value{}}
}

// Set inserts key or replaces its value. A replacement must keep the existing shape.
func (f *FilterState) Set(key string, v Value) error {
	if f.values == nil {
		f.values = map[string]Value{}
	}
	if old, ok := f.values[key]; ok {
		if old.kind != v.kind {
			return domain.ValidationError{
				Field: key,
				Msg:   fmt.Sprintf("expected %s value, got %s", old.kind, v.kind),
			}
		}
		f.values[key] = v
		return nil
	}
	f.keys = append(f.keys, key)
	f.values[key] = v
	return nil
}

func (f FilterState) Get(key string) (Value, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f FilterState) Keys() []string { return slices.Clone(f.keys) }

func (f FilterState) Len() int { return len(f.keys) }

// Clone returns a deep copy.
func (f FilterState) Clone() FilterState {
	out := FilterState{
		keys:   slices.Clone(f.keys),
		values: make(map[string]Value, len(f.values)),
	}
	for k, v := range f.values {
		v.list = slices.Clone(v.list)
		out.values[k] = v
	}
	return out
}

// Merge applies every entry of other on top of a copy of f, keeping f's key order
// for existing keys.
func (f FilterState) Merge(other FilterState) (FilterState, error) {
	out := f.Clone()
	for _, k := range other.keys {
		if err := out.Set(k, other.values[k]); err != nil {
			return FilterState{}, err
		}
	}
	return out, nil
}

func (f FilterState) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range f.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object keeping the document's key order.
func (f *FilterState) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("filter state must be a JSON object")
	}

	out := NewFilterState()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("filter %q: %w", key, err)
		}
		// null means no selection for the key.
		if bytes.Equal(raw, []byte("null")) {
			continue
		}
		var v Value
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("filter %q: %w", key, err)
		}
		if err := out.Set(key, v); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*f = out
	return nil
}
