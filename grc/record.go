package grc

import (
	"fmt"
	"sort"
)

// Record is a consuming view over an object [Node]: a resource or control
// properties object. Every Pop* accessor removes the key as it's read, so
// that after a converter has pulled every field it expects, [Record.Done]
// reports whatever is left over -- the residual is always a caller mistake
// (an unrecognized or misspelled property) and surfaces as
// [ErrUnhandledJSONProperty].
type Record struct {
	remaining map[string]*Node
	order     []string
}

// NewRecord wraps an object node in a consuming [Record]. A nil or
// non-object node produces an empty record.
func NewRecord(n *Node) *Record {
	r := &Record{remaining: map[string]*Node{}}

	if !n.IsObject() {
		return r
	}

	for _, k := range n.Keys() {
		r.remaining[k] = n.Field(k)
		r.order = append(r.order, k)
	}

	return r
}

// Pop removes and returns key's value, and whether it was present.
func (r *Record) Pop(key string) (*Node, bool) {
	v, ok := r.remaining[key]
	if ok {
		delete(r.remaining, key)
	}

	return v, ok
}

// Peek returns key's value without consuming it.
func (r *Record) Peek(key string) *Node {
	return r.remaining[key]
}

// Has reports whether key is still present.
func (r *Record) Has(key string) bool {
	_, ok := r.remaining[key]

	return ok
}

// residualKeys returns the keys still present, in a stable (sorted) order.
func (r *Record) residualKeys() []string {
	keys := make([]string, 0, len(r.remaining))
	for k := range r.remaining {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Done reports [ErrUnhandledJSONProperty] if any keys remain unconsumed.
func (r *Record) Done() error {
	keys := r.residualKeys()
	if len(keys) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %v", ErrUnhandledJSONProperty, keys)
}

// PopCondition removes and returns the `#condition` key, if present.
func (r *Record) PopCondition() (string, bool) {
	v, ok := r.Pop("#condition")
	if !ok || v.Kind != KindString {
		return "", false
	}

	return v.Str, true
}

// PopComment removes and formats the `#comment` key, returning a
// leading-space-prefixed `/* ... */` block ready to append directly after
// another token, or "" if absent.
func (r *Record) PopComment() string {
	v, ok := r.Pop("#comment")
	if !ok || v.Kind != KindString {
		return ""
	}

	return FormatCommentLeadingSpace(FormatComment(v.Str))
}

// RequireNoCondition rejects a value that is a list, or an object that
// carries a `#condition` key of its own, for positions where conditional
// compilation isn't supported at all. Nested values are not inspected.
func RequireNoCondition(n *Node) error {
	if n.IsArray() {
		return fmt.Errorf("%w: list where object expected", ErrConditionHandlingNotImplemented)
	}

	if n.IsObject() && n.Has("#condition") {
		return fmt.Errorf("%w", ErrConditionHandlingNotImplemented)
	}

	return nil
}

// RequireNoCondition rejects a record that carries a `#condition` key, for
// resource kinds where conditional compilation isn't supported at all.
func (r *Record) RequireNoCondition() error {
	if r.Has("#condition") {
		return fmt.Errorf("%w", ErrConditionHandlingNotImplemented)
	}

	return nil
}

// PopString removes key and requires it to be a string. A missing key
// returns ("", false, nil); a present-but-wrong-kind key is an error.
func (r *Record) PopString(key string) (string, bool, error) {
	v, ok := r.Pop(key)
	if !ok {
		return "", false, nil
	}

	if v.Kind != KindString {
		return "", true, fmt.Errorf("%q: expected string", key)
	}

	return v.Str, true, nil
}

// PopStringDefault removes key, requiring a string if present, else def.
func (r *Record) PopStringDefault(key, def string) (string, error) {
	v, ok, err := r.PopString(key)
	if err != nil {
		return "", err
	}

	if !ok {
		return def, nil
	}

	return v, nil
}

// RequireString is like PopStringDefault but errors if key is absent.
func (r *Record) RequireString(key string) (string, error) {
	v, ok, err := r.PopString(key)
	if err != nil {
		return "", err
	}

	if !ok {
		return "", fmt.Errorf("%w: missing required field %q", ErrUnhandledJSONProperty, key)
	}

	return v, nil
}

// PopInt removes key and requires it to be an integer.
func (r *Record) PopInt(key string) (int64, bool, error) {
	v, ok := r.Pop(key)
	if !ok {
		return 0, false, nil
	}

	if v.Kind != KindInt {
		return 0, true, fmt.Errorf("%q: expected integer", key)
	}

	return v.Int, true, nil
}

// RequireInt is like PopInt but errors if key is absent.
func (r *Record) RequireInt(key string) (int64, error) {
	v, ok, err := r.PopInt(key)
	if err != nil {
		return 0, err
	}

	if !ok {
		return 0, fmt.Errorf("%w: missing required field %q", ErrUnhandledJSONProperty, key)
	}

	return v, nil
}

// PopList removes key and requires it to be an array, returning its items.
func (r *Record) PopList(key string) ([]*Node, bool, error) {
	v, ok := r.Pop(key)
	if !ok {
		return nil, false, nil
	}

	if v.Kind != KindArray {
		return nil, true, fmt.Errorf("%q: expected array", key)
	}

	return v.Items, true, nil
}

// RequireList is like PopList but errors if key is absent.
func (r *Record) RequireList(key string) ([]*Node, error) {
	items, ok, err := r.PopList(key)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, fmt.Errorf("%w: missing required field %q", ErrUnhandledJSONProperty, key)
	}

	return items, nil
}

// RequireRaw removes key and renders it as plain text (string or integer,
// unescaped) -- for GRC tokens and literal ids rather than string literals.
func (r *Record) RequireRaw(key string) (string, error) {
	v, ok := r.Pop(key)
	if !ok {
		return "", fmt.Errorf("%w: missing required field %q", ErrUnhandledJSONProperty, key)
	}

	return nodeScalarString(v)
}

// PopRawDefault is like RequireRaw but returns def if key is absent.
func (r *Record) PopRawDefault(key, def string) (string, error) {
	v, ok := r.Pop(key)
	if !ok {
		return def, nil
	}

	return nodeScalarString(v)
}

// PopObject removes key and requires it to be an object, wrapped in a
// [Record].
func (r *Record) PopObject(key string) (*Record, bool, error) {
	v, ok := r.Pop(key)
	if !ok {
		return nil, false, nil
	}

	if !v.IsObject() {
		return nil, true, fmt.Errorf("%q: expected object", key)
	}

	return NewRecord(v), true, nil
}

// RequireObject is like PopObject but errors if key is absent.
func (r *Record) RequireObject(key string) (*Record, error) {
	rec, ok, err := r.PopObject(key)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, fmt.Errorf("%w: missing required field %q", ErrUnhandledJSONProperty, key)
	}

	return rec, nil
}
