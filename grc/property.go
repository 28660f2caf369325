package grc

import (
	"fmt"
	"strconv"
)

// nodeScalarString renders a scalar node (string or integer) as plain text,
// for contexts like macro values that may be written as either in JSON.
func nodeScalarString(n *Node) (string, error) {
	if n == nil {
		return "", fmt.Errorf("missing value")
	}

	switch n.Kind {
	case KindString:
		return n.Str, nil
	case KindInt:
		return strconv.FormatInt(n.Int, 10), nil
	default:
		return "", fmt.Errorf("expected a string or integer")
	}
}

// MapProperty looks value up in mapping, returning
// [ErrUnsupportedGDLGControlProperty] if it isn't a recognized key.
func MapProperty(value string, mapping map[string]string) (string, error) {
	mapped, ok := mapping[value]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedGDLGControlProperty, value)
	}

	return mapped, nil
}

// ExtractString resolves a localizable string value: a {str, dictId,
// localized} object (translation-ready form, all three keys consumed), a
// {#value: ...} object without #condition (recursed into), a bare string,
// or nil (=> "").
func ExtractString(n *Node) (string, error) {
	if n.IsNull() {
		return "", nil
	}

	if n.Kind == KindString {
		return n.Str, nil
	}

	if n.IsObject() {
		if n.Has("str") {
			rec := NewRecord(n)

			s, err := rec.RequireString("str")
			if err != nil {
				return "", err
			}

			rec.Pop("dictId")
			rec.Pop("localized")

			if err := rec.Done(); err != nil {
				return "", err
			}

			return s, nil
		}

		if n.Has("#value") && !n.Has("#condition") {
			rec := NewRecord(n)

			v, _ := rec.Pop("#value")

			s, err := ExtractString(v)
			if err != nil {
				return "", err
			}

			if err := rec.Done(); err != nil {
				return "", err
			}

			return s, nil
		}
	}

	return "", fmt.Errorf("%w: expected a localizable string value", ErrUnhandledJSONProperty)
}

// ConvertToEscapedString resolves n via [ExtractString] and escapes it via
// [EscapeString].
func ConvertToEscapedString(n *Node) (string, error) {
	s, err := ExtractString(n)
	if err != nil {
		return "", err
	}

	return EscapeString(s), nil
}

// popEscapedStringDefault pops key via rec and converts it with
// [ConvertToEscapedString], returning def if key is absent.
func popEscapedStringDefault(rec *Record, key, def string) (string, error) {
	v, ok := rec.Pop(key)
	if !ok {
		return def, nil
	}

	return ConvertToEscapedString(v)
}

// requireEscapedString is like popEscapedStringDefault but errors if key
// is absent.
func requireEscapedString(rec *Record, key string) (string, error) {
	v, ok := rec.Pop(key)
	if !ok {
		return "", fmt.Errorf("%w: missing required field %q", ErrUnhandledJSONProperty, key)
	}

	return ConvertToEscapedString(v)
}
