package grove

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Char is a single-character field type. Go's rune is an alias of int32,
// so int32 fields coerce as integers; declare a field as Char to receive
// the first character of a literal instead.
type Char rune

// String returns the character as a one-rune string.
func (c Char) String() string { return string(rune(c)) }

var charType = reflect.TypeOf(Char(0))

// Coerce converts literal to a value of type t using the fixed literal
// table: signed integers, floats, booleans, [Char] and strings, plus
// pointers to any of them. Named types coerce by their underlying kind.
// Any other type fails with [ErrUnsupportedLiteralType].
//
// Errors are [*CoercionError] values.
func Coerce(literal string, t reflect.Type, opts ...Option) (reflect.Value, error) {
	o := newOptions(opts)
	return coerce(literal, t, o.lenientBooleans)
}

func coerce(literal string, t reflect.Type, lenientBooleans bool) (reflect.Value, error) {
	if t.Kind() != reflect.Ptr {
		v, err := coerceValue(literal, t, lenientBooleans)
		if err != nil {
			return reflect.Value{}, &CoercionError{Type: t, Literal: literal, Err: err}
		}
		return v, nil
	}

	// A pointer to a table type is the boxed form: allocate and fill it.
	v, err := coerceValue(literal, t.Elem(), lenientBooleans)
	if err != nil {
		return reflect.Value{}, &CoercionError{Type: t, Literal: literal, Err: err}
	}
	p := reflect.New(t.Elem())
	p.Elem().Set(v)
	return p, nil
}

func coerceValue(text string, t reflect.Type, lenientBooleans bool) (reflect.Value, error) {
	v := reflect.New(t).Elem()

	if t == charType {
		if text == "" {
			return reflect.Value{}, fmt.Errorf("%w: empty character", ErrMalformedLiteral)
		}
		r, size := utf8.DecodeRuneInString(text)
		if r == utf8.RuneError && size == 1 {
			return reflect.Value{}, fmt.Errorf("%w: invalid UTF-8", ErrMalformedLiteral)
		}
		v.SetInt(int64(r))
		return v, nil
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(text, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, malformed(err)
		}
		v.SetInt(n)
	case reflect.Float32, reflect.Float64:
		if !isDecimalFloat(text) {
			return reflect.Value{}, fmt.Errorf("%w: want decimal or exponential notation", ErrMalformedLiteral)
		}
		f, err := strconv.ParseFloat(text, t.Bits())
		if err != nil {
			return reflect.Value{}, malformed(err)
		}
		v.SetFloat(f)
	case reflect.Bool:
		b, err := parseBool(text, lenientBooleans)
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetBool(b)
	case reflect.String:
		v.SetString(text)
	default:
		return reflect.Value{}, ErrUnsupportedLiteralType
	}
	return v, nil
}

// isDecimalFloat rejects the Go-only float syntax ParseFloat accepts:
// underscore separators and hexadecimal mantissas.
func isDecimalFloat(text string) bool {
	if strings.Contains(text, "_") {
		return false
	}
	digits := strings.TrimLeft(text, "+-")
	return !strings.HasPrefix(digits, "0x") && !strings.HasPrefix(digits, "0X")
}

// parseBool accepts "true" and "false" in any case. In lenient mode every
// other text is false.
func parseBool(text string, lenient bool) (bool, error) {
	switch {
	case strings.EqualFold(text, "true"):
		return true, nil
	case strings.EqualFold(text, "false"), lenient:
		return false, nil
	}
	return false, fmt.Errorf("%w: want true or false", ErrMalformedLiteral)
}

func malformed(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
	}
	return fmt.Errorf("%w: %v", ErrMalformedLiteral, err)
}
