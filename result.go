package systab

import (
	"reflect"

	"github.com/pkg/errors"
)

// Canonical is implemented by handler return types that define their own
// conversion into the canonical signed result domain.
type Canonical interface {
	Canon() int64
}

var (
	canonicalType = reflect.TypeOf((*Canonical)(nil)).Elem()
	errorType     = reflect.TypeOf((*error)(nil)).Elem()
)

// canonResult collapses a handler's return values into one signed word.
// A trailing non-nil error wins and becomes a negative code; otherwise the
// leading value (if any) is converted.
func canonResult(out []reflect.Value) int64 {
	if len(out) > 0 {
		last := out[len(out)-1]
		if last.Kind() == reflect.Interface && last.Type().Implements(errorType) {
			if !last.IsNil() {
				return canonFailure(last.Interface().(error))
			}
			out = out[:len(out)-1]
		}
	}
	if len(out) == 0 {
		return 0
	}
	return canonValue(out[0])
}

func canonValue(v reflect.Value) int64 {
	// a nil interface carries no payload
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return 0
		}
		v = v.Elem()
	}
	if v.Type().Implements(canonicalType) {
		return v.Interface().(Canonical).Canon()
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		// reinterpreted, so a large unsigned payload comes back negative
		return int64(v.Uint())
	case reflect.Ptr, reflect.UnsafePointer:
		return int64(v.Pointer())
	}
	// unit struct
	return 0
}

func canonFailure(err error) int64 {
	if e, ok := errors.Cause(err).(Errno); ok {
		return e.Canon()
	}
	return EIO.Canon()
}

// canonOK reports whether a declared return type can enter the canonical
// domain.
func canonOK(typ reflect.Type) bool {
	if typ.Implements(canonicalType) {
		return true
	}
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Ptr, reflect.UnsafePointer:
		return true
	case reflect.Struct:
		return typ.NumField() == 0
	}
	return false
}
