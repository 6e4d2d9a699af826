package systab

import (
	"reflect"
	"unsafe"

	"github.com/lunixbochs/argjoy"
)

func (t *Table) wordArgCodec(arg interface{}, vals []interface{}) error {
	if reg, ok := vals[0].(uint64); ok {
		switch v := arg.(type) {
		case *Buf:
			*v = NewBuf(reg)
		case *Obuf:
			*v = Obuf{NewBuf(reg)}
		case *Len:
			*v = Len(reg)
		case *Off:
			*v = Off(reg)
		case *Fd:
			*v = Fd(reg)
		case *Ptr:
			*v = Ptr(reg)
		case *uintptr:
			*v = uintptr(reg)
		case *string:
			*v = readStrAt(reg)
		default:
			return argjoy.NoMatch
		}
		return nil
	}
	return argjoy.NoMatch
}

// intArgCodec converts the raw word to any integer parameter kind with Go
// conversion semantics: low-bits truncation for narrower types, two's
// complement reinterpretation for signed ones.
func (t *Table) intArgCodec(arg interface{}, vals []interface{}) error {
	reg, ok := vals[0].(uint64)
	if !ok {
		return argjoy.NoMatch
	}
	v := reflect.ValueOf(arg).Elem()
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(int64(reg))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v.SetUint(reg)
	default:
		return argjoy.NoMatch
	}
	return nil
}

// pointerArgCodec rebuilds pointer parameters from raw address words.
// The pointer value is not validated; that is the handler's problem.
func (t *Table) pointerArgCodec(arg interface{}, vals []interface{}) error {
	reg, ok := vals[0].(uint64)
	if !ok {
		return argjoy.NoMatch
	}
	v := reflect.ValueOf(arg).Elem()
	switch v.Kind() {
	case reflect.Ptr:
		p := reflect.NewAt(v.Type().Elem(), unsafe.Pointer(uintptr(reg)))
		v.Set(p.Convert(v.Type()))
	case reflect.UnsafePointer:
		v.SetPointer(unsafe.Pointer(uintptr(reg)))
	default:
		return argjoy.NoMatch
	}
	return nil
}
