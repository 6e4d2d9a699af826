package systab

import (
	"reflect"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// MaxArgs is the raw argument slot budget, matching the conventional syscall
// register count. Handlers declaring more parameters do not register.
const MaxArgs = 6

var (
	bufType         = reflect.TypeOf(Buf{})
	obufType        = reflect.TypeOf(Obuf{})
	uint64SliceType = reflect.TypeOf([]uint64(nil))
)

// Register validates fn's signature and appends it to the table. Names are
// unique; registering a name twice fails. Numbers are not checked for
// uniqueness here, so a duplicate number is a latent bug that surfaces as
// first-match-wins at lookup time.
func (t *Table) Register(num uint16, name string, fn interface{}) error {
	val := reflect.ValueOf(fn)
	if !val.IsValid() || val.Kind() != reflect.Func {
		return errors.Errorf("syscall '%s': not a function: %T", name, fn)
	}
	return t.register(num, name, val)
}

func (t *Table) register(num uint16, name string, fn reflect.Value) error {
	typ := fn.Type()
	if typ.IsVariadic() {
		return errors.Errorf("syscall '%s': variadic handlers are not supported", name)
	}
	in := make([]reflect.Type, typ.NumIn())
	for i := range in {
		in[i] = typ.In(i)
	}
	// special case "all raw args" first parameter
	uintArr := false
	if len(in) > 0 && in[0] == uint64SliceType {
		uintArr = true
		in = in[1:]
	}
	if len(in) > MaxArgs {
		return errors.Errorf("syscall '%s': %d parameters exceeds the %d raw argument slots", name, len(in), MaxArgs)
	}
	for i, arg := range in {
		if !argOK(arg) {
			return errors.Errorf("syscall '%s': parameter %d has unsupported type %s", name, i, arg)
		}
	}
	out := make([]reflect.Type, typ.NumOut())
	for i := range out {
		out[i] = typ.Out(i)
	}
	if err := retOK(out); err != nil {
		return errors.Wrapf(err, "syscall '%s'", name)
	}
	if _, ok := t.names[name]; ok {
		return errors.Wrapf(DupName, "syscall '%s'", name)
	}
	t.entries = append(t.entries, Syscall{
		Name:    name,
		Num:     num,
		Table:   t,
		Fn:      fn,
		In:      in,
		Out:     out,
		UintArr: uintArr,
	})
	t.names[name] = len(t.entries) - 1
	Logger().Debug("registered syscall",
		zap.Uint16("num", num), zap.String("name", name), zap.Int("arity", len(in)))
	return nil
}

func argOK(typ reflect.Type) bool {
	switch typ {
	case bufType, obufType:
		return true
	}
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Ptr, reflect.UnsafePointer, reflect.String:
		return true
	}
	return false
}

func retOK(out []reflect.Type) error {
	if len(out) == 0 {
		return nil
	}
	vals := out
	if out[len(out)-1] == errorType {
		vals = out[:len(out)-1]
	}
	if len(vals) > 1 {
		return errors.New("more than one non-error return value")
	}
	if len(vals) == 1 && !canonOK(vals[0]) {
		return errors.Errorf("return type %s has no canonical conversion", vals[0])
	}
	return nil
}
