package systab

import (
	"fmt"
	"reflect"
)

// Syscall is one table entry: a registered handler plus everything the
// canonical adapter needs to invoke it.
type Syscall struct {
	Name    string
	Num     uint16
	Table   *Table
	Fn      reflect.Value
	In      []reflect.Type
	Out     []reflect.Type
	UintArr bool
}

// Arity is the number of raw argument words the adapter consumes.
func (s *Syscall) Arity() int {
	return len(s.In)
}

// Call invokes the handler with raw argument words. Will panic() if anything
// goes terribly wrong during conversion; short or malformed argument arrays
// are a caller contract violation, not a dispatch failure.
func (s *Syscall) Call(args []uint64) int64 {
	if len(args) < len(s.In) {
		panic(fmt.Sprintf("not enough arguments to syscall '%s': want %d, got %d", s.Name, len(s.In), len(args)))
	}
	extra := 0
	if s.UintArr {
		extra = 1
	}
	in := make([]reflect.Value, len(s.In)+extra)
	// special case "all raw args" escape
	if s.UintArr {
		in[0] = reflect.ValueOf(args)
	}
	// convert syscall arguments
	converted, err := s.Table.Argjoy.Convert(s.In, false, args[:len(s.In)])
	if err != nil {
		panic(fmt.Sprintf("calling %s(): %s", s.Name, err))
	}
	copy(in[extra:], converted)
	// call handler function
	out := s.Fn.Call(in)
	return canonResult(out)
}
