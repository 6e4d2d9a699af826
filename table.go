// Package systab maps an open set of handler functions onto a dispatch table
// keyed by syscall number and name. The table's adapter converts a caller's
// raw machine-word arguments into each handler's own parameter types and
// collapses every return value into one canonical signed result word.
//
// Handler packages contribute entries from init() via Export, but nothing is
// registered until the embedding runtime walks the constructor queue with
// RunConstructors. After that single walk the table never changes, so any
// number of execution contexts may dispatch concurrently without locks.
package systab

import (
	"sync/atomic"

	"github.com/lunixbochs/argjoy"
	"go.uber.org/zap"
)

type Table struct {
	Argjoy argjoy.Argjoy

	entries []Syscall
	names   map[string]int
	scans   uint64
}

func New() *Table {
	t := &Table{names: make(map[string]int)}
	t.Argjoy.Register(t.wordArgCodec)
	t.Argjoy.Register(t.intArgCodec)
	t.Argjoy.Register(t.pointerArgCodec)
	return t
}

// Len is the number of registered entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup scans the table for num in insertion order. With duplicate numbers
// registered the first match wins; keeping numbers unique is the embedder's
// job, not the table's.
func (t *Table) Lookup(num uint16) (*Syscall, bool) {
	atomic.AddUint64(&t.scans, 1)
	for i := range t.entries {
		if t.entries[i].Num == num {
			return &t.entries[i], true
		}
	}
	return nil, false
}

// LookupName finds a handler by its registered name without scanning.
func (t *Table) LookupName(name string) (*Syscall, bool) {
	i, ok := t.names[name]
	if !ok {
		return nil, false
	}
	return &t.entries[i], true
}

// Scans reports how many number lookups have walked the table. Calling a
// handler directly as a Go function never moves it.
func (t *Table) Scans() uint64 {
	return atomic.LoadUint64(&t.scans)
}

// Call dispatches by syscall number. An unknown number returns the reserved
// ENOSYS code rather than an error; dispatch reports every failure in the
// canonical result domain.
func (t *Table) Call(num uint16, args ...uint64) int64 {
	sys, ok := t.Lookup(num)
	if !ok {
		Logger().Debug("unknown syscall", zap.Uint16("num", num))
		return ENOSYS.Canon()
	}
	ret := sys.Call(args)
	if ce := Logger().Check(zap.DebugLevel, "syscall"); ce != nil {
		ce.Write(zap.String("call", sys.Trace(args)), zap.Int64("ret", ret))
	}
	return ret
}

// Ctor is one constructor queue entry. It inserts exactly one handler into a
// table when the boot walk invokes it.
type Ctor func() error

var ctors []Ctor

// AddCtor appends a constructor to the boot queue. Ordering between packages
// follows package initialization order and must not be relied on.
func AddCtor(fn Ctor) {
	ctors = append(ctors, fn)
}

// Batch appends several constructors to the boot queue at once.
func Batch(fns ...Ctor) {
	for _, fn := range fns {
		AddCtor(fn)
	}
}

// Export queues registration of fn under num and name in the Default table.
// Meant to be called from a handler package's init(); the entry does not
// exist until RunConstructors walks the queue.
func Export(num uint16, name string, fn interface{}) {
	ExportTo(Default, num, name, fn)
}

// ExportTo is Export against a specific table.
func ExportTo(t *Table, num uint16, name string, fn interface{}) {
	AddCtor(func() error {
		return t.Register(num, name, fn)
	})
}

// RunConstructors walks the boot queue in contribution order, invoking each
// constructor once, and returns the first registration error. The embedding
// runtime must call it exactly once, after all handler packages have
// initialized and before the first dispatch. There is no internal guard: a
// second walk registers every handler again.
func RunConstructors() error {
	for _, fn := range ctors {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

// Default is the process-wide table that Export and the package-level
// dispatch helpers operate on.
var Default = New()

// Call dispatches by number on the Default table.
func Call(num uint16, args ...uint64) int64 {
	return Default.Call(num, args...)
}

// Lookup finds num in the Default table.
func Lookup(num uint16) (*Syscall, bool) {
	return Default.Lookup(num)
}

// LookupName finds name in the Default table.
func LookupName(name string) (*Syscall, bool) {
	return Default.LookupName(name)
}
