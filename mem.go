package systab

import (
	"unsafe"
)

// memWindow is a sequential io.ReadWriter over process memory starting at
// addr. Handlers run in the same address space as their callers, so a raw
// argument word is a real address; no bounds are known or checked here.
type memWindow struct {
	addr uintptr
	off  uintptr
}

func (m *memWindow) Read(p []byte) (int, error) {
	src := unsafe.Slice((*byte)(unsafe.Pointer(m.addr+m.off)), len(p))
	n := copy(p, src)
	m.off += uintptr(n)
	return n, nil
}

func (m *memWindow) Write(p []byte) (int, error) {
	dst := unsafe.Slice((*byte)(unsafe.Pointer(m.addr+m.off)), len(p))
	n := copy(dst, p)
	m.off += uintptr(n)
	return n, nil
}

// readStrAt reads a NUL-terminated string starting at addr.
func readStrAt(addr uint64) string {
	if addr == 0 {
		return ""
	}
	p := uintptr(addr)
	n := 0
	for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}
