package systab

import (
	"os"

	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"
)

type (
	Buf  struct{ Addr uint64 }
	Obuf struct{ Buf }
	Len  uint64
	Off  int64
	Fd   int32
	Ptr  uint64
)

func NewBuf(addr uint64) Buf {
	return Buf{Addr: addr}
}

func (b Buf) Pack(i interface{}) error {
	return errors.Wrap(struc.Pack(b.window(), i), "struc.Pack() failed")
}

func (b Buf) Unpack(i interface{}) error {
	return errors.Wrap(struc.Unpack(b.window(), i), "struc.Unpack() failed")
}

func (b Buf) Sizeof(i interface{}) (int, error) {
	n, err := struc.Sizeof(i)
	return n, errors.Wrap(err, "struc.Sizeof() failed")
}

func (b Buf) window() *memWindow {
	return &memWindow{addr: uintptr(b.Addr)}
}

func (f Fd) File() *os.File {
	return os.NewFile(uintptr(f), "")
}
