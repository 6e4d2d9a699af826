// Package demo contributes a small POSIX-flavored handler set to the default
// table. Import it for the side effect and walk the queue afterwards:
//
//	import _ "github.com/osmods/systab/demo"
//	...
//	systab.RunConstructors()
package demo

import (
	"os"
	"syscall"

	"github.com/osmods/systab"
)

// Syscall numbers for the demo handler set.
const (
	SysWrite  = 4
	SysGetpid = 20
	SysAdd    = 100
	SysFail   = 101
	SysEcho   = 102
)

func write(fd systab.Fd, buf systab.Buf, size systab.Len) (uint64, error) {
	tmp := make([]byte, size)
	if err := buf.Unpack(tmp); err != nil {
		return 0, systab.EFAULT
	}
	n, err := syscall.Write(int(fd), tmp)
	if err != nil {
		return 0, systab.EIO
	}
	return uint64(n), nil
}

func getpid() uint64 {
	return uint64(os.Getpid())
}

func add(a uint64, b uint64) uint64 {
	return a + b
}

func fail() (struct{}, error) {
	return struct{}{}, systab.ENOENT
}

func echo(s string) uint64 {
	return uint64(len(s))
}

func init() {
	systab.Export(SysWrite, "write", write)
	systab.Export(SysGetpid, "getpid", getpid)
	systab.Export(SysAdd, "add", add)
	systab.Export(SysFail, "fail", fail)
	systab.Export(SysEcho, "echo", echo)
}
