package systab

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errno is a numeric failure code carried by handlers through the error
// return convention. Codes are positive; canonicalization negates them.
type Errno int64

const (
	EPERM  Errno = 1
	ENOENT Errno = 2
	EIO    Errno = 5
	EBADF  Errno = 9
	EAGAIN Errno = 11
	ENOMEM Errno = 12
	EACCES Errno = 13
	EFAULT Errno = 14
	EINVAL Errno = 22
	ENOSYS Errno = 38
)

var errnoNames = map[Errno]string{
	EPERM:  "EPERM",
	ENOENT: "ENOENT",
	EIO:    "EIO",
	EBADF:  "EBADF",
	EAGAIN: "EAGAIN",
	ENOMEM: "ENOMEM",
	EACCES: "EACCES",
	EFAULT: "EFAULT",
	EINVAL: "EINVAL",
	ENOSYS: "ENOSYS",
}

func (e Errno) Error() string {
	if name, ok := errnoNames[e]; ok {
		return name
	}
	return fmt.Sprintf("errno %d", int64(e))
}

// Canon makes Errno usable as a direct return type as well as an error.
func (e Errno) Canon() int64 {
	if e < 0 {
		return int64(e)
	}
	return -int64(e)
}

var DupName = errors.New("syscall name is already registered")
