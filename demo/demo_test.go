package demo

import (
	"os"
	"runtime"
	"testing"
	"unsafe"

	"github.com/osmods/systab"
)

func TestMain(m *testing.M) {
	// the boot walk happens exactly once, before any dispatch
	if err := systab.RunConstructors(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestAdd(t *testing.T) {
	if ret := systab.Call(SysAdd, 2, 4); ret != 6 {
		t.Fatalf("expected 6, got %d", ret)
	}
}

func TestFail(t *testing.T) {
	if ret := systab.Call(SysFail); ret != -int64(systab.ENOENT) {
		t.Fatalf("expected %d, got %d", -int64(systab.ENOENT), ret)
	}
}

func TestUnknownNum(t *testing.T) {
	if ret := systab.Call(9999); ret != systab.ENOSYS.Canon() {
		t.Fatalf("expected ENOSYS, got %d", ret)
	}
}

func TestGetpid(t *testing.T) {
	if ret := systab.Call(SysGetpid); ret != int64(os.Getpid()) {
		t.Fatalf("expected pid %d, got %d", os.Getpid(), ret)
	}
}

func TestEcho(t *testing.T) {
	msg := append([]byte("four"), 0)
	ret := systab.Call(SysEcho, uint64(uintptr(unsafe.Pointer(&msg[0]))))
	runtime.KeepAlive(msg)
	if ret != 4 {
		t.Fatalf("expected 4, got %d", ret)
	}
}

func TestWrite(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	msg := []byte("through the table")
	ret := systab.Call(SysWrite,
		uint64(w.Fd()),
		uint64(uintptr(unsafe.Pointer(&msg[0]))),
		uint64(len(msg)))
	runtime.KeepAlive(msg)
	if ret != int64(len(msg)) {
		t.Fatalf("expected %d, got %d", len(msg), ret)
	}

	got := make([]byte, len(msg))
	if _, err := r.Read(got); err != nil {
		t.Fatal(err)
	}
	if string(got) != string(msg) {
		t.Fatalf("expected %q, got %q", msg, got)
	}
}

func TestDirectCallBypassesTable(t *testing.T) {
	before := systab.Default.Scans()
	if got := add(2, 4); got != 6 {
		t.Fatalf("expected 6, got %d", got)
	}
	if after := systab.Default.Scans(); after != before {
		t.Fatal("direct call must not touch the table")
	}
}
