package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"unsafe"

	"go.uber.org/zap"

	"github.com/osmods/systab"
	"github.com/osmods/systab/demo"
)

func main() {
	debug := flag.Bool("debug", false, "log registrations and dispatches")
	flag.Parse()
	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		systab.SetLogger(logger)
	}

	if err := systab.RunConstructors(); err != nil {
		fmt.Fprintln(os.Stderr, "boot failed:", err)
		os.Exit(1)
	}

	fmt.Printf("add(2, 4) = %d\n", systab.Call(demo.SysAdd, 2, 4))
	fmt.Printf("getpid() = %d\n", systab.Call(demo.SysGetpid))
	fmt.Printf("fail() = %d\n", systab.Call(demo.SysFail))
	fmt.Printf("nosuch() = %d\n", systab.Call(9999))

	msg := []byte("hello from the dispatch table\n")
	addr := uint64(uintptr(unsafe.Pointer(&msg[0])))
	args := []uint64{1, addr, uint64(len(msg))}
	sys, ok := systab.LookupName("write")
	if !ok {
		fmt.Fprintln(os.Stderr, "write is not registered")
		os.Exit(1)
	}
	ret := sys.Call(args)
	fmt.Printf("%s%s\n", sys.Trace(args), sys.TraceRet(args, ret))
	runtime.KeepAlive(msg)
}
