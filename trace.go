package systab

import (
	"fmt"
	"strings"
)

// TraceStrsize caps how much referenced memory a trace line renders per
// argument.
var TraceStrsize = 64

func repr(p []byte, strsize int) string {
	tmp := make([]string, len(p))
	for i, b := range p {
		if b >= 0x20 && b <= 0x7e {
			tmp[i] = string(b)
		} else {
			tmp[i] = fmt.Sprintf("\\x%02x", b)
		}
	}
	out := strings.Join(tmp, "")
	if strsize > 3 && len(out) > strsize {
		for i := len(tmp) - 1; len(out) > strsize-3; i-- {
			out = strings.Join(tmp[:i], "")
		}
		return "\"" + out + "\"..."
	}
	return "\"" + out + "\""
}

func (s *Syscall) traceArg(args ...interface{}) string {
	hex := func(a interface{}) string {
		tmp := fmt.Sprintf("0x%x", a)
		if strings.HasPrefix(tmp, "0x-") {
			tmp = "-0x" + tmp[3:]
		}
		return tmp
	}

	switch arg := args[0].(type) {
	case Obuf:
		return hex(arg.Addr)
	case Buf:
		if len(args) > 1 {
			if length, ok := args[1].(Len); ok {
				mem := make([]byte, length)
				if err := arg.Unpack(mem); err == nil {
					return repr(mem, TraceStrsize)
				}
			}
		}
		return hex(arg.Addr)
	case Off:
		return hex(arg)
	case Ptr:
		return hex(arg)
	case Fd:
		return fmt.Sprintf("%d", int32(arg))
	case string:
		return repr([]byte(arg), TraceStrsize)
	case uint64:
		return hex(arg)
	case int64:
		return hex(arg)
	default:
		return fmt.Sprintf("%v", arg)
	}
}

func (s *Syscall) traceArgs(args []uint64) string {
	n := len(s.In)
	if len(args) < n {
		n = len(args)
	}
	inRef, err := s.Table.Argjoy.Convert(s.In[:n], false, args[:n])
	if err != nil {
		return err.Error()
	}
	in := make([]interface{}, len(inRef))
	for i, val := range inRef {
		in[i] = val.Interface()
	}
	ret := make([]string, len(in))
	for i := range in {
		ret[i] = s.traceArg(in[i:]...)
	}
	return strings.Join(ret, ", ")
}

// Trace renders the call the way strace would print it.
func (s *Syscall) Trace(args []uint64) string {
	return fmt.Sprintf("%s(%s)", s.Name, s.traceArgs(args))
}

// TraceRet renders the result half of a trace line, including any output
// buffer contents the handler filled in.
func (s *Syscall) TraceRet(args []uint64, ret int64) string {
	var out []string
	for i, typ := range s.In {
		if typ == obufType && len(args) > i+1 {
			length := int(ret)
			if length >= 0 && uint64(length) <= args[i+1] {
				mem := make([]byte, length)
				if err := NewBuf(args[i]).Unpack(mem); err == nil {
					out = append(out, repr(mem, TraceStrsize))
				}
			}
		}
	}
	if len(s.Out) > 0 {
		out = append(out, s.traceArg(ret))
	}
	if len(out) > 0 {
		return fmt.Sprintf(" = %s", strings.Join(out, ", "))
	}
	return ""
}
