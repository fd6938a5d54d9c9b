// Package kfmt implements the kernel's formatted output path. Nothing in this
// package allocates memory, so it can be used before the Go allocator is
// available and from the panic handler.
package kfmt

import (
	"io"
	"unsafe"

	"vgaos/device/tty"
	"vgaos/kernel/sync"
)

// maxBufSize defines the buffer size for formatting numbers.
const maxBufSize = 32

var (
	errMissingArg   = []byte("(MISSING)")
	errWrongArgType = []byte("%!(WRONGTYPE)")
	errNoVerb       = []byte("%!(NOVERB)")
	errExtraArg     = []byte("%!(EXTRA)")
	trueValue       = []byte("true")
	falseValue      = []byte("false")
	newLine         = []byte("\n")

	// numFmtBuf and singleByte are scratch buffers shared by all calls.
	// Callers of Fprintf are expected to serialize; Printf does so by
	// holding the sink (or early buffer) lock.
	numFmtBuf  [maxBufSize + 1]byte
	singleByte [1]byte

	// earlyPrintBuffer stores Printf output produced before an output sink
	// is registered. earlyLock guards it.
	earlyPrintBuffer ringBuffer
	earlyLock        sync.Spinlock

	// outputSink is the shared terminal that Printf writes to. If nil,
	// output is kept in earlyPrintBuffer.
	outputSink *tty.SharedWriter
)

// SetOutputSink registers the shared terminal that Printf and Printfln write
// to and replays any output buffered before the call. Passing nil routes
// output back to the early buffer.
func SetOutputSink(s *tty.SharedWriter) {
	earlyLock.Acquire()
	outputSink = s
	if s != nil {
		w := s.Lock()
		earlyPrintBuffer.WriteTo(w)
		s.Unlock()
	}
	earlyLock.Release()
}

// Printf provides a minimal Printf implementation that can be safely used
// before the Go runtime has been properly initialized. This implementation
// does not allocate any memory.
//
// Similar to fmt.Printf, this version of printf supports the following subset
// of formatting verbs:
//
// Strings:
//
//	%s the uninterpreted bytes of the string or byte slice
//
// Integers:
//
//	%o base 8
//	%d base 10
//	%x base 16, with lower-case letters for a-f
//
// Booleans:
//
//	%t "true" or "false"
//
// Width is specified by an optional decimal number immediately preceding the verb.
// If absent, the width is whatever is necessary to represent the value.
//
// String values with length less than the specified width will be left-padded with
// spaces. Integer values formatted as base-10 will also be left-padded with spaces.
// Finally, integer values formatted as base-8 and base-16 will be left-padded with
// zeroes.
//
// Printf supports all built-in string and integer types but it does not check
// whether its arguments implement fmt.Stringer or error. Pointers (%p) are not
// supported as this would require the reflect package.
//
// The output of Printf goes to the registered output sink. The sink lock is
// held for the whole call so the output of one Printf call is never
// interleaved with the output of another. Calling Printf while the current
// flow of execution already holds the sink lock deadlocks.
func Printf(format string, args ...interface{}) {
	printTo(format, args, false)
}

// Printfln behaves like Printf and appends a line feed to the output.
func Printfln(format string, args ...interface{}) {
	printTo(format, args, true)
}

func printTo(format string, args []interface{}, appendNewLine bool) {
	w, s := lockOutput()
	Fprintf(w, format, args...)
	if appendNewLine {
		doWrite(w, newLine)
	}
	unlockOutput(s)
}

// lockOutput acquires the output path and returns the writer to use: the
// registered sink's Writer or nil (the early buffer). The returned sink must
// be passed to unlockOutput.
//
// earlyLock is always taken first, in the same order as SetOutputSink, so a
// caller either lands in the early buffer before the replay or writes to the
// sink after it.
func lockOutput() (io.Writer, *tty.SharedWriter) {
	earlyLock.Acquire()
	if s := outputSink; s != nil {
		w := s.Lock()
		earlyLock.Release()
		return w, s
	}

	return nil, nil
}

func unlockOutput(s *tty.SharedWriter) {
	if s != nil {
		s.Unlock()
		return
	}

	earlyLock.Release()
}

// Fprintf behaves exactly like Printf but it writes the formatted output to
// the specified io.Writer. A nil writer selects the early print buffer.
// Fprintf does not acquire any lock.
func Fprintf(w io.Writer, format string, args ...interface{}) {
	var (
		nextCh                       byte
		nextArgIndex                 int
		blockStart, blockEnd, padLen int
		fmtLen                       = len(format)
	)

	for blockEnd < fmtLen {
		nextCh = format[blockEnd]
		if nextCh != '%' {
			blockEnd++
			continue
		}

		writeStringBytes(w, format[blockStart:blockEnd])

		// Scan til we hit the format character
		padLen = 0
		blockEnd++
	parseFmt:
		for ; blockEnd < fmtLen; blockEnd++ {
			nextCh = format[blockEnd]
			switch {
			case nextCh == '%':
				singleByte[0] = '%'
				doWrite(w, singleByte[:])
				break parseFmt
			case nextCh >= '0' && nextCh <= '9':
				padLen = (padLen * 10) + int(nextCh-'0')
				continue
			case nextCh == 'd' || nextCh == 'x' || nextCh == 'o' || nextCh == 's' || nextCh == 't':
				// Run out of args to print
				if nextArgIndex >= len(args) {
					doWrite(w, errMissingArg)
					break parseFmt
				}

				switch nextCh {
				case 'o':
					fmtInt(w, args[nextArgIndex], 8, padLen)
				case 'd':
					fmtInt(w, args[nextArgIndex], 10, padLen)
				case 'x':
					fmtInt(w, args[nextArgIndex], 16, padLen)
				case 's':
					fmtString(w, args[nextArgIndex], padLen)
				case 't':
					fmtBool(w, args[nextArgIndex])
				}

				nextArgIndex++
				break parseFmt
			}

			// reached a character that is neither a width digit nor a verb
			doWrite(w, errNoVerb)
			break parseFmt
		}

		// reached end of formatting string without finding a verb
		if blockEnd >= fmtLen {
			doWrite(w, errNoVerb)
		}
		blockStart, blockEnd = blockEnd+1, blockEnd+1
	}

	if blockStart < fmtLen {
		writeStringBytes(w, format[blockStart:])
	}

	// Check for unused args
	for ; nextArgIndex < len(args); nextArgIndex++ {
		doWrite(w, errExtraArg)
	}
}

// writeStringBytes writes s one byte at a time; converting s to a byte slice
// would trigger a memory allocation.
func writeStringBytes(w io.Writer, s string) {
	for i := 0; i < len(s); i++ {
		singleByte[0] = s[i]
		doWrite(w, singleByte[:])
	}
}

// fmtBool prints a formatted version of boolean value v.
func fmtBool(w io.Writer, v interface{}) {
	bVal, ok := v.(bool)
	switch {
	case !ok:
		doWrite(w, errWrongArgType)
	case bVal:
		doWrite(w, trueValue)
	default:
		doWrite(w, falseValue)
	}
}

// fmtString prints a formatted version of string or []byte value v, applying
// the padding specified by padLen.
func fmtString(w io.Writer, v interface{}, padLen int) {
	switch castedVal := v.(type) {
	case string:
		fmtRepeat(w, ' ', padLen-len(castedVal))
		writeStringBytes(w, castedVal)
	case []byte:
		fmtRepeat(w, ' ', padLen-len(castedVal))
		doWrite(w, castedVal)
	default:
		doWrite(w, errWrongArgType)
	}
}

// fmtRepeat writes count bytes with value ch.
func fmtRepeat(w io.Writer, ch byte, count int) {
	singleByte[0] = ch
	for i := 0; i < count; i++ {
		doWrite(w, singleByte[:])
	}
}

// fmtInt prints out a formatted version of v in the requested base, applying
// the padding specified by padLen. This function supports all built-in signed
// and unsigned integer types and base 8, 10 and 16 output.
func fmtInt(w io.Writer, v interface{}, base, padLen int) {
	var (
		sval             int64
		uval             uint64
		divider          = uint64(base)
		remainder        uint64
		padCh            byte = '0'
		left, right, end int
	)

	if padLen >= maxBufSize {
		padLen = maxBufSize - 1
	}

	if base == 10 {
		padCh = ' '
	}

	switch typedVal := v.(type) {
	case uint8:
		uval = uint64(typedVal)
	case uint16:
		uval = uint64(typedVal)
	case uint32:
		uval = uint64(typedVal)
	case uint64:
		uval = typedVal
	case uint:
		uval = uint64(typedVal)
	case uintptr:
		uval = uint64(typedVal)
	case int8:
		sval = int64(typedVal)
	case int16:
		sval = int64(typedVal)
	case int32:
		sval = int64(typedVal)
	case int64:
		sval = typedVal
	case int:
		sval = int64(typedVal)
	default:
		doWrite(w, errWrongArgType)
		return
	}

	// Handle signs
	if sval < 0 {
		uval = uint64(-sval)
	} else if sval > 0 {
		uval = uint64(sval)
	}

	// Emit digits in reverse order
	for right < maxBufSize {
		remainder = uval % divider
		if remainder < 10 {
			numFmtBuf[right] = byte(remainder) + '0'
		} else {
			// map values from 10 to 15 -> a-f
			numFmtBuf[right] = byte(remainder-10) + 'a'
		}

		right++

		uval /= divider
		if uval == 0 {
			break
		}
	}

	// Apply padding if required
	for ; right-left < padLen; right++ {
		numFmtBuf[right] = padCh
	}

	// Apply negative sign to the rightmost blank character (if using enough padding);
	// otherwise append the sign as a new char
	if sval < 0 {
		for end = right - 1; numFmtBuf[end] == ' '; end-- {
		}

		if end == right-1 {
			right++
		}

		numFmtBuf[end+1] = '-'
	}

	// Reverse in place
	end = right
	for right = right - 1; left < right; left, right = left+1, right-1 {
		numFmtBuf[left], numFmtBuf[right] = numFmtBuf[right], numFmtBuf[left]
	}

	doWrite(w, numFmtBuf[0:end])
}

// doWrite is a proxy that uses the runtime.noescape hack to hide p from the
// compiler's escape analysis. Without this hack, the compiler cannot prove
// that p does not escape through the (dynamic) io.Writer call and plays it
// safe by flagging it as escaping, which makes every call to Printf allocate.
func doWrite(w io.Writer, p []byte) {
	doRealWrite(w, noEscape(unsafe.Pointer(&p)))
}

// doRealWrite forwards p to w or, if w is nil, to the early print buffer. A
// failing writer halts the CPU.
func doRealWrite(w io.Writer, bufPtr unsafe.Pointer) {
	p := *(*[]byte)(bufPtr)
	if w == nil {
		earlyPrintBuffer.Write(p)
		return
	}

	if _, err := w.Write(p); err != nil {
		cpuHaltFn()
	}
}

// noEscape hides a pointer from escape analysis. This function is copied over
// from runtime/stubs.go
//
//go:nosplit
func noEscape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}
