package kfmt

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestRingBuffer(t *testing.T) {
	var (
		buf    bytes.Buffer
		expStr = "the big brown fox jumped over the lazy dog"
		rb     ringBuffer
	)

	t.Run("read/write", func(t *testing.T) {
		rb = ringBuffer{}
		n, err := rb.Write([]byte(expStr))
		if err != nil {
			t.Fatal(err)
		}

		if n != len(expStr) {
			t.Fatalf("expected to write %d bytes; wrote %d", len(expStr), n)
		}

		if got := readByteByByte(&buf, &rb); got != expStr {
			t.Fatalf("expected to read %q; got %q", expStr, got)
		}
	})

	t.Run("overflow evicts oldest bytes", func(t *testing.T) {
		rb = ringBuffer{}
		rb.Write([]byte(strings.Repeat("a", ringBufferSize)))
		rb.Write([]byte("!"))

		if rb.count != ringBufferSize {
			t.Fatalf("expected buffer to stay full at %d bytes; got %d", ringBufferSize, rb.count)
		}

		if exp := 1; rb.start != exp {
			t.Fatalf("expected write to push start to %d; got %d", exp, rb.start)
		}

		got := readByteByByte(&buf, &rb)
		if exp := strings.Repeat("a", ringBufferSize-1) + "!"; got != exp {
			t.Fatalf("expected to read the last %d bytes written", ringBufferSize)
		}
	})

	t.Run("data wraps around the end of the array", func(t *testing.T) {
		rb = ringBuffer{start: ringBufferSize - 2}
		n, err := rb.Write([]byte(expStr))
		if err != nil {
			t.Fatal(err)
		}

		if n != len(expStr) {
			t.Fatalf("expected to write %d bytes; wrote %d", len(expStr), n)
		}

		var p [64]byte
		n, _ = rb.Read(p[:])
		if n != 2 {
			t.Fatalf("expected first read to stop at the end of the array after 2 bytes; got %d", n)
		}

		n, _ = rb.Read(p[2:])
		if got := string(p[:2+n]); got != expStr {
			t.Fatalf("expected to read %q; got %q", expStr, got)
		}

		if _, err = rb.Read(p[:]); err != io.EOF {
			t.Fatalf("expected io.EOF from an empty buffer; got %v", err)
		}
	})

	t.Run("with io.WriterTo", func(t *testing.T) {
		rb = ringBuffer{start: ringBufferSize - 2}
		rb.Write([]byte(expStr))

		var out bytes.Buffer
		n, err := io.Copy(&out, &rb)
		if err != nil {
			t.Fatal(err)
		}

		if n != int64(len(expStr)) {
			t.Fatalf("expected to copy %d bytes; copied %d", len(expStr), n)
		}

		if got := out.String(); got != expStr {
			t.Fatalf("expected to read %q; got %q", expStr, got)
		}

		if rb.count != 0 {
			t.Fatalf("expected WriteTo to drain the buffer; %d bytes left", rb.count)
		}
	})

	t.Run("WriteTo with failing writer", func(t *testing.T) {
		rb = ringBuffer{}
		rb.Write([]byte(expStr))

		if _, err := rb.WriteTo(failingWriter{}); err == nil {
			t.Fatal("expected WriteTo to report the writer error")
		}
	})
}

func readByteByByte(buf *bytes.Buffer, r io.Reader) string {
	buf.Reset()
	var b = make([]byte, 1)
	for {
		_, err := r.Read(b)
		if err == io.EOF {
			break
		}

		buf.Write(b)
	}
	return buf.String()
}
