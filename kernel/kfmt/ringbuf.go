package kfmt

import "io"

// ringBufferSize is large enough to hold a full 80x25 screen of output. It
// must be a power of 2.
const ringBufferSize = 2048

// ringBuffer keeps the most recent ringBufferSize bytes written to it. Once
// full, every new byte evicts the oldest one.
type ringBuffer struct {
	buffer [ringBufferSize]byte

	// start is the index of the oldest byte and count the number of
	// buffered bytes.
	start, count int
}

// Write implements io.Writer. It never fails.
func (rb *ringBuffer) Write(p []byte) (int, error) {
	for _, b := range p {
		rb.buffer[(rb.start+rb.count)&(ringBufferSize-1)] = b
		if rb.count == ringBufferSize {
			rb.start = (rb.start + 1) & (ringBufferSize - 1)
		} else {
			rb.count++
		}
	}

	return len(p), nil
}

// Read implements io.Reader.
func (rb *ringBuffer) Read(p []byte) (int, error) {
	if rb.count == 0 {
		return 0, io.EOF
	}

	// Read the contiguous chunk up to either the end of the data or the end
	// of the backing array, whichever comes first.
	n := rb.contiguous()
	if n > len(p) {
		n = len(p)
	}

	copy(p, rb.buffer[rb.start:rb.start+n])
	rb.consume(n)
	return n, nil
}

// WriteTo implements io.WriterTo. Unlike io.Copy with a plain Reader, it
// drains the buffer without allocating an intermediate copy buffer.
func (rb *ringBuffer) WriteTo(w io.Writer) (int64, error) {
	var total int64

	for rb.count > 0 {
		n, err := w.Write(rb.buffer[rb.start : rb.start+rb.contiguous()])
		rb.consume(n)
		total += int64(n)
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, io.ErrShortWrite
		}
	}

	return total, nil
}

// contiguous returns the number of buffered bytes that can be accessed
// starting at rb.start without wrapping around.
func (rb *ringBuffer) contiguous() int {
	if n := ringBufferSize - rb.start; n < rb.count {
		return n
	}
	return rb.count
}

func (rb *ringBuffer) consume(n int) {
	rb.start = (rb.start + n) & (ringBufferSize - 1)
	rb.count -= n
}
