package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// NonBlockingReader reads input without ignoring context cancellation.
type NonBlockingReader struct {
	reader *bufio.Reader
	limit  int64
}

// NewNonBlockingReader creates a reader that returns at most limit bytes
// from ReadAll. A limit of zero or less means unlimited.
func NewNonBlockingReader(reader io.Reader, limit int64) *NonBlockingReader {
	if reader == nil {
		panic("reader cannot be nil")
	}

	return &NonBlockingReader{
		reader: bufio.NewReader(reader),
		limit:  limit,
	}
}

// ReadAll reads until EOF. If ctx is cancelled first it returns
// ErrInputCancelled; the pending read is abandoned.
func (r *NonBlockingReader) ReadAll(ctx context.Context) (string, error) {
	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		var src io.Reader = r.reader
		if r.limit > 0 {
			src = io.LimitReader(r.reader, r.limit)
		}
		data, err := io.ReadAll(src)
		resultCh <- result{value: string(data), err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case res := <-resultCh:
		return res.value, res.err
	}
}
