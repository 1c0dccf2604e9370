// Package framerio is a reference streaming driver for framecodec: it pumps
// chunks read from an io.Reader or accepted net.Conn connections into a
// Codec's resumable Read protocol, yielding decoded values one at a time.
// It is intentionally minimal — callers with more specific buffering,
// backpressure, or multiplexing needs should drive a Codec directly rather
// than depend on this package, the same way the spec calls a full
// streaming channel adapter out of scope for the core algebra.
package framerio

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log"
	"net"

	"golang.org/x/sync/errgroup"

	"github.com/go-frame/framecodec"
	"github.com/go-frame/framecodec/bs"
)

// DefaultChunkSize is the buffer size [Decode] uses for each read.
const DefaultChunkSize = 4096

// Decode repeatedly decodes values from r using c, invoking onValue for
// each, until r returns io.EOF with nothing left to decode. If r ends mid-
// value, Decode returns [framecodec.ErrTruncated].
func Decode(ctx context.Context, r io.Reader, c framecodec.Codec, onValue func(any) error) error {
	buf := make([]byte, DefaultChunkSize)
	seq := bs.Sequence{}
	cur := c
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := r.Read(buf)
		if n > 0 {
			chunk := append([]byte(nil), buf[:n]...)
			seq = seq.Append(chunk)
			for {
				res, rerr := cur.Read(seq)
				if rerr != nil {
					return rerr
				}
				if !res.IsDone() {
					cur = res.Resumable()
					seq = res.Remainder()
					break
				}
				if cbErr := onValue(res.Value()); cbErr != nil {
					return cbErr
				}
				cur = c
				seq = res.Remainder()
				if seq.Len() == 0 {
					break
				}
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				if seq.Len() == 0 && cur == c {
					return nil
				}
				return framecodec.ErrTruncated
			}
			return err
		}
	}
}

// Listener runs Decode against every connection a net.Listener accepts,
// calling newCodec to build an independent Codec value per connection
// (codecs are concurrency-safe and reusable, but a fresh compile call also
// works if the caller wants per-connection configuration) and onValue for
// each decoded value. Connections are handled concurrently under an
// errgroup.Group. A connection's decode error ends only that connection: it
// is written to Logger when one is set, and is not returned by Run; other
// connections keep being served until ctx is canceled.
type Listener struct {
	Accept   net.Listener
	NewCodec func() (framecodec.Codec, error)
	OnValue  func(net.Conn, any) error
	Logger   *log.Logger
}

// Run serves l.Accept until ctx is canceled or l.Accept.Accept returns a
// fatal error.
func (l *Listener) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		return l.Accept.Close()
	})
	for {
		conn, err := l.Accept.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		g.Go(func() error {
			defer conn.Close()
			codec, err := l.NewCodec()
			if err != nil {
				return err
			}
			err = Decode(ctx, conn, codec, func(v any) error {
				return l.OnValue(conn, v)
			})
			if err != nil && l.Logger != nil {
				l.Logger.Printf("framerio: connection %s: %v", conn.RemoteAddr(), err)
			}
			return nil
		})
	}
}

// Write writes v with c to w in a single call, using buffered scatter
// writes when c produces more than one buffer, mirroring how a
// [bufio.Writer] is the teacher's idiom for incremental output.
func Write(w io.Writer, c framecodec.Codec, v any) error {
	bufs, err := c.Write(v)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, b := range bufs {
		if _, err := bw.Write(b); err != nil {
			return err
		}
	}
	return bw.Flush()
}
