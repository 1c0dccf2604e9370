package wire

import (
	"github.com/go-frame/framecodec"
	"github.com/go-frame/framecodec/bs"
)

// scanThenFinish scans seq for the first occurrence of any delimiter in
// delims using sc, and on a match calls finish with the pre-delimiter block
// and the post-delimiter remainder. On no match, it suspends: the returned
// Need's Resumable retries the scan against a grown Sequence next time,
// reusing sc so the tail-window carried between calls is never rescanned.
// This is the one shared implementation behind every delimiter-terminated
// combinator (delimited block, delimited frame, delimited string, delimiter-
// terminated repetition).
func scanThenFinish(sc *bs.Scanner, delims [][]byte, seq bs.Sequence, finish func(block, rest bs.Sequence, which int) (framecodec.ReadResult, error)) (framecodec.ReadResult, error) {
	at, which, ok := sc.Scan(seq)
	if !ok {
		return framecodec.Need(&scanResume{sc: sc, delims: delims, finish: finish}, seq), nil
	}
	block, err := seq.Take(at)
	if err != nil {
		return framecodec.ReadResult{}, err
	}
	rest, err := seq.Drop(at + len(delims[which]))
	if err != nil {
		return framecodec.ReadResult{}, err
	}
	return finish(block, rest, which)
}

type scanResume struct {
	readOnlyCodec
	sc     *bs.Scanner
	delims [][]byte
	finish func(bs.Sequence, bs.Sequence, int) (framecodec.ReadResult, error)
}

func (r *scanResume) Read(seq bs.Sequence) (framecodec.ReadResult, error) {
	return scanThenFinish(r.sc, r.delims, seq, r.finish)
}
