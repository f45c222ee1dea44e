package solver

import (
	"fmt"
	"io"
)

// Breakdown writes a deduplicated transcript of an expression graph: one
// "<value> = <expression>" line per distinct non-leaf node, in visit
// order. Leaves are repunits and print nowhere; they appear only as
// operands inside other lines.
type Breakdown[N Number[N]] struct {
	seen   map[N]struct{}
	stream io.Writer
	err    error
}

// NewBreakdown returns a transcript writer over stream.
func NewBreakdown[N Number[N]](stream io.Writer) *Breakdown[N] {
	return &Breakdown[N]{
		seen:   make(map[N]struct{}),
		stream: stream,
	}
}

// Visit is a Visitor; wire it into Dictionary.BFS or DFS. It keeps
// traversing after a write error but records the first one.
func (b *Breakdown[N]) Visit(key N, step Step[N]) bool {
	if step.IsLeaf() {
		return true
	}
	if _, ok := b.seen[key]; ok {
		return true
	}
	b.seen[key] = struct{}{}
	if _, err := fmt.Fprintf(b.stream, "%s = %s\n", key.String(), step.String()); err != nil && b.err == nil {
		b.err = err
	}
	return true
}

// Err returns the first write error, if any.
func (b *Breakdown[N]) Err() error { return b.err }
