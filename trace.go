package tracecalc

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// tracer keeps the textual trace of an evaluation. It sees only the values
// the evaluator has already computed, so nothing it does can change a result.
type tracer struct {
	// text is the rendering of the partially reduced tree.
	text string
	emit func(string)
	log  zerolog.Logger
}

// reduce replaces the leftmost rendering of a node whose operands reduced to
// x and y with the node's result r, then emits the trace. Every subtree to the
// left of the node being reduced is already a single number, so the leftmost
// match is that node. If the rendering is missing, the text is left as it is.
func (t *tracer) reduce(op Op, x, y, r int64) {
	before := redex(op, x, y)
	after := strconv.FormatInt(r, 10)
	k := strings.Index(t.text, before)
	if k < 0 {
		t.log.Debug().Str("redex", before).Str("trace", t.text).Msg("reduction missing from trace")
	} else {
		t.text = t.text[:k] + after + t.text[k+len(before):]
	}
	t.log.Debug().Stringer("op", op).Int64("x", x).Int64("y", y).Int64("result", r).Msg("reduced")
	t.emit(t.text)
}
