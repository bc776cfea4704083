package tracecalc

import (
	"io"
	"strconv"

	"github.com/rs/zerolog"
)

// Context is a context for evaluating expressions. It holds the trace sinks
// and the steps of the most recent evaluation. It is not safe to use a
// Context concurrently.
type Context struct {
	sinks []func(string)
	log   zerolog.Logger
	steps []string
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	traceopt  func(string)
	writeropt struct{ w io.Writer }
	logopt    zerolog.Logger
)

func (traceopt) ctxOption()  {}
func (writeropt) ctxOption() {}
func (logopt) ctxOption()    {}

// TraceFunc adds a function which receives each trace snapshot as it is
// produced. Any number of sinks may be added.
func TraceFunc(f func(step string)) ContextOption {
	return traceopt(f)
}

// TraceWriter adds a sink which writes each trace snapshot to w on its own
// line. Write errors are ignored.
func TraceWriter(w io.Writer) ContextOption {
	return writeropt{w}
}

// WithLogger sets the logger that receives debug events for each reduction.
// The default is a disabled logger.
func WithLogger(l zerolog.Logger) ContextOption {
	return logopt(l)
}

// NewContext creates a new evaluation context.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{log: zerolog.Nop()}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context with the same sinks and logger and applies
// options to it. The returned context has no steps.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		sinks: append(([]func(string))(nil), ctx.sinks...),
		log:   ctx.log,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case traceopt:
			if opt != nil {
				n.sinks = append(n.sinks, opt)
			}
		case writeropt:
			w := opt.w
			n.sinks = append(n.sinks, func(s string) {
				io.WriteString(w, s+"\n")
			})
		case logopt:
			n.log = zerolog.Logger(opt)
		default:
			panic("tracecalc: unknown option type")
		}
	}
	return &n
}

// Eval evaluates an expression and returns its value. Each reduction of an
// operator produces one trace snapshot, which is sent to the context's sinks
// and recorded for Steps. If the expression divides by zero, the result is 0
// and a *DivisionError; the steps up to that point are kept.
func (ctx *Context) Eval(e *Expr) (int64, error) {
	ctx.steps = ctx.steps[:0]
	if e.Empty() {
		return 0, nil
	}
	ctx.log.Debug().Str("expr", e.src).Int("depth", e.n.depth()).Msg("evaluating")
	tr := &tracer{text: e.n.String(), emit: ctx.emit, log: ctx.log}
	r, err := e.n.eval(e.src, tr)
	if err != nil {
		ctx.log.Debug().Err(err).Msg("evaluation failed")
		return 0, err
	}
	return r, nil
}

// Steps returns the trace snapshots of the most recent evaluation, in order.
func (ctx *Context) Steps() []string {
	return append([]string(nil), ctx.steps...)
}

func (ctx *Context) emit(s string) {
	ctx.steps = append(ctx.steps, s)
	for _, f := range ctx.sinks {
		f(s)
	}
}

// eval computes the node's value in post-order and reports each reduction to
// tr. The value never depends on tr.
func (n *node) eval(src string, tr *tracer) (int64, error) {
	if n.op == OpNone {
		return n.val, nil
	}
	x, err := n.left.eval(src, tr)
	if err != nil {
		return 0, err
	}
	var y int64
	if n.right != nil {
		y, err = n.right.eval(src, tr)
		if err != nil {
			return 0, err
		}
	}
	r, ok := n.op.apply(x, y)
	if !ok {
		return 0, &DivisionError{
			Col:      column(src, n.opspan.Start),
			Span:     n.span,
			Op:       n.opspan,
			Dividend: x,
		}
	}
	tr.reduce(n.op, x, y, r)
	return r, nil
}

// EvalString is a shortcut to parse and evaluate a string expression. It
// returns the value and the trace snapshots.
func EvalString(src string, opts ...ContextOption) (int64, []string, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, nil, err
	}
	ctx := NewContext(opts...)
	r, err := ctx.Eval(a)
	return r, ctx.Steps(), err
}

// DivisionError is an error from dividing by zero. It implements InputError.
type DivisionError struct {
	// Col is the position of the division operator.
	Col int
	// Span covers the division whose divisor is zero.
	Span Span
	// Op covers the division operator.
	Op Span
	// Dividend is the value that was divided.
	Dividend int64
}

func (err *DivisionError) Error() string {
	return errpos(err.Col, "division by zero: "+strconv.FormatInt(err.Dividend, 10)+" / 0 in "+strconv.Quote(err.Span.Text))
}

func (err *DivisionError) Pos() int { return err.Col }
func (err *DivisionError) Location() Span { return err.Span }
func (err *DivisionError) Unwrap() error { return ErrArithmetic }
