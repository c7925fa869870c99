package engine

import (
	"fmt"

	"github.com/dshills/scratchpad/internal/expr"
)

// EvalRange parses the buffer text in [start, end) as an arithmetic
// expression and returns its value.
func (p *Pad) EvalRange(start, end ByteOffset) (int64, error) {
	p.mu.RLock()
	src := p.buf.TextRange(start, end)
	p.mu.RUnlock()

	node, err := expr.Parse(src)
	if err != nil {
		return 0, fmt.Errorf("eval range [%d:%d): %w", start, end, err)
	}
	return expr.Evaluate(node), nil
}

// EvalText parses the entire buffer as an arithmetic expression and returns
// its value.
func (p *Pad) EvalText() (int64, error) {
	p.mu.RLock()
	src := p.buf.Text()
	p.mu.RUnlock()

	node, err := expr.Parse(src)
	if err != nil {
		return 0, fmt.Errorf("eval buffer: %w", err)
	}
	return expr.Evaluate(node), nil
}
