package benchmark

import (
	"github.com/philipp01105/tzlog/core"
	"github.com/philipp01105/tzlog/handler"
)

// noopHandler drops entries without formatting them. It is the baseline
// for the logger's own dispatch cost.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return noopHandler{}
}

func (noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (noopHandler) Close() error {
	return nil
}
