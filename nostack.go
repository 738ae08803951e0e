//go:build errnostack

package guarded

// origin is a noop implementation that disables capture of write sites when
// the errnostack build tag is set. See stack.go for further information.
type origin struct{}

func (o *origin) captureOrigin(skip int) {}
func (o *origin) clearOrigin()           {}
func (o *origin) swapOrigin(p *origin)   {}
func (o *origin) originTrace() string    { return "" }
