//go:build !iso8601_debug

package iso8601

type DefaultTracer struct{}
type labeledItem struct{}

func debugEvent(_ EventType, _ ...any)     {}
func debugInfo(_ ...any)                   {}
func debugField(_ ...any)                  {}
func debugZone(_ ...any)                   {}
func debugNormalize(_ ...any)              {}
func debugFail(_ ...any)                   {}
func debugPath(_ ...any) func(_ ...any)    { return func(_ ...any) {} }
func newLItem(_ any, _ ...any) labeledItem { return labeledItem{} }
func (_ labeledItem) String() string       { return `` }
