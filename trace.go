package analyzer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to expr.analyzer .
func tracer() tracing.Trace {
	return tracing.Select("expr.analyzer")
}
