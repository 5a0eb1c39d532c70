package pinview

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'pinview'.
func tracer() tracing.Trace {
	return tracing.Select("pinview")
}
