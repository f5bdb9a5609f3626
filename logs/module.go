package logs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

// Span identifies one unit of work across log records.
type Span string

type spanKey struct{}

var SpanKey spanKey
