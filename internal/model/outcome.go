package model

import "time"

// Failure kinds for a per-engine, per-query outcome. All of them are
// engine-local: they are recorded and surfaced through FailedEngines but
// never abort the overall query.
const (
	FailRequest   = "request"
	FailTimeout   = "timeout"
	FailNetwork   = "network"
	FailHTTP      = "http"
	FailParse     = "parse"
	FailAbandoned = "abandoned"
)

// Failure names one engine failure mode with a human-readable message.
type Failure struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (f *Failure) Error() string {
	return f.Kind + ": " + f.Message
}

// Outcome is the result of running one engine against one query: either a
// parsed batch or a failure. It lives only for the duration of the query.
type Outcome struct {
	Engine  string
	Batch   ParsedBatch
	Failure *Failure
	Elapsed time.Duration
}

// OK reports whether the engine produced a usable batch.
func (o Outcome) OK() bool {
	return o.Failure == nil
}
