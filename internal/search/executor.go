package search

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/chorus-search/chorus/internal/engine"
	"github.com/chorus-search/chorus/internal/model"
)

const statusOK = "ok"

// defaultTimeout applies when a descriptor carries no positive timeout,
// matching the settings-file default. Without it WithTimeout would get a
// zero duration, an already-expired deadline.
const defaultTimeout = 3 * time.Second

// Executor runs one engine against one query: request build, network call
// under the engine's timeout, parse, and result tagging. Every failure mode
// is caught and converted into a failure outcome; nothing propagates to the
// caller.
type Executor struct {
	client *http.Client
	logger *slog.Logger
}

// NewExecutor creates an executor using the given HTTP client for all
// engine transport calls.
func NewExecutor(client *http.Client, logger *slog.Logger) *Executor {
	if client == nil {
		client = &http.Client{}
	}
	return &Executor{client: client, logger: logger}
}

// Execute runs eng against query and returns its outcome. The engine's
// configured timeout bounds the transport call; ctx additionally carries
// the caller's cancellation.
func (x *Executor) Execute(ctx context.Context, eng engine.Engine, query string, p model.Params) model.Outcome {
	desc := eng.Descriptor()
	start := time.Now()

	fail := func(kind, msg string) model.Outcome {
		elapsed := time.Since(start)
		engineRequestsTotal.WithLabelValues(desc.Name, kind).Inc()
		engineRequestDuration.WithLabelValues(desc.Name).Observe(elapsed.Seconds())
		x.logger.Warn("engine failed",
			"engine", desc.Name,
			"kind", kind,
			"error", msg,
			"elapsed_ms", elapsed.Milliseconds(),
		)
		return model.Outcome{
			Engine:  desc.Name,
			Failure: &model.Failure{Kind: kind, Message: msg},
			Elapsed: elapsed,
		}
	}

	spec, err := eng.BuildRequest(query, p)
	if err != nil {
		return fail(model.FailRequest, err.Error())
	}

	method := spec.Method
	if method == "" {
		method = http.MethodGet
	}

	timeout := desc.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var bodyReader io.Reader
	if len(spec.Body) > 0 {
		bodyReader = bytes.NewReader(spec.Body)
	}
	req, err := http.NewRequestWithContext(ctx, method, spec.URL, bodyReader)
	if err != nil {
		return fail(model.FailRequest, err.Error())
	}
	for k, v := range spec.Headers {
		req.Header.Set(k, v)
	}
	if len(spec.Cookies) > 0 {
		req.Header.Set("Cookie", strings.Join(spec.Cookies, "; "))
	}

	resp, err := x.client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fail(model.FailTimeout, fmt.Sprintf("engine timed out after %s", timeout))
		}
		return fail(model.FailNetwork, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(model.FailHTTP, fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fail(model.FailTimeout, fmt.Sprintf("engine timed out after %s", timeout))
		}
		return fail(model.FailNetwork, fmt.Sprintf("read body: %v", err))
	}

	batch, err := parseGuarded(eng, raw, p)
	if err != nil {
		return fail(model.FailParse, err.Error())
	}

	// Tag every record with the descriptor's identity (adapters must not
	// spoof another engine's name) and default zero scores to the weight.
	for i := range batch.Results {
		batch.Results[i].Engine = desc.Name
		if batch.Results[i].Score == 0 {
			batch.Results[i].Score = desc.Weight
		}
	}

	elapsed := time.Since(start)
	engineRequestsTotal.WithLabelValues(desc.Name, statusOK).Inc()
	engineRequestDuration.WithLabelValues(desc.Name).Observe(elapsed.Seconds())

	return model.Outcome{Engine: desc.Name, Batch: batch, Elapsed: elapsed}
}

// parseGuarded invokes the adapter's parser, converting panics into errors
// so a misbehaving adapter cannot take down the query.
func parseGuarded(eng engine.Engine, body []byte, p model.Params) (batch model.ParsedBatch, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parser panic: %v", r)
		}
	}()
	return eng.ParseResponse(body, p)
}
