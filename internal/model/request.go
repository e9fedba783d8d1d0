package model

// RequestSpec is the outbound HTTP shape an engine adapter produces. It is
// opaque to the aggregation core and only consumed by the transport.
type RequestSpec struct {
	URL     string
	Method  string
	Headers map[string]string
	// Cookies are "name=value" pairs; the executor joins them with "; " into
	// a single Cookie header.
	Cookies []string
	Body    []byte
}
