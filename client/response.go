package client

import (
	"mime"
	"net/http"
	"strings"
)

// Response is everything we captured from one HTTP response.
type Response struct {
	StatusCode int
	Status     string // for instance "400 Bad Request"
	Proto      string
	Header     http.Header
	Body       []byte
}

// StatusLine reconstructs the HTTP status line, for instance "HTTP/1.1 400 Bad Request".
func (r *Response) StatusLine() string {
	if r.Proto == "" {
		return r.Status
	}
	return r.Proto + " " + r.Status
}

// ContentType returns the raw Content-Type header.
func (r *Response) ContentType() string {
	return r.Header.Get("Content-Type")
}

// MediaType returns the Content-Type header without its parameters, or "" if the header is
// missing or malformed.
func (r *Response) MediaType() string {
	mediaType, _, err := mime.ParseMediaType(r.ContentType())
	if err != nil {
		return ""
	}
	return strings.ToLower(mediaType)
}

// Result parses the response body into one of the shapes the service can return.
func (r *Response) Result() (Result, error) {
	return ParseResult(r.Body)
}
