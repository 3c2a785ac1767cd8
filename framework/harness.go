package framework

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

const statusQueryInterval = time.Millisecond * 500

// ServiceInfo is what we learned about the service from the initial status query.
type ServiceInfo struct {
	StatusCode  int
	ContentType string
}

// TestHarness holds the process-wide settings shared by every test: the base URL of the
// service under test and the HTTP client used to reach it. It is created once, before any
// test runs, and is not modified afterward.
type TestHarness struct {
	serviceURL  string
	httpClient  *http.Client
	serviceInfo ServiceInfo
	logger      Logger
}

// NewTestHarness creates a TestHarness and verifies that the service is reachable by sending
// it a plain GET request. Any HTTP response counts as reachable; the contract tests decide
// whether it is the right one. Network errors are retried until statusQueryTimeout elapses,
// since hosted services may take a while to wake up.
func NewTestHarness(
	serviceURL string,
	httpClient *http.Client,
	statusQueryTimeout time.Duration,
	debugLogger Logger,
	startupOutput io.Writer,
) (*TestHarness, error) {
	if debugLogger == nil {
		debugLogger = NullLogger()
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if startupOutput == nil {
		startupOutput = io.Discard
	}

	h := &TestHarness{
		serviceURL: serviceURL,
		httpClient: httpClient,
		logger:     debugLogger,
	}

	info, err := h.queryServiceInfo(statusQueryTimeout, startupOutput)
	if err != nil {
		return nil, err
	}
	h.serviceInfo = info

	return h, nil
}

func (h *TestHarness) ServiceURL() string {
	return h.serviceURL
}

func (h *TestHarness) HTTPClient() *http.Client {
	return h.httpClient
}

func (h *TestHarness) ServiceInfo() ServiceInfo {
	return h.serviceInfo
}

func (h *TestHarness) queryServiceInfo(timeout time.Duration, output io.Writer) (ServiceInfo, error) {
	fmt.Fprintf(output, "Connecting to service at %s", h.serviceURL)

	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		resp, err := h.httpClient.Get(h.serviceURL)
		if err == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			fmt.Fprintln(output)
			info := ServiceInfo{
				StatusCode:  resp.StatusCode,
				ContentType: resp.Header.Get("Content-Type"),
			}
			fmt.Fprintf(output, "Service responded with status %d (%s)\n", info.StatusCode, info.ContentType)
			return info, nil
		}
		h.logger.Printf("Status query failed: %s", err)
		if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			return ServiceInfo{}, fmt.Errorf("timed out, result of last query was: %w", err)
		}
		time.Sleep(statusQueryInterval)
	}
}
