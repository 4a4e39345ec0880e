package acquirer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

// apiError surfaces non-2xx responses. It never carries credential
// material, only the status and a body excerpt for diagnostics.
type apiError struct {
	StatusCode int
	Body       string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("acquirer api error: status=%d body=%s", e.StatusCode, e.Body)
}

// httpClient abstracts the transport so adapters can be tested against
// httptest servers and so mTLS clients plug in transparently.
type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// doRequest performs one JSON request against an acquirer API. Auth
// headers are applied by the caller-provided decorate func so each
// adapter keeps its own scheme. The response body is fully read and
// returned; any non-2xx status becomes an apiError.
func doRequest(ctx context.Context, client httpClient, method, url string, payload any, decorate func(*http.Request)) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(payload); err != nil {
			return nil, err
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if decorate != nil {
		decorate(req)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &apiError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	return data, nil
}

// chargeFailed collapses any adapter-level failure into the single error
// the orchestrator acts on, logging the underlying cause here so the
// detail is not lost.
func chargeFailed(acquirerName, op string, err error) error {
	logrus.Errorf("acquirer %s: %s failed: %s", acquirerName, op, err.Error())
	return fmt.Errorf("%w: %s %s", ErrChargeFailed, acquirerName, op)
}
