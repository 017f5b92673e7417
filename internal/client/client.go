package client

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/guonaihong/gout"

	"github.com/chatcont39-glitch/educheck/internal/models"
	"github.com/chatcont39-glitch/educheck/internal/storage"
)

// ErrNetworkFailure indicates the request could not complete (connectivity).
// Callers treat it like a storage failure: surface a notice, keep state, let
// the user retry.
var ErrNetworkFailure = errors.New("storage api unreachable")

// APIClient is a storage.Store implementation backed by the remote HTTP API,
// so a form controller behaves identically whether storage is embedded or
// split client/server. Server-side failures map onto the storage error
// taxonomy; transport failures map to ErrNetworkFailure.
type APIClient struct {
	baseURL string
}

// New returns a client for the storage API rooted at baseURL.
func New(baseURL string) *APIClient {
	return &APIClient{baseURL: strings.TrimRight(baseURL, "/")}
}

// missingDataMessage is the server's wire message for a save request with an
// absent field. Other 400 bodies (a payload the server could not decode) map
// to a write failure instead, so callers do not misreport corruption as a
// missing field.
const missingDataMessage = "Missing data"

type saveResponse struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Persist implements storage.Store over POST /api/save-pdf.
func (c *APIClient) Persist(ctx context.Context, fileName string, payload []byte) (string, error) {
	var (
		resp   saveResponse
		apiErr errorResponse
		code   int
	)

	err := gout.POST(c.baseURL + "/api/save-pdf").
		WithContext(ctx).
		SetJSON(gout.H{
			"fileName":  fileName,
			"pdfBase64": base64.StdEncoding.EncodeToString(payload),
		}).
		Callback(func(gc *gout.Context) error {
			code = gc.Code
			if gc.Code == http.StatusOK {
				gc.BindJSON(&resp)
			} else {
				gc.BindJSON(&apiErr)
			}
			return nil
		}).
		Do()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}

	switch {
	case code == http.StatusOK:
		return resp.Path, nil
	case code == http.StatusBadRequest && apiErr.Error == missingDataMessage:
		return "", fmt.Errorf("%w: %s", storage.ErrMissingArgument, apiErr.Error)
	default:
		return "", fmt.Errorf("%w: server returned %d: %s", storage.ErrWriteFailure, code, apiErr.Error)
	}
}

// ListHistory implements storage.Store over GET /api/history.
func (c *APIClient) ListHistory(ctx context.Context) ([]models.HistoryEntry, error) {
	var (
		history []models.HistoryEntry
		apiErr  errorResponse
		code    int
	)

	err := gout.GET(c.baseURL + "/api/history").
		WithContext(ctx).
		Callback(func(gc *gout.Context) error {
			code = gc.Code
			if gc.Code == http.StatusOK {
				gc.BindJSON(&history)
			} else {
				gc.BindJSON(&apiErr)
			}
			return nil
		}).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}

	if code != http.StatusOK {
		return nil, fmt.Errorf("%w: server returned %d: %s", storage.ErrReadFailure, code, apiErr.Error)
	}
	if history == nil {
		history = []models.HistoryEntry{}
	}
	return history, nil
}
