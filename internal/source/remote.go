package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"keyscout/internal/models"
)

// RemoteSource fetches rows from a keyword data service that speaks the
// same items envelope as this server's own keyword ideas endpoint.
type RemoteSource struct {
	client *resty.Client
}

// Items is a pointer so a body without the key can be told apart from an
// empty list.
type remotePayload struct {
	Items *[]models.RawKeywordRow `json:"items"`
}

// NewRemoteSource creates a source backed by the service at baseURL.
func NewRemoteSource(baseURL string, timeout time.Duration) (*RemoteSource, error) {
	if baseURL == "" {
		return nil, errors.New("REMOTE_SOURCE_URL is required for the remote keyword source")
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("User-Agent", "Keyscout-RowSource/1.0")
	client.SetHeader("Accept", "application/json")
	client.SetTimeout(timeout)

	return &RemoteSource{client: client}, nil
}

// Name returns the variant name.
func (s *RemoteSource) Name() string {
	return Remote
}

// FetchRows requests keyword ideas for the query. Transport errors and
// non-2xx responses are reported as ErrSourceUnavailable, as is any body that
// is not a JSON object carrying an items list.
func (s *RemoteSource) FetchRows(ctx context.Context, q Query) ([]models.RawKeywordRow, error) {
	var payload remotePayload
	res, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"keyword": q.Seed,
			"country": q.Country,
			"lang":    q.Language,
		}).
		ForceContentType("application/json").
		SetResult(&payload).
		Get("/keyword-ideas")
	if err != nil {
		return nil, unavailable(Remote, err)
	}
	if res.IsError() {
		return nil, unavailable(Remote, fmt.Errorf("upstream responded %s", res.Status()))
	}

	if payload.Items == nil {
		return nil, unavailable(Remote, fmt.Errorf("upstream response has no items (content type %q)", res.Header().Get("Content-Type")))
	}

	return *payload.Items, nil
}
