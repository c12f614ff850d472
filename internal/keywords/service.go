// Package keywords implements the keyword ideas query: validate the request,
// fetch rows from the configured source under a deadline, and hand the raw
// rows back to the caller.
package keywords

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"keyscout/internal/metrics"
	"keyscout/internal/models"
	"keyscout/internal/ranking"
	"keyscout/internal/source"
	"keyscout/internal/validation"
)

// ErrSourceUnavailable is returned when the row source fails or times out.
var ErrSourceUnavailable = source.ErrSourceUnavailable

// ValidationError reports a request rejected before any source call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Request is one keyword ideas query as received from a caller.
type Request struct {
	Keyword  string
	Country  string
	Language string
}

// Response carries the raw rows for a query.
type Response struct {
	RequestID string
	Source    string
	Keyword   string
	Country   string
	Language  string
	Rows      []models.RawKeywordRow
}

// Ranked scores the response rows.
func (r *Response) Ranked() ranking.Result {
	return ranking.Rank(r.Rows)
}

// Service answers keyword ideas queries.
type Service struct {
	src             source.Source
	timeout         time.Duration
	defaultCountry  string
	defaultLanguage string
}

// Options configures a Service.
type Options struct {
	Timeout         time.Duration // zero means no deadline beyond the caller's
	DefaultCountry  string
	DefaultLanguage string
}

// NewService creates a query service over src.
func NewService(src source.Source, opts Options) *Service {
	s := &Service{
		src:             src,
		timeout:         opts.Timeout,
		defaultCountry:  opts.DefaultCountry,
		defaultLanguage: opts.DefaultLanguage,
	}
	if s.defaultCountry == "" {
		s.defaultCountry = "KR"
	}
	if s.defaultLanguage == "" {
		s.defaultLanguage = "ko"
	}
	return s
}

// SourceName returns the name of the underlying row source.
func (s *Service) SourceName() string {
	return s.src.Name()
}

// Query validates req and fetches its rows. It returns a *ValidationError
// for bad input and an error wrapping ErrSourceUnavailable when the source
// fails; no rows are returned alongside an error. Zero rows is a valid result.
func (s *Service) Query(ctx context.Context, req Request) (*Response, error) {
	q, err := s.normalize(req)
	if err != nil {
		metrics.RecordQuery(metrics.OutcomeInvalid)
		return nil, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	requestID := uuid.NewString()
	start := time.Now()
	rows, err := s.src.FetchRows(ctx, q)
	elapsed := time.Since(start)
	if err != nil {
		metrics.ObserveSource(s.src.Name(), metrics.OutcomeUnavailable, elapsed)
		metrics.RecordQuery(metrics.OutcomeUnavailable)
		slog.Error("keyword source failed", "request_id", requestID, "source", s.src.Name(), "keyword", q.Seed, "error", err)
		if !errors.Is(err, ErrSourceUnavailable) {
			err = fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, s.src.Name(), err)
		}
		return nil, err
	}

	outcome := metrics.OutcomeOK
	if len(rows) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	metrics.ObserveSource(s.src.Name(), outcome, elapsed)
	metrics.RecordQuery(outcome)
	slog.Debug("keyword query served", "request_id", requestID, "source", s.src.Name(), "rows", len(rows), "elapsed", elapsed)

	if rows == nil {
		rows = []models.RawKeywordRow{}
	}
	return &Response{
		RequestID: requestID,
		Source:    s.src.Name(),
		Keyword:   q.Seed,
		Country:   q.Country,
		Language:  q.Language,
		Rows:      rows,
	}, nil
}

func (s *Service) normalize(req Request) (source.Query, error) {
	seed := validation.NormalizeSeed(req.Keyword)
	if ok, msg := validation.ValidateSeed(seed); !ok {
		return source.Query{}, &ValidationError{Field: "keyword", Message: msg}
	}

	country := validation.NormalizeCountry(req.Country)
	if country == "" {
		country = s.defaultCountry
	}
	if !validation.ValidateCode(country) {
		return source.Query{}, &ValidationError{Field: "country", Message: "country must be a two-letter code"}
	}

	lang := validation.NormalizeLanguage(req.Language)
	if lang == "" {
		lang = s.defaultLanguage
	}
	if !validation.ValidateCode(lang) {
		return source.Query{}, &ValidationError{Field: "lang", Message: "language must be a two-letter code"}
	}

	return source.Query{Seed: seed, Country: country, Language: lang}, nil
}
