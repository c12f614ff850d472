// Package source provides the row sources that supply keyword candidates for
// a seed keyword.
package source

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"keyscout/internal/config"
	"keyscout/internal/models"
)

// ErrSourceUnavailable is wrapped by every error a source returns.
var ErrSourceUnavailable = errors.New("keyword source unavailable")

// ErrUnknownSource is returned by Build for an unregistered variant name.
var ErrUnknownSource = errors.New("unknown keyword source")

// Variant names.
const (
	Primary   = "primary"
	Secondary = "secondary"
	Combined  = "combined"
	Remote    = "remote"
)

// Query identifies what a source is asked for.
type Query struct {
	Seed     string
	Country  string
	Language string
}

// Source supplies raw keyword rows for a seed keyword. Implementations may be
// slow and must respect ctx cancellation. Returned rows carry no ordering or
// cardinality guarantee.
type Source interface {
	Name() string
	FetchRows(ctx context.Context, q Query) ([]models.RawKeywordRow, error)
}

// unavailable wraps err so callers can match ErrSourceUnavailable.
func unavailable(name string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, name, err)
}

// Deps carries what source constructors may need beyond the env config.
type Deps struct {
	Config    *config.Config
	Templates *config.YAMLConfig // optional
}

type factory func(deps Deps) (Source, error)

var registry = map[string]factory{
	Primary: func(deps Deps) (Source, error) {
		return NewTemplateSource(Primary, templatesFor(deps, Primary, primaryTemplates), deps.Config.AdsCredentials), nil
	},
	Secondary: func(deps Deps) (Source, error) {
		return NewTemplateSource(Secondary, templatesFor(deps, Secondary, secondaryTemplates), nil), nil
	},
	Remote: func(deps Deps) (Source, error) {
		return NewRemoteSource(deps.Config.RemoteSourceURL, deps.Config.SourceTimeout)
	},
}

// Names lists every variant Build accepts, sorted.
func Names() []string {
	names := []string{Combined}
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the variant named by cfg.KeywordSource.
func Build(deps Deps) (Source, error) {
	return build(deps, deps.Config.KeywordSource)
}

// BuildNamed constructs the named variant regardless of the configured one.
func BuildNamed(deps Deps, name string) (Source, error) {
	return build(deps, name)
}

func build(deps Deps, name string) (Source, error) {
	if name == Combined {
		parts := make([]Source, 0, len(deps.Config.CombinedSources))
		for _, partName := range deps.Config.CombinedSources {
			if partName == Combined {
				return nil, fmt.Errorf("combined source cannot include itself")
			}
			part, err := build(deps, partName)
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		}
		return NewCombinedSource(parts...), nil
	}

	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}
	return f(deps)
}
