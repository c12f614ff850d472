package source

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"keyscout/internal/config"
	"keyscout/internal/models"
)

func testDeps(name string) Deps {
	return Deps{Config: &config.Config{
		KeywordSource:   name,
		CombinedSources: []string{Primary, Secondary},
	}}
}

func TestTemplateSource_FetchRows(t *testing.T) {
	src, err := Build(testDeps(Primary))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	rows, err := src.FetchRows(context.Background(), Query{Seed: "  무선충전 ", Country: "KR", Language: "ko"})
	if err != nil {
		t.Fatalf("FetchRows: %v", err)
	}

	want := []models.RawKeywordRow{
		{Keyword: "무선충전 추천", Volume: 4400, CPC: 720, Competition: 0.35},
		{Keyword: "무선충전 후기", Volume: 2900, CPC: 540, Competition: 0.28},
		{Keyword: "무선충전 비교", Volume: 1900, CPC: 610, Competition: 0.32},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestTemplateSource_BlankSeed(t *testing.T) {
	src, _ := Build(testDeps(Secondary))
	rows, err := src.FetchRows(context.Background(), Query{Seed: "   "})
	if err != nil {
		t.Fatalf("FetchRows: %v", err)
	}
	if len(rows) != 2 || rows[0].Keyword != "테스트 가격" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestTemplateSource_CancelledContext(t *testing.T) {
	src, _ := Build(testDeps(Primary))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.FetchRows(ctx, Query{Seed: "charger"})
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("err = %v, want ErrSourceUnavailable", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want to wrap context.Canceled", err)
	}
}

func TestTemplateSource_YAMLOverride(t *testing.T) {
	deps := testDeps(Primary)
	deps.Templates = &config.YAMLConfig{Sources: []config.SourceConfig{{
		Name:      Primary,
		Templates: []config.TemplateConfig{{Suffix: " deals", Volume: 10, CPC: 1, Competition: 0.9}},
	}}}

	src, err := Build(deps)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	rows, _ := src.FetchRows(context.Background(), Query{Seed: "tv"})
	if len(rows) != 1 || rows[0].Keyword != "tv deals" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestCombinedSource(t *testing.T) {
	src, err := Build(testDeps(Combined))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := src.Name(); got != "combined(primary+secondary)" {
		t.Errorf("Name() = %q", got)
	}

	rows, err := src.FetchRows(context.Background(), Query{Seed: "tv"})
	if err != nil {
		t.Fatalf("FetchRows: %v", err)
	}
	var got []string
	for _, r := range rows {
		got = append(got, r.Keyword)
	}
	want := []string{"tv 추천", "tv 후기", "tv 비교", "tv 가격", "tv 사용법"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("keywords mismatch (-want +got):\n%s", diff)
	}
}

type failingSource struct{}

func (failingSource) Name() string { return "failing" }

func (failingSource) FetchRows(context.Context, Query) ([]models.RawKeywordRow, error) {
	return nil, unavailable("failing", errors.New("boom"))
}

func TestCombinedSource_PartFails(t *testing.T) {
	primary, _ := Build(testDeps(Primary))
	src := NewCombinedSource(primary, failingSource{})

	rows, err := src.FetchRows(context.Background(), Query{Seed: "tv"})
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("err = %v, want ErrSourceUnavailable", err)
	}
	if rows != nil {
		t.Errorf("expected no partial rows, got %d", len(rows))
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name     string
		variant  string
		combined []string
	}{
		{"unknown variant", "bing", nil},
		{"unknown part", Combined, []string{Primary, "bing"}},
		{"self reference", Combined, []string{Combined}},
		{"remote without url", Remote, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := Deps{Config: &config.Config{KeywordSource: tt.variant, CombinedSources: tt.combined}}
			if _, err := Build(deps); err == nil {
				t.Error("expected error")
			}
		})
	}

	_, err := Build(Deps{Config: &config.Config{KeywordSource: "bing"}})
	if !errors.Is(err, ErrUnknownSource) {
		t.Errorf("err = %v, want ErrUnknownSource", err)
	}
}

func TestNames(t *testing.T) {
	want := []string{Combined, Primary, Remote, Secondary}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}
