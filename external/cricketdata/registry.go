package cricketdata

import (
	"fmt"
	"os"
	"strings"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/source"
	"gopkg.in/yaml.v3"
)

// mirrorEndpoints are retried, in order, for any source whose own endpoint fails.
var mirrorEndpoints = []string{
	"https://cricapi.com/api/matches",
	"https://api.cricapi.com/v1/matches",
	"https://cricket-api.com/api/v1/matches",
	"https://raw.githubusercontent.com/cricket-data/api/main/matches.json",
	"https://api.cricket-data.org/matches/today",
}

var defaultSources = []source.Source{
	{Name: "CricAPI_Free", Endpoint: "https://cricapi.com/api/cricket", Kind: source.KindPublic},
	{Name: "ESPN_CricInfo", Endpoint: "https://site.api.espn.com/apis/site/v2/sports/cricket/8048/scoreboard", Kind: source.KindPublic},
	{Name: "GitHub_Cricket_Data", Endpoint: "https://raw.githubusercontent.com/sanwebinfo/cricket-api/main/api/matches.json", Kind: source.KindGitHub},
	{Name: "Cricket_Scores_API", Endpoint: "https://api.cricapi.com/v1/currentMatches", Kind: source.KindFree},
	{Name: "Live_Cricket_Web", Endpoint: "https://www.cricbuzz.com/api/cricket-match/live-scores", Kind: source.KindWebScrape},
}

// Registry is a fixed, ordered source list.
type Registry struct {
	sources []source.Source
}

var _ source.Registry = (*Registry)(nil)

// NewRegistry validates sources and fills missing alternatives with the mirror list.
func NewRegistry(sources []source.Source) (*Registry, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("source registry is empty")
	}

	seen := make(map[string]struct{}, len(sources))
	out := make([]source.Source, 0, len(sources))
	for i, src := range sources {
		src.Name = strings.TrimSpace(src.Name)
		src.Endpoint = strings.TrimSpace(src.Endpoint)
		if src.Name == "" {
			return nil, fmt.Errorf("source[%d]: name is required", i)
		}
		if src.Endpoint == "" {
			return nil, fmt.Errorf("source %q: endpoint is required", src.Name)
		}
		if _, dup := seen[src.Name]; dup {
			return nil, fmt.Errorf("source %q: duplicate name", src.Name)
		}
		seen[src.Name] = struct{}{}

		if src.Kind == "" {
			src.Kind = source.KindPublic
		}
		if len(src.Alternatives) == 0 {
			src.Alternatives = append([]string(nil), mirrorEndpoints...)
		} else {
			src.Alternatives = append([]string(nil), src.Alternatives...)
		}
		out = append(out, src)
	}

	return &Registry{sources: out}, nil
}

func DefaultRegistry() *Registry {
	r, err := NewRegistry(defaultSources)
	if err != nil {
		panic(err)
	}
	return r
}

// Sources returns a copy so callers cannot reorder the registry.
func (r *Registry) Sources() []source.Source {
	out := make([]source.Source, len(r.sources))
	for i, src := range r.sources {
		src.Alternatives = append([]string(nil), src.Alternatives...)
		out[i] = src
	}
	return out
}

type registryFile struct {
	Sources []struct {
		Name         string   `yaml:"name"`
		Endpoint     string   `yaml:"endpoint"`
		Kind         string   `yaml:"kind"`
		Alternatives []string `yaml:"alternatives"`
	} `yaml:"sources"`
}

// ParseRegistry reads a YAML document of the form `sources: [{name, endpoint, kind, alternatives}]`.
func ParseRegistry(raw []byte) (*Registry, error) {
	var file registryFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse sources file: %w", err)
	}

	sources := make([]source.Source, 0, len(file.Sources))
	for _, item := range file.Sources {
		sources = append(sources, source.Source{
			Name:         item.Name,
			Endpoint:     item.Endpoint,
			Kind:         source.Kind(strings.TrimSpace(item.Kind)),
			Alternatives: item.Alternatives,
		})
	}
	return NewRegistry(sources)
}

func LoadRegistryFile(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources file: %w", err)
	}
	return ParseRegistry(raw)
}
