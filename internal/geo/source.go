package geo

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Sheddybata/sdp.app/internal/shared/logger"
	"gopkg.in/yaml.v3"
)

const (
	SourceFile     = "file"
	SourceEmbedded = "embedded"
	SourceSample   = "sample"
)

var ErrEmptyDataset = errors.New("geo: dataset has no states")

//go:embed data/nigeria-wards.json
var embeddedExtract []byte

// Source loads states from one place.
type Source interface {
	Name() string
	Load() ([]State, error)
}

// FileSource reads an Extract from a YAML or JSON file.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return SourceFile }

func (s FileSource) Load() ([]State, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	var extract Extract
	// JSON documents are valid YAML.
	if err := yaml.Unmarshal(data, &extract); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.Path, err)
	}
	return ConvertExtract(extract), nil
}

// EmbeddedSource reads the Extract compiled into the binary.
type EmbeddedSource struct {
	Data []byte
}

func (s EmbeddedSource) Name() string { return SourceEmbedded }

func (s EmbeddedSource) Load() ([]State, error) {
	var extract Extract
	if err := json.Unmarshal(s.Data, &extract); err != nil {
		return nil, fmt.Errorf("parse embedded dataset: %w", err)
	}
	return ConvertExtract(extract), nil
}

// SampleSource returns the built-in sample. It never fails.
type SampleSource struct{}

func (SampleSource) Name() string { return SourceSample }

func (SampleSource) Load() ([]State, error) {
	return sampleStates, nil
}

// DefaultSources is the fallback order: the configured file (if any), the
// embedded dataset, then the built-in sample.
func DefaultSources(dataFile string) []Source {
	sources := make([]Source, 0, 3)
	if dataFile != "" {
		sources = append(sources, FileSource{Path: dataFile})
	}
	return append(sources, EmbeddedSource{Data: embeddedExtract}, SampleSource{})
}

// Resolve returns a dataset from the first source that loads at least one
// state. Failing sources are logged and skipped; the sample is used when all fail.
func Resolve(ctx context.Context, sources ...Source) *Dataset {
	log := logger.FromContext(ctx)

	for _, src := range sources {
		states, err := src.Load()
		if err == nil && len(states) == 0 {
			err = ErrEmptyDataset
		}
		if err != nil {
			log.Warn("geography source skipped", "source", src.Name(), "error", err)
			continue
		}
		log.Info("geography loaded", "source", src.Name(), "states", len(states))
		return NewDataset(src.Name(), states)
	}

	log.Warn("no geography source loaded, using built-in sample")
	return Sample()
}
