package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/riskibarqy/cricket-club/internal/domain/fixture"
)

type fallbackFile struct {
	Fixtures []fixture.Template `yaml:"fixtures"`
}

// loadFallbackTemplates reads the demo fixture templates. An empty path keeps
// the built-in set.
func loadFallbackTemplates(path string) ([]fixture.Template, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fallback fixtures file: %w", err)
	}
	return parseFallbackTemplates(raw)
}

func parseFallbackTemplates(raw []byte) ([]fixture.Template, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)

	var file fallbackFile
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode fallback fixtures: %w", err)
	}
	if len(file.Fixtures) == 0 {
		return nil, fmt.Errorf("fallback fixtures file has no fixtures")
	}
	// Materialize once so bad kickoff times fail at startup instead of per request.
	if _, err := fixture.Materialize(file.Fixtures, "validation", time.Now()); err != nil {
		return nil, fmt.Errorf("validate fallback fixtures: %w", err)
	}

	return file.Fixtures, nil
}
