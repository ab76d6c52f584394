package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Dosada05/tournament-scheduler/models"
	"gopkg.in/yaml.v3"
)

var (
	ErrDefinitionNotFound    = errors.New("tournament definition not found")
	ErrUnsupportedDefinition = errors.New("unsupported tournament definition file type")
)

// DefinitionSource loads tournament definitions by key.
type DefinitionSource interface {
	Load(ctx context.Context, key string) (*models.TournamentDefinition, error)
}

// FileSource reads .json, .yaml and .yml definitions relative to a base directory.
type FileSource struct {
	baseDir string
}

func NewFileSource(baseDir string) *FileSource {
	if baseDir == "" {
		baseDir = "."
	}
	return &FileSource{baseDir: baseDir}
}

func (s *FileSource) Path(key string) string {
	if filepath.IsAbs(key) {
		return key
	}
	return filepath.Join(s.baseDir, key)
}

func (s *FileSource) Load(ctx context.Context, key string) (*models.TournamentDefinition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := s.Path(key)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDefinitionNotFound, path)
		}
		return nil, fmt.Errorf("failed to read definition %s: %w", path, err)
	}

	def, err := DecodeDefinition(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("definition %s: %w", path, err)
	}
	if def.Name == "" {
		def.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return def, nil
}

// DecodeDefinition parses data by file extension and normalizes the
// format and seeding enumerations.
func DecodeDefinition(ext string, data []byte) (*models.TournamentDefinition, error) {
	var def models.TournamentDefinition
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDefinition, ext)
	}

	format, err := models.ParseTournamentFormat(string(def.Format))
	if err != nil {
		return nil, err
	}
	def.Format = format

	if def.Config.Seeding != "" {
		seeding, err := models.ParseSeedingPolicy(string(def.Config.Seeding))
		if err != nil {
			return nil, err
		}
		def.Config.Seeding = seeding
	}
	return &def, nil
}
