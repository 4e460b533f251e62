// Package store persists run output to the data directory: one JSON file
// per station, an aggregate of all stations, and run metadata. Files are
// indented UTF-8 and overwritten in full on every run — no append, no
// versioning, no partial-write protection.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/config"
	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/provider"
)

// Metadata describes a completed run. Field names match the original data
// consumers, so they stay snake_case.
type Metadata struct {
	LastUpdated string   `json:"last_updated"`
	Stations    []string `json:"stations"`
	HoursOfData int      `json:"hours_of_data"`
}

// Store writes and reads the data directory.
type Store struct {
	dir string
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory path.
func (s *Store) Dir() string {
	return s.dir
}

// WriteStation writes one station's record to <station_id>.json.
func (s *Store) WriteStation(rec provider.Record) error {
	return s.writeJSON(rec.StationID+".json", rec)
}

// WriteAll writes the aggregate station_id -> record file.
func (s *Store) WriteAll(all map[string]provider.Record) error {
	return s.writeJSON(config.AllStationsFile, all)
}

// WriteMetadata writes the run metadata file.
func (s *Store) WriteMetadata(meta Metadata) error {
	return s.writeJSON(config.MetadataFile, meta)
}

// ReadStation returns the raw bytes of one station's file.
func (s *Store) ReadStation(siteID string) ([]byte, error) {
	return s.readFile(siteID + ".json")
}

// ReadAll returns the raw bytes of the aggregate file.
func (s *Store) ReadAll() ([]byte, error) {
	return s.readFile(config.AllStationsFile)
}

// ReadMetadata returns the raw bytes of the metadata file.
func (s *Store) ReadMetadata() ([]byte, error) {
	return s.readFile(config.MetadataFile)
}

func (s *Store) writeJSON(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (s *Store) readFile(name string) ([]byte, error) {
	// Keep reads inside the data dir even if a caller passes path-ish input.
	if strings.Contains(name, "/") || strings.Contains(name, "\\") || strings.Contains(name, "..") {
		return nil, fmt.Errorf("invalid file name %q", name)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}
