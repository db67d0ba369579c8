// Package store loads club data (fee configuration, members, couple groups
// and the paid-month ledger) from YAML files. The reconciliation engine
// itself never touches the filesystem; this package is the boundary where
// externally owned club data enters the process.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"clubdues/internal/fees"
	"clubdues/internal/logging"
	"clubdues/internal/models"
)

// ClubData is the YAML shape of a club's reconciliation inputs.
type ClubData struct {
	Fees         fees.Config          `yaml:"fees"`
	Members      []models.Member      `yaml:"members"`
	CoupleGroups []models.CoupleGroup `yaml:"couple_groups"`

	// Ledger maps year -> member id -> paid months.
	Ledger map[int]map[int64][]int `yaml:"ledger"`
}

// FeeRates returns the normalized rate table, converting a legacy
// {regular, couple} configuration when no rate table is present.
func (d *ClubData) FeeRates() []models.FeeRate {
	return d.Fees.Normalize()
}

// PaidMonths returns the months a member has paid for a year. Implements
// the engine's PaymentLedger interface.
func (d *ClubData) PaidMonths(memberID int64, year int) []int {
	byMember, ok := d.Ledger[year]
	if !ok {
		return nil
	}
	return byMember[memberID]
}

// Store resolves and reads club data files.
type Store struct {
	logger logging.Logger
}

// NewStore creates a store. A nil logger falls back to the package default.
func NewStore(logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Store{logger: logger}
}

// FindConfigFile looks for a club data file in standard locations: the path
// itself, the current directory, ./config, and ~/.config/clubdues.
func (s *Store) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "clubdues", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// Load reads and parses a club data file.
func (s *Store) Load(filename string) (*ClubData, error) {
	path, err := s.FindConfigFile(filename)
	if err != nil {
		return nil, fmt.Errorf("club data file %q not found: %w", filename, err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading club data: %w", err)
	}

	var data ClubData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("error parsing club data: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(data.Members)},
	).Info("Loaded club data")

	return &data, nil
}
