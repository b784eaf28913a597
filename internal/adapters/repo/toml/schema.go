package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version       int           `toml:"version"`
	ActiveCycleID string        `toml:"active_cycle_id"`
	Cycles        []cycleSchema `toml:"cycles"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported cycles schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type cycleSchema struct {
	ID              string `toml:"id"`
	Task            string `toml:"task"`
	MinutesAmount   int    `toml:"minutes_amount"`
	StartDate       string `toml:"start_date"`
	InterruptedDate string `toml:"interrupted_date,omitempty"`
	FinishedDate    string `toml:"finished_date,omitempty"`
}
