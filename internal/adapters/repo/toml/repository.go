package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/ignite-timer/internal/domain"
	"github.com/bnema/ignite-timer/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	statePathKey    = "state.path"
	stateFileMode   = 0o600
	stateDirMode    = 0o700
	stateConfigDir  = ".ignite-timer"
	stateFileName   = "cycles-state.toml"
	tempFilePattern = ".cycles-state-*.toml.tmp"
)

type Repository struct {
	statePath string
	mu        *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.CycleStateRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	statePath := cfg.GetString(statePathKey)
	if statePath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		statePath = filepath.Join(homeDir, stateConfigDir, stateFileName)
	}

	statePath, err := normalizeStatePath(statePath)
	if err != nil {
		return nil, err
	}

	return &Repository{statePath: statePath, mu: lockForPath(statePath)}, nil
}

func (r *Repository) Path() string {
	return r.statePath
}

func (r *Repository) Load(ctx context.Context) (domain.CyclesState, error) {
	if err := ctx.Err(); err != nil {
		return domain.CyclesState{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.CyclesState{}, err
	}

	return fromSchema(file)
}

func (r *Repository) Save(ctx context.Context, state domain.CyclesState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.writeSchema(toSchema(state))
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.statePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read cycles file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode cycles file: %w: %v", domain.ErrMalformedState, err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.statePath), stateDirMode); err != nil {
		return fmt.Errorf("create cycles directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode cycles file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.statePath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp cycles file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp cycles file: %w", err)
	}

	if err := tempFile.Chmod(stateFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp cycles file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp cycles file: %w", err)
	}

	if err := os.Rename(tempName, r.statePath); err != nil {
		return fmt.Errorf("replace cycles file: %w", err)
	}

	cleanup = false

	return nil
}

func normalizeStatePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve cycles path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(state domain.CyclesState) fileSchema {
	file := fileSchema{
		Version:       currentSchemaVersion,
		ActiveCycleID: string(state.ActiveCycleID),
		Cycles:        make([]cycleSchema, 0, len(state.Cycles)),
	}

	for _, cycle := range state.Cycles {
		file.Cycles = append(file.Cycles, cycleSchema{
			ID:              string(cycle.ID),
			Task:            cycle.Task,
			MinutesAmount:   cycle.MinutesAmount,
			StartDate:       formatTime(cycle.StartDate),
			InterruptedDate: formatOptionalTime(cycle.InterruptedDate),
			FinishedDate:    formatOptionalTime(cycle.FinishedDate),
		})
	}

	return file
}

func fromSchema(file fileSchema) (domain.CyclesState, error) {
	state := domain.EmptyState()
	state.ActiveCycleID = domain.CycleID(file.ActiveCycleID)

	for i, entry := range file.Cycles {
		if entry.ID == "" {
			return domain.CyclesState{}, fmt.Errorf("%w: cycle %d has no id", domain.ErrMalformedState, i)
		}

		startDate, err := parseTime(entry.StartDate)
		if err != nil {
			return domain.CyclesState{}, fmt.Errorf("%w: cycle %s start date: %v", domain.ErrMalformedState, entry.ID, err)
		}
		interruptedDate, err := parseOptionalTime(entry.InterruptedDate)
		if err != nil {
			return domain.CyclesState{}, fmt.Errorf("%w: cycle %s interrupted date: %v", domain.ErrMalformedState, entry.ID, err)
		}
		finishedDate, err := parseOptionalTime(entry.FinishedDate)
		if err != nil {
			return domain.CyclesState{}, fmt.Errorf("%w: cycle %s finished date: %v", domain.ErrMalformedState, entry.ID, err)
		}

		state.Cycles = append(state.Cycles, domain.Cycle{
			ID:              domain.CycleID(entry.ID),
			Task:            entry.Task,
			MinutesAmount:   entry.MinutesAmount,
			StartDate:       startDate,
			InterruptedDate: interruptedDate,
			FinishedDate:    finishedDate,
		})
	}

	return state, nil
}

func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	return time.Parse(time.RFC3339Nano, raw)
}

func parseOptionalTime(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339Nano)
}

func formatOptionalTime(value *time.Time) string {
	if value == nil {
		return ""
	}

	return formatTime(*value)
}
