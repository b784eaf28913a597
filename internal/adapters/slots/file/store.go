package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/ignite-timer/internal/domain"
	"github.com/bnema/ignite-timer/internal/ports"
)

const (
	slotDirMode  = 0o700
	slotFileMode = 0o600
	tempPattern  = ".slot-*.tmp"
)

// Store keeps one file per slot key under root.
type Store struct {
	root string
	mu   sync.RWMutex
}

var _ ports.SlotStore = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, slotDirMode); err != nil {
		return fmt.Errorf("create slot directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return fmt.Errorf("create temp slot file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.WriteString(value); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write slot %q: %w", key, err)
	}
	if err := tempFile.Chmod(slotFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod slot %q: %w", key, err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close slot %q: %w", key, err)
	}
	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace slot %q: %w", key, err)
	}
	cleanup = false

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("slot %q: %w", key, domain.ErrSlotNotFound)
		}
		return "", fmt.Errorf("read slot %q: %w", key, err)
	}

	return string(data), nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete slot %q: %w", key, err)
	}

	return nil
}

func (s *Store) pathForKey(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", errors.New("slot key is empty")
	}

	cleaned := filepath.Clean(trimmed)
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") || cleaned == "." {
		return "", fmt.Errorf("invalid slot key %q", key)
	}

	return filepath.Join(s.root, cleaned), nil
}
