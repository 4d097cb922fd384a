package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// FileRotator writes to a log file and rotates it when it exceeds the
// configured size, keeping a bounded number of timestamped backups.
type FileRotator struct {
	mu         sync.Mutex
	path       string
	maxBytes   int64
	maxBackups int
	file       *os.File
	size       int64
}

// NewFileRotator opens the configured log file for appending, creating
// parent directories as needed.
func NewFileRotator(cfg *Config) (*FileRotator, error) {
	if cfg.FilePath == "" {
		return nil, fmt.Errorf("log file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	r := &FileRotator{
		path:       cfg.FilePath,
		maxBytes:   cfg.MaxSizeMB * 1024 * 1024,
		maxBackups: cfg.MaxBackups,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileRotator) open() error {
	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	r.file = f
	r.size = info.Size()
	return nil
}

// Write appends to the log file, rotating first if the write would push
// the file past the size limit.
func (r *FileRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.maxBytes > 0 && r.size+int64(len(p)) > r.maxBytes {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// rotate renames the current file with a timestamp suffix and opens a
// fresh one. Caller holds the mutex.
func (r *FileRotator) rotate() error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}

	stamp := time.Now().Format("20060102-150405")
	backup := fmt.Sprintf("%s.%s", r.path, stamp)
	if err := os.Rename(r.path, backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}

	if err := r.open(); err != nil {
		return err
	}

	r.pruneBackups()
	return nil
}

// pruneBackups removes the oldest backups beyond the retention limit.
// Prune failures are ignored, rotation already succeeded.
func (r *FileRotator) pruneBackups() {
	if r.maxBackups <= 0 {
		return
	}

	dir := filepath.Dir(r.path)
	base := filepath.Base(r.path)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var backups []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if name != base && strings.HasPrefix(name, base+".") {
			backups = append(backups, name)
		}
	}
	if len(backups) <= r.maxBackups {
		return
	}

	// Timestamp suffixes sort chronologically.
	sort.Strings(backups)
	for _, name := range backups[:len(backups)-r.maxBackups] {
		os.Remove(filepath.Join(dir, name))
	}
}

// Close closes the underlying log file.
func (r *FileRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
