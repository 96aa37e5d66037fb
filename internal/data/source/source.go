package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/penwyp/go-carbon-monitor/internal/util"
)

// LogSource is the scheduler log file. It is owned by the scheduler and
// only ever read here.
type LogSource struct {
	path string
}

// Info describes the log file at the moment of a Stat call.
type Info struct {
	Path    string    `json:"path"`
	Exists  bool      `json:"exists"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"modTime"`
}

// NewLogSource creates a LogSource for path, made absolute when possible.
func NewLogSource(path string) *LogSource {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &LogSource{path: path}
}

// Path returns the absolute path of the log.
func (s *LogSource) Path() string {
	return s.path
}

// Stat reports size and modification time. A missing file is reported with
// Exists=false and no error.
func (s *LogSource) Stat() (Info, error) {
	info := Info{Path: s.path}

	fi, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			util.LogDebug(fmt.Sprintf("Log source missing: %s", s.path))
			return info, nil
		}
		return info, fmt.Errorf("failed to stat %s: %w", s.path, err)
	}
	if fi.IsDir() {
		return info, fmt.Errorf("log source %s is a directory", s.path)
	}

	info.Exists = true
	info.Size = fi.Size()
	info.ModTime = fi.ModTime()
	return info, nil
}
