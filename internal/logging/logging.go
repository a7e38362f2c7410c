// Package logging builds the process logger: a standard log.Logger writing
// through a size-rotated file under the base directory.
package logging

import (
	"io"
	"log"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/hpungsan/pcbuild/internal/config"
)

// FileName is the log file path relative to the base directory.
var FileName = filepath.Join("logs", "pcbuild.log")

// Logger wraps a log.Logger with the rotating file behind it.
type Logger struct {
	*log.Logger
	file *lumberjack.Logger
}

// New returns a logger rooted at baseDir. When mirror is non-nil every line
// is also written there. With cfg.LogDisableFile set and no mirror, output
// is discarded.
func New(baseDir string, cfg *config.Config, mirror io.Writer) *Logger {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	var writers []io.Writer
	var file *lumberjack.Logger
	if !cfg.LogDisableFile {
		file = &lumberjack.Logger{
			Filename:   filepath.Join(baseDir, FileName),
			MaxSize:    cfg.LogMaxSizeMB, // megabytes
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAgeDays, // days
			Compress:   true,
		}
		writers = append(writers, file)
	}
	if mirror != nil {
		writers = append(writers, mirror)
	}

	var out io.Writer
	switch len(writers) {
	case 0:
		out = io.Discard
	case 1:
		out = writers[0]
	default:
		out = io.MultiWriter(writers...)
	}

	return &Logger{
		Logger: log.New(out, "pcbuild: ", log.LstdFlags),
		file:   file,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: log.New(io.Discard, "", 0)}
}

// Close closes the rotating file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
