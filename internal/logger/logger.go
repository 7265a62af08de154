// Package logger is the process-wide structured log. Records go to a
// rotating file under the config dir; stderr gets a copy only with --debug
// so the TUI is never drawn over.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rahulraj-lab/Focus-flow/internal/constants"
)

// Logger is nil until Init runs; the package helpers are no-ops before that.
var Logger *log.Logger

type Config struct {
	Debug     bool
	ConfigDir string
	// Output replaces the rotating file when set.
	Output io.Writer
}

// Init builds Logger from cfg. Without debug only warnings and errors are kept.
func Init(cfg Config) error {
	sink, err := sinkFor(cfg)
	if err != nil {
		return err
	}
	if cfg.Debug {
		sink = io.MultiWriter(os.Stderr, sink)
	}

	Logger = log.NewWithOptions(sink, log.Options{
		Level:           levelFor(cfg.Debug),
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Prefix:          constants.AppName,
	})
	return nil
}

func sinkFor(cfg Config) (io.Writer, error) {
	if cfg.Output != nil {
		return cfg.Output, nil
	}
	dir := filepath.Join(cfg.ConfigDir, "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, constants.AppName+".log"),
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}, nil
}

func levelFor(debug bool) log.Level {
	if debug {
		return log.DebugLevel
	}
	return log.WarnLevel
}

func Debug(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}
