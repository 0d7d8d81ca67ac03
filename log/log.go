// Package log configures the global zerolog logger from the application
// configuration.
package log

import (
	"io"
	"path/filepath"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/layerfs/layerfs/config"
)

const FileName = "layerfs.log"

// Load sets up the global logger: colored console output, plus a rotated
// log file when a log path is configured.
func Load(cfg *config.Log) {
	if cfg == nil {
		cfg = config.DefaultConfig().Log
	}

	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        colorable.NewColorableStdout(),
		TimeFormat: time.RFC3339,
	}

	writers := []io.Writer{console}
	if cfg.Path != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Path, FileName),
			MaxBackups: cfg.MaxBackups,
			MaxSize:    cfg.MaxSize,
			MaxAge:     cfg.MaxAge,
		})
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().Timestamp().Logger().Level(level)
}
