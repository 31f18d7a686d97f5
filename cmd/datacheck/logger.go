package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type loggerConfig struct {
	level string
}

var loggerConfigInst = loggerConfig{
	level: zerolog.InfoLevel.String(),
}

func registerLoggerFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(
		&loggerConfigInst.level,
		"level",
		loggerConfigInst.level,
		"what level to log at - maps to zerolog.Level",
	)
}

// newLogger writes to the command's stderr so results on stdout stay clean.
func newLogger(cmd *cobra.Command) (zerolog.Logger, error) {
	logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = cmd.ErrOrStderr()
	})).With().Timestamp().Logger()
	lvl, err := zerolog.ParseLevel(loggerConfigInst.level)
	if err != nil {
		return logger, err
	}
	return logger.Level(lvl), nil
}
