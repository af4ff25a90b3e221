package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipp01105/tzlog/config"
	"github.com/philipp01105/tzlog/core"
	"github.com/philipp01105/tzlog/logger"
)

func newEmitCommand(ctx *commandContext) *cobra.Command {
	var (
		backend   string
		levelName string
		target    string
		offset    offsetValue
		precision precisionValue
		count     int
	)

	cmd := &cobra.Command{
		Use:   "emit [message...]",
		Short: "Log messages through the configured backend",
		Long: "Log messages through one of the supported logging libraries with the\n" +
			"timezone-aware formatter installed. Flags override the configuration file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cfg := *loaded

			flags := cmd.Flags()
			if flags.Changed("backend") {
				cfg.Logger.Backend = strings.ToLower(strings.TrimSpace(backend))
			}
			if flags.Changed("target") {
				cfg.Logger.Target = target
			}
			if flags.Changed("offset") {
				cfg.Format.Offset = offset.String()
				cfg.Format.Timezone = ""
			}
			if flags.Changed("precision") {
				cfg.Format.Precision = precision.String()
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if count < 1 {
				return errors.New("--count must be at least 1")
			}

			level, ok := logger.LookupLevel(levelName)
			if !ok {
				return fmt.Errorf("unknown level %q", levelName)
			}
			if level > core.ErrorLevel {
				return fmt.Errorf("emit supports trace through error, got %s", level)
			}

			return emit(cmd, &cfg, level, messageFrom(args), count)
		},
	}

	cmd.Flags().StringVarP(&backend, "backend", "b", "", "Logging library: "+strings.Join(config.Backends, ", "))
	cmd.Flags().StringVarP(&levelName, "level", "l", "info", "Level of the emitted records")
	cmd.Flags().StringVarP(&target, "target", "t", "", "Record target")
	cmd.Flags().Var(&offset, "offset", "Fixed UTC offset as seconds or ±HH:MM")
	cmd.Flags().Var(&precision, "precision", "Fractional seconds: seconds, millis, micros or nanos")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of records to emit")
	return cmd
}

func messageFrom(args []string) string {
	if len(args) == 0 {
		return "hello from tzlog"
	}
	return strings.Join(args, " ")
}

func emit(cmd *cobra.Command, cfg *config.Config, level core.Level, msg string, count int) error {
	f, err := cfg.Formatter()
	if err != nil {
		return err
	}
	minLevel, err := cfg.Level()
	if err != nil {
		return err
	}

	out := &sink{w: cmd.OutOrStdout()}
	e, err := newEmitter(cfg.Logger.Backend, f, out, minLevel, cfg.Logger.Target)
	if err != nil {
		return err
	}

	for i := 1; i <= count; i++ {
		if count > 1 {
			e.Emit(level, msg, core.Int64("seq", int64(i)))
			continue
		}
		e.Emit(level, msg)
	}

	if err := e.Close(); err != nil {
		return fmt.Errorf("%s backend: %w", cfg.Logger.Backend, err)
	}
	if out.err != nil {
		return fmt.Errorf("%s backend: %w", cfg.Logger.Backend, out.err)
	}
	return nil
}
