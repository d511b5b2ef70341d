package config

import (
	"fmt"
	"strings"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/qdm12/log"
)

type Logger struct {
	Caller *bool
	Level  *log.Level
}

func (l *Logger) setDefaults() {
	l.Caller = gosettings.DefaultPointer(l.Caller, false)
	l.Level = gosettings.DefaultPointer(l.Level, log.LevelInfo)
}

func (l Logger) Validate() (err error) {
	return nil
}

func (l Logger) String() string {
	return l.toLinesNode().String()
}

func (l Logger) toLinesNode() *gotree.Node {
	node := gotree.New("Logger")
	node.Appendf("Level: %s", *l.Level)
	caller := "hidden"
	if *l.Caller {
		caller = "short"
	}
	node.Appendf("Caller: %s", caller)
	return node
}

// ToOptions assumes the settings have defaults set.
func (l Logger) ToOptions() (options []log.Option) {
	return []log.Option{
		log.SetLevel(*l.Level),
		log.SetCallerFile(*l.Caller),
	}
}

func (l *Logger) read(r *reader.Reader) (err error) {
	l.Caller, err = readLogCaller(r)
	if err != nil {
		return err
	}

	l.Level, err = readLogLevel(r)
	if err != nil {
		return err
	}

	return nil
}

func readLogCaller(r *reader.Reader) (caller *bool, err error) {
	s := r.String("LOG_CALLER")
	switch s {
	case "":
		return nil, nil //nolint:nilnil
	case "hidden":
		return ptrTo(false), nil
	case "short":
		return ptrTo(true), nil
	default:
		return nil, fmt.Errorf("environment variable LOG_CALLER: %w: "+
			`%q must be one of "hidden" or "short"`,
			ErrLogCallerNotValid, s)
	}
}

func readLogLevel(r *reader.Reader) (level *log.Level, err error) {
	s := r.String("LOG_LEVEL")
	if s == "" {
		return nil, nil //nolint:nilnil
	}

	parsedLevel, err := parseLogLevel(s)
	if err != nil {
		return nil, fmt.Errorf("environment variable LOG_LEVEL: %w", err)
	}

	return &parsedLevel, nil
}

func parseLogLevel(s string) (level log.Level, err error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	default:
		return level, fmt.Errorf(
			"%w: %q is not valid and can be one of debug, info, warning or error",
			ErrLogLevelUnknown, s)
	}
}

func ptrTo[T any](value T) *T { return &value }
