// Package logic runs user input end to end: parse, execute, log and record.
package logic

import (
	"context"
	"errors"
	"time"

	"scrolls/internal/commands"
	"scrolls/internal/core"
	"scrolls/internal/metrics"
	"scrolls/pkg/domain"
)

const unparsedCommand = "unparsed"

// Parser turns one input line into a command. *parser.Parser implements it.
type Parser interface {
	Parse(input string) (commands.Command, error)
}

// Manager executes input lines against a model.
type Manager struct {
	parser   Parser
	model    commands.Model
	logger   core.Logger
	recorder metrics.Recorder
	now      func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger. *slog.Logger satisfies core.Logger.
func WithLogger(logger core.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(recorder metrics.Recorder) Option {
	return func(m *Manager) {
		if recorder != nil {
			m.recorder = recorder
		}
	}
}

// NewManager wires a parser and a model.
func NewManager(parser Parser, model commands.Model, opts ...Option) *Manager {
	m := &Manager{
		parser:   parser,
		model:    model,
		logger:   core.NoopLogger{},
		recorder: metrics.Nop{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.recordState()
	return m
}

// Execute parses input and runs the resulting command.
func (m *Manager) Execute(ctx context.Context, input string) (commands.Result, error) {
	start := m.now()
	cmd, err := m.parser.Parse(input)
	if err != nil {
		m.logger.Debug("parse failed", "input", input, "error", err)
		m.recorder.RecordCommand(unparsedCommand, metrics.StatusParseError, m.now().Sub(start))
		return commands.Result{}, err
	}

	res, err := cmd.Execute(ctx, m.model)
	elapsed := m.now().Sub(start)
	if err != nil {
		status := metrics.StatusFailed
		var violation domain.RuleViolationError
		if errors.As(err, &violation) {
			status = metrics.StatusRuleBlocked
			m.logger.Error("command blocked by rules", "command", cmd.Word(), "error", err)
		} else {
			m.logger.Info("command failed", "command", cmd.Word(), "error", err)
		}
		m.recorder.RecordCommand(cmd.Word(), status, elapsed)
		return commands.Result{}, err
	}

	m.logger.Debug("command executed", "command", cmd.Word(), "duration", elapsed)
	m.recorder.RecordCommand(cmd.Word(), metrics.StatusOK, elapsed)
	m.recordState()
	return res, nil
}

// Datastore returns a read-only view of the model's live state.
func (m *Manager) Datastore() domain.ReadOnlyDatastore { return m.model.Datastore() }

func (m *Manager) recordState() {
	ds := m.model.Datastore()
	m.recorder.RecordState(len(ds.PersonStore().PersonList()), len(ds.LogStore().LogList()))
}
