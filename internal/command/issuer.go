package command

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
)

// LineWriter receives encoded commands, one line per call.
type LineWriter interface {
	WriteLine(text string) error
}

// WriterSink adapts an io.Writer into a LineWriter.
type WriterSink struct {
	W io.Writer
}

// WriteLine writes text followed by a newline in a single Write call.
func (s WriterSink) WriteLine(text string) error {
	_, err := io.WriteString(s.W, text+"\n")
	return err
}

// Issuer encodes commands and hands each one to a LineWriter.
//
// Issuing an unconventional command logs a warning first; the command is
// still written unchanged.
type Issuer struct {
	sink   LineWriter
	logger *slog.Logger
}

type discardSink struct{}

func (discardSink) WriteLine(string) error { return nil }

// NewIssuer creates an Issuer. A nil sink discards commands and a nil logger
// discards warnings.
func NewIssuer(sink LineWriter, logger *slog.Logger) *Issuer {
	if sink == nil {
		sink = discardSink{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Issuer{sink: sink, logger: logger}
}

// Issue writes a command without properties.
func (i *Issuer) Issue(name string, payload any) error {
	return i.IssueCommand(name, nil, payload)
}

// IssueCommand writes a command with the given properties and payload.
func (i *Issuer) IssueCommand(name string, props Properties, payload any) error {
	cmd := New(name, props, payload)
	if !cmd.Conventional() {
		i.logger.Warn("issuing unconventional command", "command", name)
	}
	if err := i.sink.WriteLine(cmd.String()); err != nil {
		return fmt.Errorf("writing %s command: %w", name, err)
	}
	return nil
}

// AnnotationProperties locate an annotation in the repository.
// Zero-valued fields are omitted from the rendered command.
type AnnotationProperties struct {
	Title       string
	File        string
	StartLine   int
	EndLine     int
	StartColumn int
	EndColumn   int
}

// Properties renders the annotation in the order the orchestrator documents:
// title, file, line, endLine, col, endColumn.
func (a AnnotationProperties) Properties() Properties {
	var props Properties
	if a.Title != "" {
		props = append(props, Property{Key: "title", Value: a.Title})
	}
	if a.File != "" {
		props = append(props, Property{Key: "file", Value: a.File})
	}
	ints := []struct {
		key string
		val int
	}{
		{"line", a.StartLine},
		{"endLine", a.EndLine},
		{"col", a.StartColumn},
		{"endColumn", a.EndColumn},
	}
	for _, p := range ints {
		if p.val > 0 {
			props = append(props, Property{Key: p.key, Value: strconv.Itoa(p.val)})
		}
	}
	return props
}

// Debug writes a debug message.
func (i *Issuer) Debug(message string) error {
	return i.Issue(Debug, message)
}

// Notice writes a notice annotation.
func (i *Issuer) Notice(message any, a AnnotationProperties) error {
	return i.IssueCommand(Notice, a.Properties(), message)
}

// Warning writes a warning annotation.
func (i *Issuer) Warning(message any, a AnnotationProperties) error {
	return i.IssueCommand(Warning, a.Properties(), message)
}

// Error writes an error annotation.
func (i *Issuer) Error(message any, a AnnotationProperties) error {
	return i.IssueCommand(Error, a.Properties(), message)
}

// Group starts a collapsible output group.
func (i *Issuer) Group(name string) error {
	return i.Issue(Group, name)
}

// EndGroup closes the current output group.
func (i *Issuer) EndGroup() error {
	return i.Issue(EndGroup, nil)
}

// AddMask registers secret so the orchestrator masks it in logs.
func (i *Issuer) AddMask(secret string) error {
	return i.Issue(AddMask, secret)
}

// Echo toggles echoing of commands by the orchestrator.
func (i *Issuer) Echo(enabled bool) error {
	if enabled {
		return i.Issue(Echo, "on")
	}
	return i.Issue(Echo, "off")
}
