package stream

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"runlog/internal/app/severity"
)

// AssertField marks an error-level record as a failed assertion
const AssertField = "assert"

// Fields consumed when building an event rather than copied into its detail
var reservedFields = map[string]bool{
	zerolog.LevelFieldName:     true,
	zerolog.MessageFieldName:   true,
	zerolog.TimestampFieldName: true,
	AssertField:                true,
}

type writer struct {
	hub Hub
}

// NewWriter returns a zerolog writer that republishes every JSON record on the hub
func NewWriter(hub Hub) zerolog.LevelWriter {
	return &writer{hub: hub}
}

// Write publishes a record whose level is read from the payload
func (w *writer) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel publishes a record; malformed payloads are published verbatim as info
func (w *writer) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	w.hub.Publish(parseRecord(level, p))

	return len(p), nil
}

// FromLevel maps a zerolog level onto the severity set
func FromLevel(level zerolog.Level) severity.Severity {
	switch level {
	case zerolog.WarnLevel:
		return severity.Warning
	case zerolog.ErrorLevel:
		return severity.Error
	case zerolog.FatalLevel, zerolog.PanicLevel:
		return severity.Exception
	default:
		return severity.Info
	}
}

func parseRecord(level zerolog.Level, p []byte) Event {
	var fields map[string]interface{}
	if err := json.Unmarshal(p, &fields); err != nil {
		return Event{
			Severity: FromLevel(level),
			Message:  strings.TrimRight(string(p), "\n"),
		}
	}

	if level == zerolog.NoLevel {
		if name, ok := fields[zerolog.LevelFieldName].(string); ok {
			if parsed, err := zerolog.ParseLevel(name); err == nil {
				level = parsed
			}
		}
	}

	event := Event{Severity: FromLevel(level)}

	if isAssert, _ := fields[AssertField].(bool); isAssert && event.Severity == severity.Error {
		event.Severity = severity.Assert
	}

	if msg, ok := fields[zerolog.MessageFieldName].(string); ok {
		event.Message = msg
	}

	event.Detail = formatDetail(fields)

	return event
}

// formatDetail renders the error and stack first, then remaining fields by name
func formatDetail(fields map[string]interface{}) string {
	var lines []string

	if errText, ok := fields[zerolog.ErrorFieldName]; ok {
		lines = append(lines, fmt.Sprintf("error: %v", errText))
	}

	if stack, ok := fields[zerolog.ErrorStackFieldName]; ok {
		lines = append(lines, formatStack(stack)...)
	}

	keys := make([]string, 0, len(fields))

	for k := range fields {
		if reservedFields[k] || k == zerolog.ErrorFieldName || k == zerolog.ErrorStackFieldName {
			continue
		}

		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s=%v", k, fields[k]))
	}

	return strings.Join(lines, "\n")
}

// formatStack renders a pkgerrors stack as "func (source:line)" frames
func formatStack(stack interface{}) []string {
	frames, ok := stack.([]interface{})
	if !ok {
		return []string{fmt.Sprintf("%v", stack)}
	}

	lines := make([]string, 0, len(frames))

	for _, frame := range frames {
		f, ok := frame.(map[string]interface{})
		if !ok {
			lines = append(lines, fmt.Sprintf("  %v", frame))
			continue
		}

		lines = append(lines, fmt.Sprintf("  %v (%v:%v)", f["func"], f["source"], f["line"]))
	}

	return lines
}
