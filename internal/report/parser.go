package report

import (
	"bytes"
	"encoding/json"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// timeLayouts are the ISO-8601 forms accepted for start_time / end_time.
// Layouts without a zone are read as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// record is a loosely typed JSON object. Every field is optional and decoded on its own.
type record map[string]json.RawMessage

// Parser reads a single result file. ok is false when the file must be skipped.
type Parser interface {
	Parse(path string) (file *ResultFile, ok bool)
}

type parser struct {
	log logrus.FieldLogger
}

// NewParser creates a new result file parser
func NewParser(log logrus.FieldLogger) Parser {
	return &parser{
		log: log.WithField("component", "parser"),
	}
}

func (p *parser) Parse(path string) (*ResultFile, bool) {
	log := p.log.WithField("file", path)

	data, err := os.ReadFile(path)
	if err != nil {
		log.WithError(err).Warn("failed to read result file, skipping")
		return nil, false
	}

	return p.parseBytes(log, path, data)
}

func (p *parser) parseBytes(log logrus.FieldLogger, path string, data []byte) (*ResultFile, bool) {
	if len(bytes.TrimSpace(data)) == 0 {
		log.Warn("result file is empty, skipping")
		return nil, false
	}

	if !json.Valid(data) {
		log.Warn("error decoding JSON from result file, skipping")
		return nil, false
	}

	file := &ResultFile{Path: path, Features: []FeatureRecord{}}

	var root record
	if err := json.Unmarshal(data, &root); err != nil {
		log.WithError(err).Warn("result file is not a JSON object, no scenarios taken from it")
		return file, true
	}

	file.Start = parseTimestamp(log, root, "start_time")
	file.End = parseTimestamp(log, root, "end_time")

	for i, raw := range decodeList(log, root, "features") {
		var feature record
		if err := json.Unmarshal(raw, &feature); err != nil {
			log.WithField("feature_index", i).Warn("feature entry is not an object, skipping")
			continue
		}

		file.Features = append(file.Features, decodeFeature(log.WithField("feature_index", i), feature))
	}

	return file, true
}

func decodeFeature(log logrus.FieldLogger, feature record) FeatureRecord {
	out := FeatureRecord{
		Name:      decodeString(log, feature, "name", DefaultFeatureName),
		Scenarios: []ScenarioRecord{},
	}

	for i, raw := range decodeList(log, feature, "scenarios") {
		var scenario record
		if err := json.Unmarshal(raw, &scenario); err != nil {
			log.WithField("scenario_index", i).Warn("scenario entry is not an object, skipping")
			continue
		}

		out.Scenarios = append(out.Scenarios, decodeScenario(log.WithField("scenario_index", i), scenario))
	}

	return out
}

func decodeScenario(log logrus.FieldLogger, scenario record) ScenarioRecord {
	out := ScenarioRecord{
		Name:     decodeString(log, scenario, "name", DefaultScenarioName),
		Status:   Status(decodeString(log, scenario, "status", string(StatusUnknown))),
		Tags:     decodeTags(log, scenario),
		Duration: DefaultDuration,
	}

	if raw, ok := present(scenario, "duration"); ok {
		var d float64
		switch err := json.Unmarshal(raw, &d); {
		case err != nil:
			log.WithField("field", "duration").Warn("duration is not a number, defaulting to 0")
		case d < 0:
			log.WithField("duration", d).Warn("negative duration, defaulting to 0")
		default:
			out.Duration = d
		}
	}

	return out
}

// present reports whether key exists and is not JSON null.
func present(r record, key string) (json.RawMessage, bool) {
	raw, ok := r[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, false
	}
	return raw, true
}

func decodeString(log logrus.FieldLogger, r record, key, def string) string {
	raw, ok := present(r, key)
	if !ok {
		log.WithField("field", key).Debugf("missing field, defaulting to %q", def)
		return def
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil || s == "" {
		log.WithField("field", key).Warnf("field is not a non-empty string, defaulting to %q", def)
		return def
	}

	return s
}

func decodeList(log logrus.FieldLogger, r record, key string) []json.RawMessage {
	raw, ok := present(r, key)
	if !ok {
		return nil
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		log.WithField("field", key).Warn("field is not a list, ignoring")
		return nil
	}

	return list
}

func decodeTags(log logrus.FieldLogger, scenario record) []string {
	tags := []string{}

	for _, raw := range decodeList(log, scenario, "tags") {
		var tag *string
		if err := json.Unmarshal(raw, &tag); err != nil || tag == nil {
			log.WithField("tag", string(raw)).Warn("tag is not a string, dropping")
			continue
		}
		tags = append(tags, *tag)
	}

	return tags
}

func parseTimestamp(log logrus.FieldLogger, r record, key string) *time.Time {
	raw, ok := present(r, key)
	if !ok {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		log.WithField("field", key).Warn("timestamp is not a string, ignoring")
		return nil
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}

	log.WithFields(logrus.Fields{"field": key, "value": s}).Warn("error parsing timestamp, ignoring")

	return nil
}

// Compile-time interface compliance check
var _ Parser = (*parser)(nil)
