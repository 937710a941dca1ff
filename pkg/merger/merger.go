package merger

import (
	"errors"
	"fmt"

	"github.com/aymanbagabas/go-udiff"
	"github.com/blackcoderx/postman-merge/pkg/collection"
	"github.com/blackcoderx/postman-merge/pkg/sections"
	"github.com/blackcoderx/postman-merge/pkg/storage"
	"go.uber.org/zap"
)

// Merger merges candidate sections into collection files, one file at a time.
type Merger struct {
	logger   *zap.Logger
	indent   string
	dryRun   bool
	callback EventCallback
}

// Option configures a Merger.
type Option func(*Merger)

// WithLogger sets the diagnostics logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Merger) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithIndent sets the indentation used when a file is rewritten.
func WithIndent(indent string) Option {
	return func(m *Merger) { m.indent = indent }
}

// WithDryRun makes the merger report a diff instead of writing files.
func WithDryRun(dryRun bool) Option {
	return func(m *Merger) { m.dryRun = dryRun }
}

// WithEventCallback sets the function that receives progress events.
func WithEventCallback(callback EventCallback) Option {
	return func(m *Merger) { m.callback = callback }
}

// New creates a Merger.
func New(opts ...Option) *Merger {
	m := &Merger{
		logger: zap.NewNop(),
		indent: collection.DefaultIndent,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Apply appends every candidate whose name is not already used by a top-level
// section of doc. Candidates are appended unmodified, after all existing
// sections, in candidate order. It reports whether doc changed.
func Apply(doc *collection.Document, candidates []collection.Value) ([]SectionResult, bool) {
	present := make(map[string]bool)
	for _, name := range doc.SectionNames() {
		present[name] = true
	}

	results := make([]SectionResult, 0, len(candidates))
	changed := false
	for _, candidate := range candidates {
		name, _ := candidate.Name()
		if present[name] {
			results = append(results, SectionResult{Name: name, Outcome: Exists})
			continue
		}

		doc.AppendSection(candidate)
		// A repeated candidate name must not be appended twice
		present[name] = true
		changed = true
		results = append(results, SectionResult{Name: name, Outcome: Added})
	}

	return results, changed
}

// Run validates the candidates, then merges them into each path in order. A
// failure on one file never stops the others; only invalid candidates abort
// the run, before any file is read.
func (m *Merger) Run(paths []string, candidates []collection.Value) (*Summary, error) {
	if err := sections.Validate(candidates); err != nil {
		return nil, fmt.Errorf("invalid candidate sections: %w", err)
	}

	summary := &Summary{}
	for _, path := range paths {
		result := m.MergeFile(path, candidates)
		summary.Files = append(summary.Files, result)

		switch {
		case result.Err != nil:
			summary.Failed++
		case result.Written:
			summary.Updated++
		case result.Changed:
			summary.Pending++
		default:
			summary.Unchanged++
		}
	}

	m.logger.Debug("merge run finished",
		zap.Int("files", len(paths)),
		zap.Int("updated", summary.Updated),
		zap.Int("pending", summary.Pending),
		zap.Int("unchanged", summary.Unchanged),
		zap.Int("failed", summary.Failed))
	m.emit(Event{Type: EventDone, Summary: summary})

	return summary, nil
}

// MergeFile reads path, appends the missing candidates and writes the file
// back if anything was appended. Errors are returned in the result, never
// raised.
func (m *Merger) MergeFile(path string, candidates []collection.Value) FileResult {
	result := FileResult{Path: path}
	logger := m.logger.With(zap.String("path", path))

	doc, original, err := storage.LoadCollection(path)
	if err != nil {
		result.Err = err
		if errors.Is(err, storage.ErrNotFound) {
			logger.Debug("collection not found")
			m.emit(Event{Type: EventNotFound, Path: path, Err: err})
		} else {
			logger.Debug("failed to load collection", zap.Error(err))
			m.emit(Event{Type: EventError, Path: path, Err: err})
		}
		return result
	}

	logger.Debug("collection loaded",
		zap.Int("bytes", len(original)),
		zap.Int("sections", len(doc.Sections())))

	result.Sections, result.Changed = Apply(doc, candidates)
	for _, s := range result.Sections {
		eventType := EventSectionExists
		if s.Outcome == Added {
			eventType = EventSectionAdded
		}
		m.emit(Event{Type: eventType, Path: path, Section: s.Name})
	}

	if !result.Changed {
		m.emit(Event{Type: EventUnchanged, Path: path})
		return result
	}

	data, err := doc.Encode(m.indent)
	if err != nil {
		result.Err = fmt.Errorf("failed to encode collection: %w", err)
		m.emit(Event{Type: EventError, Path: path, Err: result.Err})
		return result
	}

	if m.dryRun {
		result.Diff = generateDiff(path, string(original), string(data))
		m.emit(Event{Type: EventDiff, Path: path, Diff: result.Diff})
		return result
	}

	if err := storage.SaveCollection(path, data); err != nil {
		result.Err = err
		logger.Debug("failed to save collection", zap.Error(err))
		m.emit(Event{Type: EventError, Path: path, Err: err})
		return result
	}

	result.Written = true
	logger.Debug("collection saved", zap.Int("bytes", len(data)))
	m.emit(Event{Type: EventSaved, Path: path})

	return result
}

func (m *Merger) emit(ev Event) {
	if m.callback != nil {
		m.callback(ev)
	}
}

// generateDiff creates a unified diff between original and new content.
func generateDiff(filename, original, modified string) string {
	edits := udiff.Strings(original, modified)
	unified, err := udiff.ToUnified("a/"+filename, "b/"+filename, original, edits, 3)
	if err != nil {
		return fmt.Sprintf("--- a/%s\n+++ b/%s\n(diff generation failed)\n", filename, filename)
	}
	return unified
}
