// Package merger appends missing sections to collection files. A section is
// missing when no top-level section of the file has the same name; sections
// that already exist are never touched.
package merger

// Outcome is what happened to one candidate section in one file.
type Outcome int

const (
	// Added means the candidate was appended to the document.
	Added Outcome = iota
	// Exists means a section with the same name was already present.
	Exists
)

func (o Outcome) String() string {
	if o == Added {
		return "added"
	}
	return "exists"
}

// SectionResult records the outcome for a single candidate.
type SectionResult struct {
	Name    string
	Outcome Outcome
}

// FileResult is the result of merging candidates into one file.
type FileResult struct {
	// Path is the target file
	Path string
	// Sections has one entry per candidate, in candidate order. Empty when the
	// file could not be loaded.
	Sections []SectionResult
	// Changed is true when at least one candidate was appended
	Changed bool
	// Written is true when the file was overwritten (never in dry-run mode)
	Written bool
	// Diff is the unified diff of the change, filled in dry-run mode only
	Diff string
	// Err is the per-file failure, if any
	Err error
}

// Summary aggregates a run over several files. Updated counts files that were
// rewritten; Pending counts files a dry run would have rewritten.
type Summary struct {
	Files     []FileResult
	Updated   int
	Pending   int
	Unchanged int
	Failed    int
}

// Event types emitted while merging.
const (
	EventSectionAdded  = "section_added"
	EventSectionExists = "section_exists"
	EventSaved         = "saved"
	EventUnchanged     = "unchanged"
	EventDiff          = "diff"
	EventNotFound      = "not_found"
	EventError         = "error"
	EventDone          = "done"
)

// Event is a progress notification. Path is set for every type except
// EventDone; Section only for the section events; Diff only for EventDiff;
// Err only for EventNotFound and EventError.
type Event struct {
	Type    string
	Path    string
	Section string
	Diff    string
	Err     error
	// Summary is set on EventDone
	Summary *Summary
}

// EventCallback receives events as files are processed.
type EventCallback func(Event)
