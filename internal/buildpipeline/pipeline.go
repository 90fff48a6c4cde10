// Package buildpipeline drives one compile invocation — load, analyze,
// emit — and reports its progress on a channel so the CLI can either wait
// on it directly or feed it to the bubbletea progress model in
// internal/ui. The pipeline itself stays single-threaded per spec §5; the
// channel only decouples progress reporting from the caller's own output.
package buildpipeline

import (
	"cinder/internal/backend/llvm"
	"cinder/internal/diag"
	"cinder/internal/project"
	"cinder/internal/sema"
	"cinder/internal/source"
)

// Stage identifies one step of the pipeline, used to label progress
// events and to pick a UI glyph/label in internal/ui.
type Stage uint8

const (
	StageParse Stage = iota
	StageDiagnose
	StageLower
	StageBuild
	StageLink
	StageRun
)

// Status is the state of one file at one stage.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event is one progress update, either scoped to a single file (File !=
// "") or to the pipeline as a whole (used to change the displayed stage
// label when File == "").
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

// Result is everything a caller needs after Run returns: the loaded
// units, the analyzer's final state, and the emitted IR (empty if the
// analysis failed).
type Result struct {
	Units   []*project.Unit
	Analyzer *sema.Analyzer
	IR      string
}

// Run loads entryPaths and their transitive imports from roots, analyzes
// the resulting module set, and emits textual IR if analysis produced no
// errors. Progress events are sent on events, if non-nil; Run always
// closes events before returning.
func Run(fs *source.FileSet, bag *diag.Bag, roots, entryPaths []string, events chan<- Event) (*Result, error) {
	if events != nil {
		defer close(events)
	}
	emit := func(file string, stage Stage, status Status) {
		if events != nil {
			events <- Event{File: file, Stage: stage, Status: status}
		}
	}

	for _, p := range entryPaths {
		emit(p, StageParse, StatusQueued)
	}

	reporter := diag.BagReporter{Bag: bag, FS: fs}
	loader := project.NewLoader(fs, reporter, roots)

	for _, p := range entryPaths {
		emit(p, StageParse, StatusWorking)
	}
	units, err := loader.LoadEntries(entryPaths)
	if err != nil {
		for _, p := range entryPaths {
			emit(p, StageParse, StatusError)
		}
		return nil, err
	}
	for _, u := range units {
		emit(u.Path, StageParse, StatusDone)
	}

	for _, u := range units {
		emit(u.Path, StageDiagnose, StatusWorking)
	}
	analyzer := sema.New(fs, bag)
	analyzer.Analyze(units)
	for _, u := range units {
		if analyzer.HadError() {
			emit(u.Path, StageDiagnose, StatusError)
		} else {
			emit(u.Path, StageDiagnose, StatusDone)
		}
	}

	if analyzer.HadError() {
		return &Result{Units: units, Analyzer: analyzer}, nil
	}

	for _, u := range units {
		emit(u.Path, StageLower, StatusWorking)
	}
	ir := llvm.EmitModules(units, analyzer)
	for _, u := range units {
		emit(u.Path, StageLower, StatusDone)
	}

	return &Result{Units: units, Analyzer: analyzer, IR: ir}, nil
}
