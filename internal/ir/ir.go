// Package ir defines the format-agnostic intermediate representation the
// core consumes (spec §6). Producing a Workflow value is the front-end's
// job — config parsing, schema validation, and the ROOT-template merge all
// happen before a value of this type exists; the core only reads it.
//
// Grounded on the teacher's internal/config.Model/Grid/Step/Resource family
// (internal/config/model.go), which plays the identical role of a validated,
// parser-independent configuration tree consumed by the graph builder.
package ir

import (
	"github.com/vk/workgraph/internal/temporal"
	"github.com/zclconf/go-cty/cty"
)

// Workflow is the root of the IR (spec §6).
type Workflow struct {
	StartDate  temporal.Date
	StopDate   temporal.Date
	Cycles     []Cycle
	Tasks      map[string]TaskTemplate
	Available  []DataTemplate
	Generated  []DataTemplate
	Parameters map[string][]cty.Value
}

// Cycle is one ordered block of tasks repeated on a date schedule, or run
// once if Cycling is nil (spec §4.4, §6).
type Cycle struct {
	Name     string
	Cycling  *Cycling
	TaskRefs []TaskRef
}

// Cycling describes a dated cycle's schedule.
type Cycling struct {
	Start, Stop temporal.Date
	Period      temporal.Duration
}

// TaskRef names one task instantiation within a cycle, along with its
// declared dependency references.
type TaskRef struct {
	Name    string
	Inputs  []Ref
	Outputs []OutputRef
	WaitOn  []Ref
}

// Ref is one input or wait-on reference (spec §4.5, §6).
type Ref struct {
	Name        string
	Port        string // "" when absent on a WaitOn ref
	When        temporal.Guard
	TargetCycle TargetCycle
	// Single records, per dimension, whether the "single" modifier was
	// declared — present and true means "keep the task's own value for
	// this dimension rather than fanning out" (spec §4.5 step 3).
	Single map[string]bool
}

// TargetCycle is the optional target_cycle clause of a reference (spec
// §4.5 step 2). Absent ⇒ zero value (nil Lags, nil Date).
type TargetCycle struct {
	Lags []temporal.Duration // nil => no lag clause
	Date *temporal.Date      // non-nil => absolute date pin
}

// IsZero reports whether the clause is entirely absent (neither lag nor
// date pin), in which case the date dimension passes through unchanged.
func (t TargetCycle) IsZero() bool {
	return len(t.Lags) == 0 && t.Date == nil
}

// OutputRef names a declared task output and the port it is published on.
type OutputRef struct {
	Name string
	Port string
}

// TaskTemplate is one entry of the IR's tasks map.
type TaskTemplate struct {
	Plugin string
	// Parameters lists the dimension names this task's coordinate is
	// built from (spec §4.4): the union of parameter dimensions declared
	// on the template.
	Parameters []string
	// Payload carries opaque backend fields, already ROOT-merged by the
	// front end (SPEC_FULL §6 Open Question resolution — the core never
	// performs the merge itself).
	Payload any
}

// DataTemplate is one entry of data.available or data.generated.
type DataTemplate struct {
	Name       string
	Parameters []string
	Payload    any
}
