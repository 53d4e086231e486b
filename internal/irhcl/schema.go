// Package irhcl is a demo HCL front end producing an ir.Workflow — an
// external collaborator per spec §1 ("configuration parsing ... is
// explicitly out of scope"), kept here only to give the core something
// runnable to consume. It is not the formal API the core promises; that is
// internal/ir itself.
//
// Grounded on the teacher's internal/hcl package: schema.go's gohcl-tagged
// struct tree (here inlined as schema.go instead of the teacher's separate
// internal/schema package, since this loader's grammar is far smaller),
// translate_model.go's per-block translate* functions, and its use of
// hashicorp/hcl/v2 + zclconf/go-cty/cty/gocty for expression evaluation.
package irhcl

import "github.com/hashicorp/hcl/v2"

// File is the gohcl schema for one workflow description.
type File struct {
	StartDate  string           `hcl:"start_date"`
	StopDate   string           `hcl:"stop_date"`
	Parameters *ParametersBlock `hcl:"parameters,block"`
	Data       []DataBlock      `hcl:"data,block"`
	Tasks      []TaskBlock      `hcl:"task,block"`
	Cycles     []CycleBlock     `hcl:"cycle,block"`
}

// ParametersBlock's body is a flat attribute bag, dim name -> list literal;
// left as raw hcl.Body since the set of dimension names is not known to
// the schema.
type ParametersBlock struct {
	Remain hcl.Body `hcl:",remain"`
}

// DataBlock declares one data.available or data.generated template:
// `data "available" "forcing" { ... }`.
type DataBlock struct {
	Kind       string   `hcl:"kind,label"`
	Name       string   `hcl:"name,label"`
	Parameters []string `hcl:"parameters,optional"`
	Remain     hcl.Body `hcl:",remain"`
}

// TaskBlock declares one task template: `task "icon" { plugin = "..." }`.
type TaskBlock struct {
	Name       string   `hcl:"name,label"`
	Plugin     string   `hcl:"plugin"`
	Parameters []string `hcl:"parameters,optional"`
	Remain     hcl.Body `hcl:",remain"`
}

// CycleBlock declares one cycle: `cycle "icon_cycle" { cycling { ... } ... }`.
type CycleBlock struct {
	Name     string         `hcl:"name,label"`
	Cycling  *CyclingBlock  `hcl:"cycling,block"`
	TaskRefs []TaskRefBlock `hcl:"task_ref,block"`
}

// CyclingBlock is a cycle's date schedule.
type CyclingBlock struct {
	StartDate string `hcl:"start_date"`
	StopDate  string `hcl:"stop_date"`
	Period    string `hcl:"period"`
}

// TaskRefBlock instantiates a task template within a cycle.
type TaskRefBlock struct {
	Name    string        `hcl:"name,label"`
	Outputs []OutputBlock `hcl:"output,block"`
	Inputs  []RefBlock    `hcl:"input,block"`
	WaitOn  []RefBlock    `hcl:"wait_on,block"`
}

// OutputBlock declares one task output: `output "icon_output" {}`.
type OutputBlock struct {
	Name string `hcl:"name,label"`
	Port string `hcl:"port,optional"`
}

// RefBlock is an input or wait_on reference.
type RefBlock struct {
	Name        string            `hcl:"name,label"`
	Port        string            `hcl:"port,optional"`
	When        *WhenBlock        `hcl:"when,block"`
	TargetCycle *TargetCycleBlock `hcl:"target_cycle,block"`
	// Single lists the dimension names the "single" modifier applies to
	// (spec §4.5 step 3).
	Single []string `hcl:"single,optional"`
}

// WhenBlock is the guard clause of spec §4.1.
type WhenBlock struct {
	At     string `hcl:"at,optional"`
	After  string `hcl:"after,optional"`
	Before string `hcl:"before,optional"`
}

// TargetCycleBlock is the target_cycle clause of spec §4.5 step 2. Lag is a
// list so both the single-lag and lag-list forms share one field. When Date
// is set, Lag is ignored.
type TargetCycleBlock struct {
	Lag  []string `hcl:"lag,optional"`
	Date string   `hcl:"date,optional"`
}
