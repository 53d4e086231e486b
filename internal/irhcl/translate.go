package irhcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/workgraph/internal/ir"
	"github.com/vk/workgraph/internal/temporal"
	"github.com/vk/workgraph/internal/werr"
	"github.com/zclconf/go-cty/cty"
)

// parseDate wraps temporal.ParseDate as a werr.BadDate — irhcl is the one
// place a malformed date literal can first reach the core (spec §7).
func parseDate(field, s string) (temporal.Date, error) {
	d, err := temporal.ParseDate(s)
	if err != nil {
		return temporal.Date{}, werr.New(werr.BadDate, fmt.Sprintf("%s: %v", field, err), []string{field}, nil)
	}
	return d, nil
}

// parseDuration wraps temporal.ParseDuration as a werr.BadDuration.
func parseDuration(field, s string) (temporal.Duration, error) {
	d, err := temporal.ParseDuration(s)
	if err != nil {
		return temporal.Duration{}, werr.New(werr.BadDuration, fmt.Sprintf("%s: %v", field, err), []string{field}, nil)
	}
	return d, nil
}

// ToWorkflow translates a parsed File into the core's ir.Workflow. Grounded
// on the teacher's internal/hcl/translate_model.go per-block translate*
// function style, adapted to this grammar's task/cycle/reference shape.
func ToWorkflow(f *File) (ir.Workflow, error) {
	start, err := parseDate("start_date", f.StartDate)
	if err != nil {
		return ir.Workflow{}, err
	}
	stop, err := parseDate("stop_date", f.StopDate)
	if err != nil {
		return ir.Workflow{}, err
	}

	params, err := translateParameters(f.Parameters)
	if err != nil {
		return ir.Workflow{}, err
	}

	wf := ir.Workflow{
		StartDate:  start,
		StopDate:   stop,
		Tasks:      map[string]ir.TaskTemplate{},
		Parameters: params,
	}

	for _, d := range f.Data {
		dt, err := translateDataTemplate(d)
		if err != nil {
			return ir.Workflow{}, err
		}
		switch d.Kind {
		case "available":
			wf.Available = append(wf.Available, dt)
		case "generated":
			wf.Generated = append(wf.Generated, dt)
		default:
			return ir.Workflow{}, fmt.Errorf("irhcl: data block %q has unknown kind %q (want available or generated)", d.Name, d.Kind)
		}
	}

	for _, tb := range f.Tasks {
		tmpl, err := translateTaskTemplate(tb)
		if err != nil {
			return ir.Workflow{}, err
		}
		wf.Tasks[tb.Name] = tmpl
	}

	for _, cb := range f.Cycles {
		cycle, err := translateCycle(cb)
		if err != nil {
			return ir.Workflow{}, err
		}
		wf.Cycles = append(wf.Cycles, cycle)
	}

	return wf, nil
}

func translateParameters(p *ParametersBlock) (map[string][]cty.Value, error) {
	if p == nil {
		return nil, nil
	}
	attrs, diags := attributeValues(p.Remain)
	if diags.HasErrors() {
		return nil, fmt.Errorf("irhcl: parameters block: %w", diags)
	}
	out := make(map[string][]cty.Value, len(attrs))
	for dim, expr := range attrs {
		val, diags := expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("irhcl: parameters.%s: %w", dim, diags)
		}
		values, err := valuesOf(val)
		if err != nil {
			return nil, fmt.Errorf("irhcl: parameters.%s: %w", dim, err)
		}
		out[dim] = values
	}
	return out, nil
}

// valuesOf flattens a list/tuple cty.Value into its elements.
func valuesOf(val cty.Value) ([]cty.Value, error) {
	if !val.Type().IsListType() && !val.Type().IsTupleType() && !val.Type().IsSetType() {
		return nil, fmt.Errorf("expected a list of values, got %s", val.Type().FriendlyName())
	}
	var out []cty.Value
	for it := val.ElementIterator(); it.Next(); {
		_, v := it.Element()
		out = append(out, v)
	}
	return out, nil
}

func translatePayload(body hcl.Body) (map[string]cty.Value, error) {
	attrs, diags := attributeValues(body)
	if diags.HasErrors() {
		return nil, fmt.Errorf("irhcl: payload: %w", diags)
	}
	if len(attrs) == 0 {
		return nil, nil
	}
	out := make(map[string]cty.Value, len(attrs))
	for name, expr := range attrs {
		val, diags := expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("irhcl: payload.%s: %w", name, diags)
		}
		out[name] = val
	}
	return out, nil
}

func translateDataTemplate(d DataBlock) (ir.DataTemplate, error) {
	payload, err := translatePayload(d.Remain)
	if err != nil {
		return ir.DataTemplate{}, err
	}
	return ir.DataTemplate{Name: d.Name, Parameters: d.Parameters, Payload: payload}, nil
}

func translateTaskTemplate(tb TaskBlock) (ir.TaskTemplate, error) {
	payload, err := translatePayload(tb.Remain)
	if err != nil {
		return ir.TaskTemplate{}, err
	}
	return ir.TaskTemplate{Plugin: tb.Plugin, Parameters: tb.Parameters, Payload: payload}, nil
}

func translateCycle(cb CycleBlock) (ir.Cycle, error) {
	cycle := ir.Cycle{Name: cb.Name}

	if cb.Cycling != nil {
		start, err := parseDate(fmt.Sprintf("cycle %q: cycling.start_date", cb.Name), cb.Cycling.StartDate)
		if err != nil {
			return ir.Cycle{}, err
		}
		stop, err := parseDate(fmt.Sprintf("cycle %q: cycling.stop_date", cb.Name), cb.Cycling.StopDate)
		if err != nil {
			return ir.Cycle{}, err
		}
		period, err := parseDuration(fmt.Sprintf("cycle %q: cycling.period", cb.Name), cb.Cycling.Period)
		if err != nil {
			return ir.Cycle{}, err
		}
		cycle.Cycling = &ir.Cycling{Start: start, Stop: stop, Period: period}
	}

	for _, trb := range cb.TaskRefs {
		ref, err := translateTaskRef(trb)
		if err != nil {
			return ir.Cycle{}, fmt.Errorf("irhcl: cycle %q: %w", cb.Name, err)
		}
		cycle.TaskRefs = append(cycle.TaskRefs, ref)
	}
	return cycle, nil
}

func translateTaskRef(trb TaskRefBlock) (ir.TaskRef, error) {
	ref := ir.TaskRef{Name: trb.Name}
	for _, ob := range trb.Outputs {
		ref.Outputs = append(ref.Outputs, ir.OutputRef{Name: ob.Name, Port: ob.Port})
	}
	for _, rb := range trb.Inputs {
		r, err := translateRef(rb)
		if err != nil {
			return ir.TaskRef{}, fmt.Errorf("task_ref %q: input %q: %w", trb.Name, rb.Name, err)
		}
		ref.Inputs = append(ref.Inputs, r)
	}
	for _, rb := range trb.WaitOn {
		r, err := translateRef(rb)
		if err != nil {
			return ir.TaskRef{}, fmt.Errorf("task_ref %q: wait_on %q: %w", trb.Name, rb.Name, err)
		}
		ref.WaitOn = append(ref.WaitOn, r)
	}
	return ref, nil
}

func translateRef(rb RefBlock) (ir.Ref, error) {
	ref := ir.Ref{Name: rb.Name, Port: rb.Port}

	if rb.When != nil {
		guard, err := translateGuard(*rb.When)
		if err != nil {
			return ir.Ref{}, err
		}
		ref.When = guard
	}

	if rb.TargetCycle != nil {
		tc, err := translateTargetCycle(*rb.TargetCycle)
		if err != nil {
			return ir.Ref{}, err
		}
		ref.TargetCycle = tc
	}

	if len(rb.Single) > 0 {
		ref.Single = make(map[string]bool, len(rb.Single))
		for _, dim := range rb.Single {
			ref.Single[dim] = true
		}
	}
	return ref, nil
}

func translateGuard(wb WhenBlock) (temporal.Guard, error) {
	var guard temporal.Guard
	if wb.At != "" {
		d, err := parseDate("when.at", wb.At)
		if err != nil {
			return guard, err
		}
		guard.At = &d
	}
	if wb.After != "" {
		d, err := parseDate("when.after", wb.After)
		if err != nil {
			return guard, err
		}
		guard.After = &d
	}
	if wb.Before != "" {
		d, err := parseDate("when.before", wb.Before)
		if err != nil {
			return guard, err
		}
		guard.Before = &d
	}
	return guard, nil
}

func translateTargetCycle(tb TargetCycleBlock) (ir.TargetCycle, error) {
	var tc ir.TargetCycle
	if tb.Date != "" {
		d, err := parseDate("target_cycle.date", tb.Date)
		if err != nil {
			return tc, err
		}
		tc.Date = &d
		return tc, nil
	}
	for _, lagStr := range tb.Lag {
		d, err := parseDuration("target_cycle.lag", lagStr)
		if err != nil {
			return tc, err
		}
		tc.Lags = append(tc.Lags, d)
	}
	return tc, nil
}
