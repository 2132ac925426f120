package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/mergef/pkg/core"
	"github.com/arthur-debert/mergef/pkg/types"
)

// Renderer formats plans and reports as text. With styling off every
// helper degrades to plain strings, so output stays pipe-friendly.
type Renderer struct {
	styled bool
}

// NewRenderer creates a renderer, enabling styling only on a terminal
func NewRenderer() *Renderer {
	return &Renderer{styled: StdoutIsTerminal()}
}

// NewPlainRenderer creates a renderer that never styles its output
func NewPlainRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) title(s string) string {
	if r.styled {
		return TitleStyle.Sprint(s)
	}
	return s
}

func (r *Renderer) muted(s string) string {
	if r.styled {
		return MutedStyle.Sprint(s)
	}
	return s
}

func (r *Renderer) warn(s string) string {
	if r.styled {
		return WarnStyle.Sprint(s)
	}
	return s
}

func (r *Renderer) good(s string) string {
	if r.styled {
		return SuccessStyle.Sprint(s)
	}
	return s
}

func (r *Renderer) bad(s string) string {
	if r.styled {
		return ErrorStyle.Sprint(s)
	}
	return s
}

// RenderPlan renders one group's plan: base name, target, members and the
// ordered operation list with conflict renames called out.
func (r *Renderer) RenderPlan(plan *types.Plan) string {
	var b strings.Builder

	b.WriteString(r.title(fmt.Sprintf("Group %q", plan.Group.BaseName)) + "\n")
	b.WriteString(fmt.Sprintf("  target:  %s\n", r.good(plan.Group.Target.Path)))

	var names []string
	for _, m := range plan.Group.Members {
		if m.Path != plan.Group.Target.Path {
			names = append(names, m.Name)
		}
	}
	b.WriteString(fmt.Sprintf("  merging: %s\n", strings.Join(names, ", ")))

	for _, op := range plan.Operations {
		b.WriteString(fmt.Sprintf("  %s %s\n", PendingIndicator, op.String()))
	}

	if len(plan.Conflicts) > 0 {
		b.WriteString(r.warn(fmt.Sprintf("  %d name collision(s) resolved by suffixing\n", len(plan.Conflicts))))
	}
	return b.String()
}

// RenderReport renders an executed (or dry-run) plan with per-operation
// outcomes in execution order.
func (r *Renderer) RenderReport(report *types.Report) string {
	var b strings.Builder

	b.WriteString(r.title(fmt.Sprintf("Group %q", report.Plan.Group.BaseName)) + "\n")
	if report.DryRun {
		b.WriteString(r.warn("  dry run - no changes made\n"))
	}

	// Re-walk the plan so the listing keeps execution order
	failures := make(map[int]types.OperationResult)
	for _, res := range report.Failed {
		for i, op := range report.Plan.Operations {
			if op == res.Op {
				failures[i] = res
				break
			}
		}
	}

	for i, op := range report.Plan.Operations {
		if res, failed := failures[i]; failed {
			b.WriteString(fmt.Sprintf("  %s %s\n", r.bad(ErrorIndicator), op.String()))
			b.WriteString(r.muted(fmt.Sprintf("      %v\n", res.Err)))
			continue
		}
		indicator := r.good(SuccessIndicator)
		if report.DryRun {
			indicator = PendingIndicator
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", indicator, op.String()))
	}
	return b.String()
}

// RenderRun renders a whole run: every group report, plan-build failures,
// and a closing summary line.
func (r *Renderer) RenderRun(run *core.RunResult) string {
	var b strings.Builder

	for _, report := range run.Reports {
		b.WriteString(r.RenderReport(report))
		b.WriteString("\n")
	}

	for _, ge := range run.GroupErrors {
		b.WriteString(r.bad(fmt.Sprintf("%s group %q: %v\n", ErrorIndicator, ge.BaseName, ge.Err)))
	}

	switch run.Outcome() {
	case core.OutcomeNoGroups:
		b.WriteString(r.warn("No segment folder groups found.\n"))
	case core.OutcomeMerged:
		if run.DryRun {
			b.WriteString(r.good("Preview complete, nothing was modified.\n"))
		} else {
			b.WriteString(r.good("All groups merged.\n"))
		}
	case core.OutcomePartial:
		b.WriteString(r.bad("Some operations failed; sources with leftover entries were kept.\n"))
	}
	return b.String()
}
