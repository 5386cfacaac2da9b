package view

import (
	"fmt"
	"strings"

	"CCIPulse/internal/model"
)

// FormatSummary renders the view model's metric cards as a plain-text report,
// used in refresh logs and snapshot notes.
func FormatSummary(vm *model.ViewModel) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("CCI summary | %s | %d points\n", vm.Period, vm.Series.Len()))
	b.WriteString(formatMetric("Current Value", vm.Metrics.Current, "%.2f"))
	b.WriteString(formatMetric("Monthly Change", vm.Metrics.Change, "%+.2f"))
	b.WriteString(formatMetric("Change %", vm.Metrics.PercentChange, "%+.1f%%"))
	b.WriteString(formatMetric("Volatility", vm.Metrics.Volatility, "%.2f"))
	if vm.Metrics.ProjectedValue.Defined {
		b.WriteString(formatMetric("Projected Value", vm.Metrics.ProjectedValue, "%.2f"))
		b.WriteString(formatMetric("Projected Change", vm.Metrics.ProjectedChange, "%+.2f"))
	}
	return b.String()
}

func formatMetric(label string, m model.Metric, format string) string {
	if !m.Defined {
		return fmt.Sprintf("  %s: n/a\n", label)
	}
	return fmt.Sprintf("  %s: %s\n", label, fmt.Sprintf(format, m.Value))
}
