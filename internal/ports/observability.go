package ports

import "context"

// MetricsCollector records quantitative observability signals. The interface is
// intentionally generic so adapters can back onto Prometheus or any other sink.
// Standard metric names include:
//   - Counters:
//     themekit_imports_total{source="file|clipboard", outcome="accepted|rejected|failed"}
//     themekit_import_rejections_total{source="...", reason="type|size|sniff|decode|schema"}
//     themekit_exports_total{target="file|clipboard|stdout", format="json|yaml"}
//     themekit_audits_total{accessible="true|false"}
//   - Gauges:
//     themekit_last_audit_issues
//   - Histograms:
//     themekit_import_bytes{source="..."}
//     themekit_contrast_ratio
type MetricsCollector interface {
	IncCounter(ctx context.Context, name string, labels map[string]string)
	SetGauge(ctx context.Context, name string, value float64, labels map[string]string)
	ObserveHistogram(ctx context.Context, name string, value float64, labels map[string]string)
}

// Standard metric names shared by producers and adapters.
const (
	MetricImportsTotal          = "themekit_imports_total"
	MetricImportRejectionsTotal = "themekit_import_rejections_total"
	MetricExportsTotal          = "themekit_exports_total"
	MetricAuditsTotal           = "themekit_audits_total"
	MetricLastAuditIssues       = "themekit_last_audit_issues"
	MetricImportBytes           = "themekit_import_bytes"
	MetricContrastRatio         = "themekit_contrast_ratio"
)
