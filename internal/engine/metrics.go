package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	ResumeParses    atomic.Int64
	JobParses       atomic.Int64
	ScoreRequests   atomic.Int64
	SuggestRequests atomic.Int64
	IngestPDF       atomic.Int64
	IngestDOCX      atomic.Int64
	IngestPlain     atomic.Int64
	HistoryWrites   atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"resume_parses":    metrics.ResumeParses.Load(),
		"job_parses":       metrics.JobParses.Load(),
		"score_requests":   metrics.ScoreRequests.Load(),
		"suggest_requests": metrics.SuggestRequests.Load(),
		"ingest_pdf":       metrics.IngestPDF.Load(),
		"ingest_docx":      metrics.IngestDOCX.Load(),
		"ingest_plain":     metrics.IngestPlain.Load(),
		"history_writes":   metrics.HistoryWrites.Load(),
		"cache_hits":       hits,
		"cache_misses":     misses,
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"resume_parses", "job_parses",
		"score_requests", "suggest_requests",
		"ingest_pdf", "ingest_docx", "ingest_plain",
		"history_writes",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the match/ sub-package.
func IncrResumeParses()    { metrics.ResumeParses.Add(1) }
func IncrJobParses()       { metrics.JobParses.Add(1) }
func IncrScoreRequests()   { metrics.ScoreRequests.Add(1) }
func IncrSuggestRequests() { metrics.SuggestRequests.Add(1) }
func IncrHistoryWrites()   { metrics.HistoryWrites.Add(1) }

// Incrementors for the ingest/ sub-package.
func IncrIngestPDF()   { metrics.IngestPDF.Add(1) }
func IncrIngestDOCX()  { metrics.IngestDOCX.Add(1) }
func IncrIngestPlain() { metrics.IngestPlain.Add(1) }
