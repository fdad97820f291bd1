package profiler

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"
)

// Profiler records durations of named pipeline stages
type Profiler struct {
	mu     sync.Mutex
	stages map[string][]time.Duration
	order  []string
}

// NewProfiler creates an empty profiler
func NewProfiler() *Profiler {
	return &Profiler{
		stages: make(map[string][]time.Duration),
	}
}

// Timer is one running stage measurement
type Timer struct {
	profiler *Profiler
	name     string
	start    time.Time
}

// Start begins timing a stage
func (p *Profiler) Start(name string) *Timer {
	return &Timer{
		profiler: p,
		name:     name,
		start:    time.Now(),
	}
}

// Stop records the elapsed time and returns it
func (t *Timer) Stop() time.Duration {
	d := time.Since(t.start)
	t.profiler.Record(t.name, d)
	return d
}

// Record adds a duration for a stage
func (p *Profiler) Record(name string, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, seen := p.stages[name]; !seen {
		p.order = append(p.order, name)
	}
	p.stages[name] = append(p.stages[name], d)
}

// Stats contains timing statistics for a stage
type Stats struct {
	Name    string
	Count   int
	Total   time.Duration
	Average time.Duration
	Min     time.Duration
	Max     time.Duration
}

// GetStats returns the statistics of one stage
func (p *Profiler) GetStats(name string) *Stats {
	p.mu.Lock()
	times := append([]time.Duration(nil), p.stages[name]...)
	p.mu.Unlock()

	if len(times) == 0 {
		return &Stats{Name: name}
	}

	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })

	var total time.Duration
	for _, d := range times {
		total += d
	}

	return &Stats{
		Name:    name,
		Count:   len(times),
		Total:   total,
		Average: total / time.Duration(len(times)),
		Min:     times[0],
		Max:     times[len(times)-1],
	}
}

// GetAllStats returns statistics for every stage in first-recorded order
func (p *Profiler) GetAllStats() []*Stats {
	p.mu.Lock()
	names := append([]string(nil), p.order...)
	p.mu.Unlock()

	stats := make([]*Stats, 0, len(names))
	for _, name := range names {
		stats = append(stats, p.GetStats(name))
	}
	return stats
}

// PrintReport writes a timing table
func (p *Profiler) PrintReport(w io.Writer) {
	stats := p.GetAllStats()
	if len(stats) == 0 {
		fmt.Fprintln(w, "No timing data available")
		return
	}

	fmt.Fprintf(w, "⏱️  Stage Timings\n")
	fmt.Fprintf(w, "══════════════════════════════════════════════════════\n")
	fmt.Fprintf(w, "%-12s %6s %10s %10s %10s %10s\n", "Stage", "Count", "Total", "Avg", "Min", "Max")
	fmt.Fprintf(w, "──────────────────────────────────────────────────────\n")
	for _, s := range stats {
		fmt.Fprintf(w, "%-12s %6d %10s %10s %10s %10s\n",
			s.Name, s.Count,
			formatDuration(s.Total),
			formatDuration(s.Average),
			formatDuration(s.Min),
			formatDuration(s.Max),
		)
	}
}

// formatDuration formats a duration for display
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1e3)
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	default:
		return fmt.Sprintf("%.3fs", d.Seconds())
	}
}
