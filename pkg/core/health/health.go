package health

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Status represents the result of a check
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
	StatusDegraded  Status = "degraded"
	StatusUnknown   Status = "unknown"
)

// severity orders statuses from good to bad
func (s Status) severity() int {
	switch s {
	case StatusHealthy:
		return 0
	case StatusDegraded:
		return 1
	case StatusUnknown:
		return 2
	default:
		return 3
	}
}

// CheckResult represents the result of a check
type CheckResult struct {
	Name      string                 `json:"name" yaml:"name"`
	Status    Status                 `json:"status" yaml:"status"`
	Message   string                 `json:"message,omitempty" yaml:"message,omitempty"`
	Duration  time.Duration          `json:"duration" yaml:"duration"`
	Timestamp time.Time              `json:"timestamp" yaml:"timestamp"`
	Details   map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
}

// Checker is an interface for checks
type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

// NamedCheckFunc wraps a check function with a name
type NamedCheckFunc struct {
	name string
	fn   func(ctx context.Context) CheckResult
}

// NewChecker creates a named checker from a function
func NewChecker(name string, fn func(ctx context.Context) CheckResult) Checker {
	return &NamedCheckFunc{name: name, fn: fn}
}

// Name returns the checker name
func (c *NamedCheckFunc) Name() string {
	return c.name
}

// Check runs the check
func (c *NamedCheckFunc) Check(ctx context.Context) CheckResult {
	return c.fn(ctx)
}

// Registry manages multiple checkers
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	tool     string
	version  string
}

// NewRegistry creates a new check registry
func NewRegistry(tool, version string) *Registry {
	return &Registry{
		checkers: make(map[string]Checker),
		tool:     tool,
		version:  version,
	}
}

// Register adds a checker to the registry, replacing one of the same name
func (r *Registry) Register(checker Checker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[checker.Name()] = checker
}

// RegisterFunc adds a check function to the registry
func (r *Registry) RegisterFunc(name string, fn func(ctx context.Context) CheckResult) {
	r.Register(NewChecker(name, fn))
}

// Unregister removes a checker from the registry
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.checkers, name)
}

// Check runs all checks concurrently. Results are ordered by name and the
// overall status is the worst single status.
func (r *Registry) Check(ctx context.Context) *Report {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report := &Report{
		Tool:      r.tool,
		Version:   r.version,
		Timestamp: time.Now(),
		Checks:    make([]CheckResult, 0, len(r.checkers)),
	}

	var wg sync.WaitGroup
	results := make(chan CheckResult, len(r.checkers))

	for _, checker := range r.checkers {
		wg.Add(1)
		go func(c Checker) {
			defer wg.Done()
			start := time.Now()
			result := c.Check(ctx)
			result.Duration = time.Since(start)
			result.Timestamp = time.Now()
			if result.Name == "" {
				result.Name = c.Name()
			}
			if result.Status == "" {
				result.Status = StatusUnknown
			}
			results <- result
		}(checker)
	}

	// Wait for all checks to complete
	go func() {
		wg.Wait()
		close(results)
	}()

	overall := StatusHealthy
	for result := range results {
		report.Checks = append(report.Checks, result)
		if result.Status.severity() > overall.severity() {
			overall = result.Status
		}
	}
	sort.Slice(report.Checks, func(i, j int) bool {
		return report.Checks[i].Name < report.Checks[j].Name
	})

	report.Status = overall
	return report
}

// CheckWithTimeout runs all checks with a timeout
func (r *Registry) CheckWithTimeout(timeout time.Duration) *Report {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return r.Check(ctx)
}

// Report represents the overall result
type Report struct {
	Tool      string        `json:"tool" yaml:"tool"`
	Version   string        `json:"version" yaml:"version"`
	Status    Status        `json:"status" yaml:"status"`
	Timestamp time.Time     `json:"timestamp" yaml:"timestamp"`
	Checks    []CheckResult `json:"checks" yaml:"checks"`
}

// String returns a string representation of the report
func (r *Report) String() string {
	return fmt.Sprintf("Tool: %s, Status: %s, Checks: %d", r.Tool, r.Status, len(r.Checks))
}

// Healthy reports whether no check failed. Degraded checks count as healthy.
func (r *Report) Healthy() bool {
	return r.Status == StatusHealthy || r.Status == StatusDegraded
}

// Result builds a result from err: healthy when err is nil, failed
// otherwise
func Result(name string, err error, failed Status) CheckResult {
	if err == nil {
		return CheckResult{Name: name, Status: StatusHealthy, Message: "ok"}
	}
	return CheckResult{Name: name, Status: failed, Message: err.Error()}
}
