package health

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestStatus_Constants(t *testing.T) {
	if StatusHealthy != "healthy" {
		t.Errorf("StatusHealthy = %v, want healthy", StatusHealthy)
	}
	if StatusUnhealthy != "unhealthy" {
		t.Errorf("StatusUnhealthy = %v, want unhealthy", StatusUnhealthy)
	}
	if StatusDegraded != "degraded" {
		t.Errorf("StatusDegraded = %v, want degraded", StatusDegraded)
	}
	if StatusUnknown != "unknown" {
		t.Errorf("StatusUnknown = %v, want unknown", StatusUnknown)
	}
}

func TestNewChecker(t *testing.T) {
	checker := NewChecker("catalog", func(ctx context.Context) CheckResult {
		return CheckResult{
			Status:  StatusHealthy,
			Message: "test passed",
		}
	})

	if checker.Name() != "catalog" {
		t.Errorf("Name() = %v, want catalog", checker.Name())
	}

	result := checker.Check(context.Background())
	if result.Status != StatusHealthy {
		t.Errorf("Status = %v, want healthy", result.Status)
	}
	if result.Message != "test passed" {
		t.Errorf("Message = %v, want 'test passed'", result.Message)
	}
}

func TestRegistry_Check(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     Status
		healthy  bool
	}{
		{"empty", nil, StatusHealthy, true},
		{"all healthy", []Status{StatusHealthy, StatusHealthy}, StatusHealthy, true},
		{"degraded", []Status{StatusHealthy, StatusDegraded}, StatusDegraded, true},
		{"unhealthy wins", []Status{StatusDegraded, StatusUnhealthy, StatusHealthy}, StatusUnhealthy, false},
		{"missing status", []Status{""}, StatusUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry("bhasha", "0.3.0")
			for i, s := range tt.statuses {
				status := s
				r.RegisterFunc(string(rune('a'+i)), func(ctx context.Context) CheckResult {
					return CheckResult{Status: status}
				})
			}

			report := r.Check(context.Background())
			if report.Status != tt.want {
				t.Errorf("Status = %v, want %v", report.Status, tt.want)
			}
			if report.Healthy() != tt.healthy {
				t.Errorf("Healthy() = %v, want %v", report.Healthy(), tt.healthy)
			}
			if len(report.Checks) != len(tt.statuses) {
				t.Errorf("len(Checks) = %d, want %d", len(report.Checks), len(tt.statuses))
			}
		})
	}
}

func TestRegistry_OrderAndNames(t *testing.T) {
	r := NewRegistry("bhasha", "0.3.0")
	var calls int32
	for _, name := range []string{"history", "catalog", "grammar"} {
		r.RegisterFunc(name, func(ctx context.Context) CheckResult {
			atomic.AddInt32(&calls, 1)
			return CheckResult{Status: StatusHealthy}
		})
	}
	r.RegisterFunc("obsolete", func(ctx context.Context) CheckResult {
		return CheckResult{Status: StatusUnhealthy}
	})
	r.Unregister("obsolete")

	report := r.Check(context.Background())
	if atomic.LoadInt32(&calls) != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	want := []string{"catalog", "grammar", "history"}
	for i, c := range report.Checks {
		if c.Name != want[i] {
			t.Errorf("Checks[%d].Name = %s, want %s", i, c.Name, want[i])
		}
		if c.Timestamp.IsZero() {
			t.Errorf("Checks[%d] has no timestamp", i)
		}
	}
	if report.Status != StatusHealthy {
		t.Errorf("Status = %v, want healthy", report.Status)
	}
}

func TestRegistry_CheckWithTimeout(t *testing.T) {
	r := NewRegistry("bhasha", "0.3.0")
	r.RegisterFunc("slow", func(ctx context.Context) CheckResult {
		select {
		case <-ctx.Done():
			return CheckResult{Status: StatusUnhealthy, Message: ctx.Err().Error()}
		case <-time.After(time.Second):
			return CheckResult{Status: StatusHealthy}
		}
	})

	report := r.CheckWithTimeout(10 * time.Millisecond)
	if report.Status != StatusUnhealthy {
		t.Errorf("Status = %v, want unhealthy", report.Status)
	}
}

func TestResult(t *testing.T) {
	ok := Result("config", nil, StatusUnhealthy)
	if ok.Status != StatusHealthy || ok.Name != "config" {
		t.Errorf("Result(nil) = %+v", ok)
	}

	failed := Result("history", errors.New("read-only"), StatusDegraded)
	if failed.Status != StatusDegraded || failed.Message != "read-only" {
		t.Errorf("Result(err) = %+v", failed)
	}
}

func TestReport_String(t *testing.T) {
	r := &Report{Tool: "bhasha", Status: StatusHealthy, Checks: make([]CheckResult, 2)}
	if got := r.String(); got != "Tool: bhasha, Status: healthy, Checks: 2" {
		t.Errorf("String() = %s", got)
	}
}
