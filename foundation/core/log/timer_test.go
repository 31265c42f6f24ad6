// File: timer_test.go
// Title: Performance Timer Tests
// Description: Tests for timer completion and failure logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with timer tests
// - 2026-10-02 v0.2.0: StopWithError level handling

package log

import (
	"errors"
	"testing"
	"time"
)

func TestTimerStop(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	timer := logger.StartTimer("parse").WithField("tokens", 5)
	time.Sleep(time.Millisecond)
	elapsed := timer.Stop()

	if elapsed <= 0 {
		t.Error("elapsed should be positive")
	}

	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines", len(lines))
	}
	line := lines[0]
	if line["message"] != "parse completed" || line["operation"] != "parse" {
		t.Errorf("unexpected line %v", line)
	}
	if line["tokens"] != float64(5) {
		t.Errorf("tokens = %v", line["tokens"])
	}
	if _, ok := line["duration_ms"].(float64); !ok {
		t.Error("duration_ms missing")
	}
}

func TestTimerStopTwice(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	timer := logger.StartTimer("lex")
	timer.Stop()
	if second := timer.Stop(); second != 0 {
		t.Errorf("second Stop() = %v, want 0", second)
	}
	if n := len(decodeLines(t, buf)); n != 1 {
		t.Errorf("got %d lines, want 1", n)
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn)

	logger.StartTimer("parse").StopWithError(errors.New("syntax"))

	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[0]["level"] != "warn" || lines[0]["success"] != false || lines[0]["error"] != "syntax" {
		t.Errorf("unexpected line %v", lines[0])
	}
}

func TestTimerBelowLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)

	if elapsed := logger.StartTimer("lex").Stop(); elapsed < 0 {
		t.Error("elapsed should not be negative")
	}
	if buf.Len() != 0 {
		t.Errorf("debug timer should not log at info, got %q", buf.String())
	}
}

func TestTimerNilLogger(t *testing.T) {
	timer := NewTimer(nil, "orphan")
	if timer.Stop() < 0 {
		t.Error("elapsed should not be negative")
	}
}
