// File: slicex_test.go
// Title: Slice Utilities Tests
// Description: Tests for the slice helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-04
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-04 v0.2.0: Reduced with the package

package slicex

import (
	"reflect"
	"strconv"
	"testing"
)

func TestFilter(t *testing.T) {
	t.Run("filter even numbers", func(t *testing.T) {
		result := Filter([]int{1, 2, 3, 4, 5, 6}, func(x int) bool { return x%2 == 0 })
		expected := []int{2, 4, 6}

		if !reflect.DeepEqual(result, expected) {
			t.Errorf("Filter() = %v, want %v", result, expected)
		}
	})

	t.Run("nil input", func(t *testing.T) {
		if result := Filter(nil, func(x int) bool { return true }); result != nil {
			t.Errorf("Filter(nil) = %v, want nil", result)
		}
	})
}

func TestMap(t *testing.T) {
	result := Map([]int{1, 2, 3}, strconv.Itoa)
	expected := []string{"1", "2", "3"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Map() = %v, want %v", result, expected)
	}
	if Map[int, string](nil, strconv.Itoa) != nil {
		t.Error("Map(nil) should be nil")
	}
}

func TestUnique(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"keeps first occurrence", []string{"b", "a", "b", "c", "a"}, []string{"b", "a", "c"}},
		{"already unique", []string{"x", "y"}, []string{"x", "y"}},
		{"empty", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Unique(tt.input); !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Unique() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestCount(t *testing.T) {
	if got := Count([]string{"चल", "var", "x"}, func(s string) bool { return len(s) > 1 }); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
	if got := Count[int](nil, func(int) bool { return true }); got != 0 {
		t.Errorf("Count(nil) = %d, want 0", got)
	}
}
