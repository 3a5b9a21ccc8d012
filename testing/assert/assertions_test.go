package assert_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/prysmaticlabs/attestation-bench/testing/assert"
	"github.com/prysmaticlabs/attestation-bench/testing/assertions"
)

func TestAssert_Equal(t *testing.T) {
	tests := []struct {
		name        string
		expected    interface{}
		actual      interface{}
		msg         []interface{}
		expectedErr string
	}{
		{
			name:     "equal values",
			expected: 42,
			actual:   42,
		},
		{
			name:        "non-equal values",
			expected:    42,
			actual:      41,
			expectedErr: "Values are not equal, want: 42 (int), got: 41 (int)",
		},
		{
			name:        "custom error message with params",
			expected:    42,
			actual:      41,
			msg:         []interface{}{"Custom values are not equal (for slot %d)", 12},
			expectedErr: "Custom values are not equal (for slot 12), want: 42 (int), got: 41 (int)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := &assertions.TBMock{}
			assert.Equal(tb, tt.expected, tt.actual, tt.msg...)
			if !strings.Contains(tb.ErrorfMsg, tt.expectedErr) {
				t.Errorf("got: %q, want: %q", tb.ErrorfMsg, tt.expectedErr)
			}
			if tt.expectedErr == "" && tb.ErrorfMsg != "" {
				t.Errorf("unexpected error: %q", tb.ErrorfMsg)
			}
		})
	}
}

func TestAssert_DeepEqual(t *testing.T) {
	tb := &assertions.TBMock{}
	assert.DeepEqual(tb, []byte{1, 2}, []byte{1, 2})
	if tb.ErrorfMsg != "" {
		t.Errorf("unexpected error: %q", tb.ErrorfMsg)
	}
	assert.DeepEqual(tb, []byte{1, 2}, []byte{1, 3})
	if !strings.Contains(tb.ErrorfMsg, "Values are not equal") {
		t.Errorf("expected failure, got %q", tb.ErrorfMsg)
	}
}

func TestAssert_InDelta(t *testing.T) {
	tb := &assertions.TBMock{}
	assert.InDelta(tb, 1.118, 1.1180339, 1e-3)
	if tb.ErrorfMsg != "" {
		t.Errorf("unexpected error: %q", tb.ErrorfMsg)
	}
	assert.InDelta(tb, 1.0, 1.1, 1e-3)
	if !strings.Contains(tb.ErrorfMsg, "Values are not within delta") {
		t.Errorf("expected failure, got %q", tb.ErrorfMsg)
	}
}

func TestAssert_ErrorContains(t *testing.T) {
	tb := &assertions.TBMock{}
	assert.ErrorContains(tb, "seed", errors.New("invalid seed length"))
	if tb.ErrorfMsg != "" {
		t.Errorf("unexpected error: %q", tb.ErrorfMsg)
	}
	assert.ErrorContains(tb, "seed", nil)
	if !strings.Contains(tb.ErrorfMsg, "Expected error not returned") {
		t.Errorf("expected failure, got %q", tb.ErrorfMsg)
	}
}

func TestAssert_NotNil(t *testing.T) {
	tb := &assertions.TBMock{}
	var nilPtr *int
	assert.NotNil(tb, nilPtr)
	if !strings.Contains(tb.ErrorfMsg, "Unexpected nil value") {
		t.Errorf("expected failure, got %q", tb.ErrorfMsg)
	}
}
