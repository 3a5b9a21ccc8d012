package require_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/prysmaticlabs/attestation-bench/testing/assertions"
	"github.com/prysmaticlabs/attestation-bench/testing/require"
)

func TestRequire_UsesFatalf(t *testing.T) {
	tb := &assertions.TBMock{}
	require.NoError(tb, errors.New("boom"))
	if tb.ErrorfMsg != "" {
		t.Errorf("require must not use Errorf, got %q", tb.ErrorfMsg)
	}
	if !strings.Contains(tb.FatalfMsg, "Unexpected error: boom") {
		t.Errorf("got: %q", tb.FatalfMsg)
	}
}

func TestRequire_ErrorIs(t *testing.T) {
	target := errors.New("target")
	tb := &assertions.TBMock{}
	require.ErrorIs(tb, errors.New("other"), target)
	if !strings.Contains(tb.FatalfMsg, "not in chain") {
		t.Errorf("got: %q", tb.FatalfMsg)
	}
}
