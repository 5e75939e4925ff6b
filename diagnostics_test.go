package buddy_test

import (
	"bytes"
	"encoding/json"
	"testing"

	buddy "github.com/UnicycleBloke/buddy-allocator"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestWriteJSONProducesValidObject(t *testing.T) {
	a := buddy.New(testMaxPower)
	p := a.Allocate(31)
	require.NotNil(t, p)

	w := jwriter.NewWriter()
	a.WriteJSON(&w)
	out := w.Bytes()
	require.True(t, json.Valid(out), "WriteJSON output is not valid JSON: %s", out)
	require.Contains(t, string(out), "totalBytes")
	require.Contains(t, string(out), "allocationCount")
}

func TestLogAllocationsDoesNotPanic(t *testing.T) {
	a := buddy.New(testMaxPower)
	p1 := a.Allocate(31)
	require.NotNil(t, p1)
	p2 := a.Allocate(8191)
	require.NotNil(t, p2)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf))

	require.NotPanics(t, func() { a.LogAllocations(logger) })
	require.Contains(t, buf.String(), "order")
}
