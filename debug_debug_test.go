//go:build debug_buddyalloc

package buddy_test

import (
	"testing"
	"unsafe"

	buddy "github.com/UnicycleBloke/buddy-allocator"
	"github.com/stretchr/testify/require"
)

func TestDebugBuildDetectsDoubleRelease(t *testing.T) {
	a := buddy.New(testMaxPower)
	p := a.Allocate(31)
	require.NotNil(t, p)

	a.Release(p)
	require.Panics(t, func() { a.Release(p) })
}

func TestDebugBuildDetectsForeignPointer(t *testing.T) {
	a := buddy.New(testMaxPower)
	var local [64]byte

	require.Panics(t, func() { a.Release(unsafe.Pointer(&local[0])) })
}
