package compat_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stateforward/go-act"
	"github.com/stateforward/go-act/compat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buffer bytes.Buffer
	previous := compat.Logger
	compat.Logger = slog.New(slog.NewTextHandler(&buffer, nil))
	t.Cleanup(func() { compat.Logger = previous })
	return &buffer
}

func TestBinded(t *testing.T) {
	buffer := capture(t)
	registry := act.NewRegistry()
	creator := registry.MustNamed("LEGACY")

	legacy := compat.WrapConfig(creator, compat.Config{Warnings: true})
	assert.False(t, legacy.Binded())
	assert.False(t, legacy.Binded())
	assert.Equal(t, 2, strings.Count(buffer.String(), "deprecated"))
	assert.Contains(t, buffer.String(), "type=LEGACY")

	bound := compat.WrapConfig(creator.BindTo(act.Func(func(act.Action) {})), compat.Config{Warnings: true})
	assert.True(t, bound.Binded())
	assert.Equal(t, 3, strings.Count(buffer.String(), "deprecated"))
}

func TestBindedSilenced(t *testing.T) {
	buffer := capture(t)
	legacy := compat.WrapConfig(act.NewRegistry().Anonymous(), compat.Config{Warnings: false})
	assert.False(t, legacy.Binded())
	assert.Empty(t, buffer.String())
}

func TestDispatched(t *testing.T) {
	registry := act.NewRegistry()
	creator := registry.Anonymous()
	legacy := compat.Wrap(creator)
	assert.False(t, legacy.Dispatched())

	creator.AssignTo(act.Func(func(act.Action) {}))
	assert.True(t, legacy.Dispatched())

	bound := compat.Wrap(creator.BindTo())
	assert.True(t, bound.Dispatched())
	assert.False(t, bound.Assigned())
}

func TestWrapFromEnvironment(t *testing.T) {
	capture(t)
	legacy := compat.Wrap(act.NewRegistry().Anonymous())
	require.NotNil(t, legacy)
	assert.Equal(t, "[1]", legacy.Type())
	assert.IsType(t, act.Action{}, legacy.Call())
}
