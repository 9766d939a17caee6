package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kojo-codeur/Mario/internal/registry"
)

func TestRulesetsRegistered(t *testing.T) {
	assert.True(t, registry.Exists("mario"))
	assert.True(t, registry.Exists("mario_classic"))
}

func TestApplyGameFlagsRejectsUnknownLevel(t *testing.T) {
	defer func() { flagLevel = 0 }()

	flagLevel = 99
	err := applyGameFlags()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown level 99")
}

func TestApplyGameFlagsRejectsUnknownDifficulty(t *testing.T) {
	defer func() { flagDifficulty = "" }()

	flagDifficulty = "nightmare"
	assert.Error(t, applyGameFlags())
}

func TestPortOf(t *testing.T) {
	assert.Equal(t, "23234", portOf(":23234"))
	assert.Equal(t, "2222", portOf("localhost:2222"))
	assert.Equal(t, "bogus", portOf("bogus"))
}

func TestCommandsWired(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"play", "levels", "scores", "serve"} {
		assert.True(t, names[want], "missing command %q", want)
	}
}
