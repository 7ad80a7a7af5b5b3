package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvironmentDefaultsToDevelopment(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "")

	assert.Equal(t, Development, GetEnvironment())
	assert.False(t, IsProduction())
	assert.False(t, IsCI())
}

func TestGetEnvironmentProduction(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "production")

	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())
}

func TestGetEnvironmentCITakesPrecedence(t *testing.T) {
	t.Setenv("CI", "true")
	t.Setenv("ENV", "production")

	assert.Equal(t, CI, GetEnvironment())
	assert.True(t, IsCI())
	assert.False(t, IsProduction())
}

func TestGetEnvironmentUnknownEnvFallsBack(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "staging")

	assert.Equal(t, Development, GetEnvironment())
}
