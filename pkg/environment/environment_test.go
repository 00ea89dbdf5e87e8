package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/profiler/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := map[string]environment.Environment{
		"production":   environment.Production,
		" PROD ":       environment.Production,
		"staging":      environment.Staging,
		"stage":        environment.Staging,
		"development":  environment.Development,
		"":             environment.Development,
		"unrecognised": environment.Development,
	}
	for in, want := range tests {
		assert.Equal(t, want, environment.Parse(in), in)
	}
	assert.True(t, environment.Production.IsProduction())
	assert.False(t, environment.Staging.IsProduction())
}
