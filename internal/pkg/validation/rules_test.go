package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotBlank(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterRules(v))

	type subject struct {
		Code string `validate:"notblank"`
	}

	assert.NoError(t, v.Struct(subject{Code: "CS201"}))
	assert.Error(t, v.Struct(subject{Code: "   "}))
	assert.Error(t, v.Struct(subject{Code: ""}))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(" \t\n"))
	assert.False(t, IsBlank(" a "))
}
