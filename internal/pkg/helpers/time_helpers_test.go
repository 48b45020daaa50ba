package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 30*time.Minute, ParseDuration("30m", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("soon", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("", time.Hour))
}
