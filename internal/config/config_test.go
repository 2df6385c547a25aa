package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitOrigins(t *testing.T) {
	assert.Equal(t,
		[]string{"http://localhost:3000", "https://timberco.example"},
		splitOrigins("http://localhost:3000, https://timberco.example"))

	assert.Equal(t,
		[]string{"http://localhost:3000"},
		splitOrigins("http://localhost:3000,,"))

	assert.Nil(t, splitOrigins(""))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TIMBERCO_TEST_KEY", "set")
	assert.Equal(t, "set", getEnv("TIMBERCO_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnv("TIMBERCO_TEST_KEY_MISSING", "fallback"))
}
