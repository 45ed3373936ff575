package logger_test

import (
	"testing"

	"catalog-backend/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit_LevelPerEnvironment(t *testing.T) {
	logger.Init("production")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	logger.Init("staging")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	logger.Init("development")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	// unknown environments stay quiet like production
	logger.Init("qa-sandbox")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
