package logger

import (
	"patient-service/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewZapLogger_Levels(t *testing.T) {
	tests := []struct {
		level    string
		expected zap.AtomicLevel
	}{
		{"debug", zap.NewAtomicLevelAt(zap.DebugLevel)},
		{"warn", zap.NewAtomicLevelAt(zap.WarnLevel)},
		{"bogus", zap.NewAtomicLevelAt(zap.InfoLevel)},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			driverConfig := &config.DriverConfig{Logger: config.Logger{Level: tt.level}}
			internalConfig := &config.InternalConfig{App: config.App{Env: "development"}}

			log, err := NewZapLogger(driverConfig, internalConfig)
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.expected.Level()))
			if tt.expected.Level() > zap.DebugLevel {
				assert.False(t, log.Core().Enabled(tt.expected.Level()-1))
			}
		})
	}
}
