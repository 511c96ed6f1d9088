package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/smartupsell/dashboard-service/internal/config"
)

// New creates a logger for the given service environment. Production gets
// JSON output; anything else gets the colored development encoder without
// stack traces, which drown out the dashboard's degradation warnings.
func New(environment string) (*zap.Logger, error) {
	var zapConfig zap.Config

	if environment == config.EnvProduction {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapConfig.DisableStacktrace = true
	}

	zapConfig.EncoderConfig.CallerKey = "caller"
	zapConfig.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapConfig.Build(zap.AddCaller())
}
