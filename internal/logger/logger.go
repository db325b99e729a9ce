package logger

import "go.uber.org/zap"

// New returns the service logger. Production builds log JSON, development
// builds log console-friendly output.
func New(env string) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)
	if env == "production" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		return zap.NewNop()
	}
	return log
}
