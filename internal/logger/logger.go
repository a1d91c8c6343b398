package logger

import (
	"go.uber.org/zap"
)

// Init replaces zap's global logger. Production gets JSON output at info
// level; any other environment gets the development console logger.
func Init(environment string) error {
	var (
		l   *zap.Logger
		err error
	)
	if environment == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(l)

	return nil
}
