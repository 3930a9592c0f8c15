package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init sets up the global zap logger. Anything but "production" gets the
// development config.
func Init(environment string) error {
	var (
		log *zap.Logger
		err error
	)

	if environment == "production" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}

	if err != nil {
		return fmt.Errorf("zap.New -> %w", err)
	}

	zap.ReplaceGlobals(log)

	return nil
}
