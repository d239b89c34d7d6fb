// Package paniclog turns panics into errors,
// logging the panic and its stack trace along the way.
package paniclog

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/abhinav/huffcode/internal/log"
)

// Handle handles a panic value, logging it at error level and its stack at
// debug level. Returns the error version of the panic, if any.
func Handle(pval interface{}, logger *log.Logger) error {
	if pval == nil {
		return nil
	}

	logger.Error(fmt.Sprintf("panic: %v", pval))
	stack := &log.Writer{Log: logger, Level: log.Debug}
	_, _ = stack.Write(debug.Stack())
	_ = stack.Close()

	var err error
	switch pval := pval.(type) {
	case string:
		err = errors.New(pval)
	case error:
		err = pval
	default:
		err = fmt.Errorf("panic: %v", pval)
	}
	return err
}

// Recover recovers a panic and stores it into the given error pointer.
func Recover(err *error, logger *log.Logger) {
	if pval := recover(); pval != nil {
		*err = Handle(pval, logger)
	}
}
