package log

import saltLog "github.com/goto/salt/log"

// NewNoop returns a logger that discards every message
func NewNoop() *CtxLogger {
	return NewCtxLoggerWithSaltLogger(saltLog.NewNoop(), nil)
}
