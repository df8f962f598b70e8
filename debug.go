package sqltext

import (
	"strings"

	"github.com/sirupsen/logrus"
)

type debugger struct {
	debug  bool // debug mode
	name   string
	logger logrus.FieldLogger
}

// Debug enables debug mode which logs every rendered statement.
func (b *debugger) Debug(name ...string) {
	b.DebugTo(nil, name...)
}

// DebugTo is like Debug, but logs to the given logger.
// A nil logger means the logrus standard logger.
func (b *debugger) DebugTo(logger logrus.FieldLogger, name ...string) {
	b.debug = true
	b.logger = logger
	if len(name) == 0 {
		b.name = "sqltext"
		return
	}
	b.name = strings.Replace(strings.Join(name, "_"), " ", "_", -1)
}

// printIfDebug logs the rendered statement in debug mode.
func (b *debugger) printIfDebug(query string) {
	if !b.debug {
		return
	}
	logger := b.logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger.WithFields(logrus.Fields{
		"builder": b.name,
		"sql":     query,
	}).Debug("rendered statement")
}
