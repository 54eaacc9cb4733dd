package pubsub

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/sirupsen/logrus"
)

// LogrusAdapter bridges watermill's logger to the logrus logger the rest of
// the console uses.
type LogrusAdapter struct {
	entry *logrus.Entry
}

func NewLogrusAdapter(entry *logrus.Entry) LogrusAdapter {
	return LogrusAdapter{entry: entry}
}

func (l LogrusAdapter) withFields(fields watermill.LogFields) *logrus.Entry {
	entry := l.entry
	for k, v := range fields {
		entry = entry.WithField(k, v)
	}
	return entry
}

func (l LogrusAdapter) Error(msg string, err error, fields watermill.LogFields) {
	l.withFields(fields).WithError(err).Error(msg)
}

func (l LogrusAdapter) Info(msg string, fields watermill.LogFields) {
	l.withFields(fields).Info(msg)
}

func (l LogrusAdapter) Debug(msg string, fields watermill.LogFields) {
	l.withFields(fields).Debug(msg)
}

func (l LogrusAdapter) Trace(msg string, fields watermill.LogFields) {
	l.withFields(fields).Trace(msg)
}

func (l LogrusAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return LogrusAdapter{entry: l.withFields(fields)}
}
