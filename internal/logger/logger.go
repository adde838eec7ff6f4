package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

func Init() {
	log = logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}

// get guards against use before Init in tests.
func get() *logrus.Logger {
	if log == nil {
		Init()
	}
	return log
}

func Info(args ...interface{}) {
	get().Info(args...)
}

func Infof(format string, v ...interface{}) {
	get().Infof(format, v...)
}

func Error(args ...interface{}) {
	get().Error(args...)
}

func Errorf(format string, v ...interface{}) {
	get().Errorf(format, v...)
}

func Debug(args ...interface{}) {
	get().Debug(args...)
}

func Debugf(format string, v ...interface{}) {
	get().Debugf(format, v...)
}

func Warnf(format string, v ...interface{}) {
	get().Warnf(format, v...)
}

func Fatal(args ...interface{}) {
	get().Fatal(args...)
}

func Fatalf(format string, v ...interface{}) {
	get().Fatalf(format, v...)
}

func WithFields(fields logrus.Fields) *logrus.Entry {
	return get().WithFields(fields)
}
