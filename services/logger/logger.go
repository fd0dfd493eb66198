package logger

import (
	"log"
	"os"
)

// Level là mức độ log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

func (l Level) tag() string {
	switch l {
	case DebugLevel:
		return "[DEBUG] "
	case ErrorLevel:
		return "[ERROR] "
	default:
		return "[INFO] "
	}
}

// Logger là interface log của các service
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger ghi ra stderr, lọc theo level
type DefaultLogger struct {
	level Level
	out   *log.Logger
}

// NewDefaultLogger tạo DefaultLogger với level tối thiểu cho trước
func NewDefaultLogger(level Level) *DefaultLogger {
	return &DefaultLogger{
		level: level,
		out:   log.New(os.Stderr, "", log.LstdFlags),
	}
}

func (l *DefaultLogger) write(level Level, format string, v ...interface{}) {
	if l.level <= level {
		l.out.Printf(level.tag()+format, v...)
	}
}

// Info ghi log thông tin
func (l *DefaultLogger) Info(format string, v ...interface{}) {
	l.write(InfoLevel, format, v...)
}

// Error ghi log lỗi
func (l *DefaultLogger) Error(format string, v ...interface{}) {
	l.write(ErrorLevel, format, v...)
}

// Debug ghi log debug
func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	l.write(DebugLevel, format, v...)
}
