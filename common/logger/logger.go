package logger

import (
	"io"
	"log"
	"strings"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

const logFlags = log.Ldate | log.Ltime | log.Lshortfile

var (
	Info  *log.Logger
	Warn  *log.Logger
	Error *log.Logger
	Debug *log.Logger
	Trace *log.Logger
)

var levelNames = map[LogLevel]string{
	ERROR: "ERROR",
	WARN:  "WARN",
	INFO:  "INFO",
	DEBUG: "DEBUG",
	TRACE: "TRACE",
}

func StringToLogLevel(value string) LogLevel {
	for level, name := range levelNames {
		if strings.EqualFold(name, value) {
			return level
		}
	}
	log.Printf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

func (s LogLevel) String() string {
	if name, ok := levelNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Loggers discard everything until initialized so that packages can log
// freely in tests.
func init() {
	InitializeWithWriters(ERROR, io.Discard, io.Discard)
}

// InitializeWithWriters sends errors to errOut and every other enabled
// level to out. Levels above logLevel are discarded.
func InitializeWithWriters(logLevel LogLevel, out io.Writer, errOut io.Writer) {
	writerFor := func(level LogLevel, writer io.Writer) io.Writer {
		if logLevel >= level {
			return writer
		}
		return io.Discard
	}

	Error = log.New(writerFor(ERROR, errOut), "ERROR: ", logFlags)
	Warn = log.New(writerFor(WARN, out), "WARN:  ", logFlags)
	Info = log.New(writerFor(INFO, out), "INFO:  ", logFlags)
	Debug = log.New(writerFor(DEBUG, out), "DEBUG: ", logFlags)
	Trace = log.New(writerFor(TRACE, out), "TRACE: ", logFlags)
}
