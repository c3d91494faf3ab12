package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level represents the logging level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Logger handles dual-output logging (console + JSON file)
type Logger struct {
	base     *zap.Logger
	sugar    *zap.SugaredLogger
	file     *zap.Logger
	logFile  *os.File
	verbose  bool
	minLevel Level
}

var globalLogger *Logger

// consoleLevel keeps INFO lines clean and marks the others
func consoleLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch l {
	case zapcore.DebugLevel:
		enc.AppendString("[DEBUG]")
	case zapcore.InfoLevel:
	case zapcore.WarnLevel:
		enc.AppendString("⚠️ ")
	default:
		enc.AppendString("❌")
	}
}

// Init initializes the global logger
// consoleOutput: where to write INFO logs (typically os.Stdout)
// logFilePath: path to the JSON log file, which receives every level
// verbose: if true, show DEBUG logs on console as well
func Init(consoleOutput io.Writer, logFilePath string, verbose bool) error {
	// Create log directory if it doesn't exist
	logDir := filepath.Dir(logFilePath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	minLevel := LevelInfo
	if verbose {
		minLevel = LevelDebug
	}

	consoleCfg := zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		EncodeLevel:      consoleLevel,
		ConsoleSeparator: " ",
	}
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(consoleCfg),
		zapcore.AddSync(consoleOutput),
		minLevel.zapLevel(),
	)

	fileCfg := zap.NewProductionEncoderConfig()
	fileCfg.TimeKey = "time"
	fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(fileCfg),
		zapcore.AddSync(logFile),
		zapcore.DebugLevel,
	)

	base := zap.New(zapcore.NewTee(consoleCore, fileCore))

	globalLogger = &Logger{
		base:     base,
		sugar:    base.Sugar(),
		file:     zap.New(fileCore),
		logFile:  logFile,
		verbose:  verbose,
		minLevel: minLevel,
	}

	return nil
}

// Close flushes and closes the log file
func Close() {
	if globalLogger == nil {
		return
	}
	_ = globalLogger.base.Sync()
	if globalLogger.logFile != nil {
		globalLogger.logFile.Close()
	}
}

// Debug logs a debug message (file only, unless verbose)
func Debug(format string, args ...interface{}) {
	if globalLogger == nil {
		return
	}
	globalLogger.sugar.Debugf(format, args...)
}

// Info logs an info message (console + file)
func Info(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Printf(format+"\n", args...)
		return
	}
	globalLogger.sugar.Infof(format, args...)
}

// Warn logs a warning message (console + file)
func Warn(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Printf("WARN: "+format+"\n", args...)
		return
	}
	globalLogger.sugar.Warnf(format, args...)
}

// Error logs an error message (console + file)
func Error(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Printf("ERROR: "+format+"\n", args...)
		return
	}
	globalLogger.sugar.Errorf(format, args...)
}

// Infow logs a message with key-value pairs
func Infow(msg string, keysAndValues ...interface{}) {
	if globalLogger == nil {
		fmt.Println(msg, fmt.Sprint(keysAndValues...))
		return
	}
	globalLogger.sugar.Infow(msg, keysAndValues...)
}

// Warnw logs a warning with key-value pairs
func Warnw(msg string, keysAndValues ...interface{}) {
	if globalLogger == nil {
		fmt.Println("WARN:", msg, fmt.Sprint(keysAndValues...))
		return
	}
	globalLogger.sugar.Warnw(msg, keysAndValues...)
}

// Errorw logs an error with key-value pairs
func Errorw(msg string, keysAndValues ...interface{}) {
	if globalLogger == nil {
		fmt.Println("ERROR:", msg, fmt.Sprint(keysAndValues...))
		return
	}
	globalLogger.sugar.Errorw(msg, keysAndValues...)
}

// LogLookupError records a failed master lookup (file only, not console)
// The console gets the short error from the caller; the file keeps the details
func LogLookupError(location string, err error, context string) {
	if globalLogger == nil {
		return
	}

	globalLogger.file.Error("LOOKUP_ERROR",
		zap.String("location", location),
		zap.String("context", context),
		zap.Error(err),
	)

	Debug("Lookup error in %s: %v", location, err)
}

// GetLogFilePath returns the path to the current log file
func GetLogFilePath() string {
	if globalLogger != nil && globalLogger.logFile != nil {
		return globalLogger.logFile.Name()
	}
	return ""
}

// IsVerbose returns whether verbose logging is enabled
func IsVerbose() bool {
	if globalLogger == nil {
		return false
	}
	return globalLogger.verbose
}
