package log

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path"
	"reflect"
	"runtime"
	"strings"

	eParser "github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

const (
	logNameDebug   = "debug.log"
	logNameInfo    = "info.log"
	logNameWarning = "warn.log"
	logNameError   = "error.log"

	logTimeFormat  = "2006-01-02 15:04:05.000"
	filePathPrefix = "aleo-broadcaster"
)

// Logger global logger.
type Logger struct {
	Debug *logrus.Logger
	Info  *logrus.Logger
	Warn  *logrus.Logger
	Error *logrus.Logger
}

var (
	logger    = newConsoleLogger()
	logPath   = "./logs"
	debug     bool
	logPrefix string
)

// Init creates global logger instances writing to stdout and rotating files.
func Init(debugMode bool) {
	err := os.MkdirAll(logPath, 0700)
	if err != nil {
		panic(err)
	}

	debug = debugMode

	logger = Logger{
		Debug: newLogger(logNameDebug, logrus.DebugLevel),
		Info:  newLogger(logNameInfo, logrus.InfoLevel),
		Warn:  newLogger(logNameWarning, logrus.WarnLevel),
		Error: newLogger(logNameError, logrus.ErrorLevel),
	}
}

// SetPath sets the directory log files are written to, must be called before Init.
func SetPath(dir string) {
	if dir != "" {
		logPath = dir
	}
}

// SetPrefix sets the output prefix for the logger.
func SetPrefix(prefix string) {
	logPrefix = prefix
}

// newConsoleLogger is used until Init is called, e.g., in tests.
func newConsoleLogger() Logger {
	l := &logrus.Logger{
		Out:       os.Stdout,
		Formatter: new(logFormatter),
		Level:     logrus.InfoLevel,
		Hooks:     make(logrus.LevelHooks),
	}

	return Logger{Debug: l, Info: l, Warn: l, Error: l}
}

func newLogger(fileName string, level logrus.Level) *logrus.Logger {
	fileName = path.Join(logPath, fileName)

	l := &logrus.Logger{
		Out:       nil,
		Formatter: new(logFormatter),
		Level:     level,
		Hooks:     make(logrus.LevelHooks),
		ExitFunc:  os.Exit,
	}

	if !debug && level >= logrus.DebugLevel {
		l.SetOutput(ioutil.Discard)
		return l
	}

	l.SetOutput(io.MultiWriter(os.Stdout, newLogWriter(fileName)))
	return l
}

func newLogWriter(logPath string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    10,
		MaxBackups: 10,
		MaxAge:     30,
	}
}

// logFormatter defines custom formatter for logrus
type logFormatter struct{}

// Format formats log output.
func (f *logFormatter) Format(e *logrus.Entry) ([]byte, error) {
	if logPrefix != "" {
		return []byte(fmt.Sprintf("%s [%s][%s] %s", e.Time.Format(logTimeFormat), logPrefix, e.Level.String(), e.Message)), nil
	}

	return []byte(fmt.Sprintf("%s [%s] %s", e.Time.Format(logTimeFormat), e.Level.String(), e.Message)), nil
}

// Debugf logs in Debug level.
func Debugf(format string, v ...interface{}) {
	logger.Debug.Debug(logHandler(format, v))
}

// Infof logs in Info level.
func Infof(format string, v ...interface{}) {
	logger.Info.Info(logHandler(format, v))
}

// Info logs in Info level.
func Info(v ...interface{}) {
	logger.Info.Info(logHandler("", v))
}

// Warnf logs in Warn level.
func Warnf(format string, v ...interface{}) {
	logger.Warn.Warn(logHandler(format, v))
}

// Warn logs in Warn level.
func Warn(v ...interface{}) {
	logger.Warn.Warn(logHandler("", v))
}

// Errorf logs in Error level.
func Errorf(format string, v ...interface{}) {
	logger.Error.Error(logHandler(format, v))
}

// Fatal logs in Fatal level and exits with code 1.
func Fatal(v ...interface{}) {
	logger.Error.Fatal(logHandler("", v))
}

func logHandler(format string, v []interface{}) (msg string) {
	defer func() {
		if !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
	}()

	if debug {
		msg = fmt.Sprintf("[%s] ", fileInfo())
	}

	if v == nil {
		return msg + format
	}

	for i := 0; i < len(v); i++ {
		v[i] = extract(v[i])
	}

	if format == "" {
		for _, v := range v {
			msg += fmt.Sprint(v)
		}
		return msg
	}

	return msg + fmt.Sprintf(format, v...)
}

// extract renders errors with their stack in debug mode and structs as JSON.
func extract(v interface{}) interface{} {
	if v == nil {
		return nil
	}

	if e, ok := v.(error); ok {
		if !debug {
			return e.Error()
		}
		err := eParser.Wrap(e, 3)
		return fmt.Sprintf("%s\n%s", err.Error(), string(err.Stack()))
	}

	if stringer, ok := v.(fmt.Stringer); ok {
		return stringer.String()
	}

	t := reflect.TypeOf(v)

	switch t.Kind() {
	case reflect.Struct:
		b, err := json.Marshal(v)
		if err != nil {
			e := eParser.Wrap(err, 0)
			return fmt.Sprintf("%s\n%s", e.Error(), string(e.Stack()))
		}
		return string(b)
	case reflect.Ptr:
		if reflect.ValueOf(v).IsNil() {
			return v
		}
		return extract(reflect.ValueOf(v).Elem().Interface())
	default:
		return v
	}
}

func fileInfo() string {
	_, file, line, ok := runtime.Caller(3)
	if !ok {
		file = "<???>"
	} else if slash := strings.LastIndex(file, filePathPrefix); slash >= 0 {
		slash += strings.Index(file[slash:], "/") + 1
		file = file[slash:]
	}

	return fmt.Sprintf("%s:%d", file, line)
}
