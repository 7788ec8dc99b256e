package logger

import (
	"io"
	"log"
	"os"
)

var (
	InfoLog  *log.Logger
	ErrorLog *log.Logger
	WarnLog  *log.Logger
	logFile  *os.File
)

const flags = log.Ldate | log.Ltime | log.Lshortfile

// InitLogger sends log output to the console and appends it to filename.
func InitLogger(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}
	logFile = f

	setLoggers(io.MultiWriter(os.Stdout, logFile), io.MultiWriter(os.Stderr, logFile))
	return nil
}

// SetOutput routes every level to w.
func SetOutput(w io.Writer) {
	setLoggers(w, w)
}

func setLoggers(out, errOut io.Writer) {
	InfoLog = log.New(out, "INFO: ", flags)
	ErrorLog = log.New(errOut, "ERROR: ", flags)
	WarnLog = log.New(out, "WARN: ", flags)
}

// Close releases the log file and falls back to console output.
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
		Init()
	}
}

func Init() {
	setLoggers(os.Stdout, os.Stderr)
}

func Info(format string, v ...interface{}) {
	if InfoLog == nil {
		Init()
	}
	InfoLog.Printf(format, v...)
}

func Infof(format string, v ...interface{}) {
	Info(format, v...)
}

func Error(format string, v ...interface{}) {
	if ErrorLog == nil {
		Init()
	}
	ErrorLog.Printf(format, v...)
}

func Errorf(format string, v ...interface{}) {
	Error(format, v...)
}

func Warn(format string, v ...interface{}) {
	if WarnLog == nil {
		Init()
	}
	WarnLog.Printf(format, v...)
}

func Warnf(format string, v ...interface{}) {
	Warn(format, v...)
}
