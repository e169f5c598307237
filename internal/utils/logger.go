package utils

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogEvent prints standardized log line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, message)
}

// SetupLogOutput sends the standard logger to stdout and a rotating file in dir.
// An empty dir keeps stdout only. The returned closer flushes the file.
func SetupLogOutput(dir string) io.Closer {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		log.SetOutput(os.Stdout)
		return io.NopCloser(nil)
	}
	file := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "resale.log"),
		MaxSize:    100,
		MaxBackups: 10,
		MaxAge:     30,
		Compress:   true,
	}
	log.SetOutput(io.MultiWriter(os.Stdout, file))
	return file
}
