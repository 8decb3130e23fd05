// Package logger 把 logrus 输出到用户目录下的日志文件。终端被界面占用，所以日志不能写到 stdout。
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/palemoky/landlord-engine/internal/config"
)

// maxLogSize 超过该大小的日志文件在启动时被轮转
var maxLogSize int64 = 10 * 1024 * 1024

var (
	logFile *os.File
	logPath string
	log     = logrus.New()
)

// DefaultPath 返回 ~/.fight-the-landlord/debug.log
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".fight-the-landlord", "debug.log"), nil
}

// Init 按配置打开日志文件并设置级别和格式
func Init(cfg config.LogConfig) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	path := cfg.File
	if path == "" {
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	Close()
	if err := rotate(path); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logFile, logPath = f, path

	log.SetOutput(f)
	log.SetLevel(level)
	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	log.WithField("path", path).Info("logger initialized")
	return log, nil
}

// rotate 文件过大时重命名为 debug.log.<unix 时间>
func rotate(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return nil
	}
	backup := fmt.Sprintf("%s.%d", path, time.Now().UnixNano())
	if err := os.Rename(path, backup); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}
	return nil
}

// Close 关闭日志文件
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// Logger 返回当前的 logger
func Logger() *logrus.Logger {
	return log
}

// LogPanic 记录 panic 和调用栈
func LogPanic(r any) {
	log.WithField("stack", string(debug.Stack())).Errorf("panic: %v", r)
}

// GetLogPath 返回当前日志文件路径
func GetLogPath() string {
	return logPath
}
