package projectlog

import (
	"os"

	"github.com/janschottesukhothai-wq/Sukhothai-bot/config"
	"github.com/sirupsen/logrus"
)

// Init configures the process-wide logrus logger from config. Call once, before
// anything logs.
func Init(cfg *config.Config) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.Level(cfg.LogLevel))
	logrus.SetReportCaller(cfg.ReportCaller)
	logrus.SetOutput(os.Stdout)
}
