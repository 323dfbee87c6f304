package daylog_test

import (
	"os"

	"github.com/ardnew/daylog"
)

func Example_basic() {
	logger, err := daylog.Make("application")
	if err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Hello, world!")
}

func Example_configuration() {
	logger, err := daylog.Make("svc",
		daylog.WithLevel(daylog.LevelInfo),
		daylog.WithTimeLayout("RFC3339Nano"),
		daylog.WithConsole(os.Stdout))
	if err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Debug("discarded below the threshold")
	logger.Warningf("disk usage at %d%%", 93)
}

func Example_fileLogging() {
	logger, err := daylog.Make("svc",
		daylog.WithFileLogging(true),
		daylog.WithFolder(os.TempDir()),
		daylog.WithCompress(true))
	if err != nil {
		// File logging is fatal at construction; fall back to console only.
		logger, _ = daylog.Make("svc")
	}
	defer logger.Close()

	logger.Error("boom")
}

func Example_customFormatter() {
	logger, err := daylog.Make("svc", daylog.WithConsole(os.Stdout))
	if err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.SetFormatter(daylog.NewLineFormatter("Kitchen"))
	logger.Info("short timestamps")
}
