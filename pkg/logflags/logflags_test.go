package logflags

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func resetFlags() {
	locspec = false
	completion = false
}

func TestSetup(t *testing.T) {
	defer resetFlags()

	if err := Setup(true, "locspec,completion"); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if !LocSpec() || !Completion() {
		t.Errorf("expected locspec and completion flags to be set, got %v %v", LocSpec(), Completion())
	}
}

func TestSetupDefaultComponent(t *testing.T) {
	defer resetFlags()

	if err := Setup(true, ""); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if !LocSpec() {
		t.Errorf("expected empty component list to default to locspec")
	}
	if Completion() {
		t.Errorf("completion flag set unexpectedly")
	}
}

func TestSetupLogOutputWithoutLog(t *testing.T) {
	defer resetFlags()

	if err := Setup(false, "locspec"); err == nil {
		t.Errorf("expected error for --log-output without --log")
	}
}

func TestLoggerLevels(t *testing.T) {
	defer resetFlags()

	if lvl := LocSpecLogger().Logger.Level; lvl != logrus.PanicLevel {
		t.Errorf("disabled logger level = %v, want %v", lvl, logrus.PanicLevel)
	}
	locspec = true
	if lvl := LocSpecLogger().Logger.Level; lvl != logrus.DebugLevel {
		t.Errorf("enabled logger level = %v, want %v", lvl, logrus.DebugLevel)
	}
}
