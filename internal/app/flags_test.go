package app

import (
	"flag"
	"io"
	"testing"
	"time"
)

func TestBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-gps", "4", "-max", "10", "-opt", "size=12", "-opt", "margin=1"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GPS != 4 || cfg.MaxGenerations != 10 {
		t.Fatalf("parsed %+v", cfg)
	}
	if cfg.Options["size"] != "12" || cfg.Options["margin"] != "1" {
		t.Fatalf("options %v", cfg.Options)
	}
	if cfg.Interval() != 250*time.Millisecond {
		t.Fatalf("interval %v", cfg.Interval())
	}

	if err := fs.Parse([]string{"-opt", "nokey"}); err == nil {
		t.Fatal("expected malformed option to fail")
	}
}

func TestIntervalZero(t *testing.T) {
	cfg := NewConfig()
	cfg.GPS = 0
	if cfg.Interval() != 0 {
		t.Fatal("zero GPS should disable pacing")
	}
}
