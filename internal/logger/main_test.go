package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/inkwell-cms/inkwell/internal/logger"
)

func TestInit(t *testing.T) {
	type testCase struct {
		name    string
		cfg     logger.Log
		wantErr error
	}

	testCases := []testCase{
		{
			name: "console enabled log level info",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true},
			},
		},
		{
			name: "console writer enabled",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true, UseConsoleWriter: true},
			},
		},
		{
			name: "trace level enables stack marshalling",
			cfg: logger.Log{
				LogLevel:    "trace",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true},
			},
		},
		{
			name: "unsupported log level",
			cfg: logger.Log{
				LogLevel:    "verbose",
				ServiceName: "test",
				AppName:     "test",
			},
			wantErr: errors.New("loglevel verbose is not supported"),
		},
		{
			name: "empty service name",
			cfg: logger.Log{
				LogLevel: "info",
				AppName:  "test",
			},
			wantErr: logger.ErrServiceNameIsEmpty,
		},
		{
			name: "empty app name",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
			},
			wantErr: logger.ErrAppNameIsEmpty,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := logger.Init(tc.cfg)

			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Init() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("Init() error = nil, want %v", tc.wantErr)
			}
		})
	}
}

func TestLevelWriterRouting(t *testing.T) {
	var info, warn, errBuf, trace bytes.Buffer

	lw := &logger.LevelWriter{
		InfoWriter:  &info,
		WarnWriter:  &warn,
		ErrorWriter: &errBuf,
		TraceWriter: &trace,
	}

	tests := []struct {
		level  zerolog.Level
		target *bytes.Buffer
	}{
		{zerolog.InfoLevel, &info},
		{zerolog.DebugLevel, &info},
		{zerolog.WarnLevel, &warn},
		{zerolog.ErrorLevel, &errBuf},
		{zerolog.FatalLevel, &errBuf},
		{zerolog.TraceLevel, &trace},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			info.Reset()
			warn.Reset()
			errBuf.Reset()
			trace.Reset()

			if _, err := lw.WriteLevel(tt.level, []byte("x")); err != nil {
				t.Fatalf("WriteLevel() error = %v", err)
			}

			if tt.target.Len() == 0 {
				t.Errorf("level %s was not routed to the expected writer", tt.level)
			}
		})
	}

	// disabled level writes nowhere
	n, err := lw.WriteLevel(zerolog.Disabled, []byte("x"))
	if err != nil || n != 0 {
		t.Errorf("WriteLevel(Disabled) = (%d, %v), want (0, nil)", n, err)
	}
}
