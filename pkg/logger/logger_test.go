package logger

import "testing"

func TestInit(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"unknown level falls back to info", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Init(tt.level, ""); err != nil {
				t.Fatalf("Init(%q) returned error: %v", tt.level, err)
			}
			if Log == nil {
				t.Fatal("Init() left Log nil")
			}
		})
	}
}

func TestSyncWithoutInit(t *testing.T) {
	Log = nil
	if err := Sync(); err != nil {
		t.Errorf("Sync() on nil logger returned error: %v", err)
	}
}
