package platform

import (
	"log/slog"
	"testing"
	"time"
)

func TestOrDefault(t *testing.T) {
	log := slog.Default()

	t.Setenv("NOTEKEEPER_TEST_VAR", "")
	if got := OrDefault(log, "NOTEKEEPER_TEST_VAR", "fallback"); got != "fallback" {
		t.Errorf("OrDefault() = %q, want %q", got, "fallback")
	}

	t.Setenv("NOTEKEEPER_TEST_VAR", "from-env")
	if got := OrDefault(log, "NOTEKEEPER_TEST_VAR", "fallback"); got != "from-env" {
		t.Errorf("OrDefault() = %q, want %q", got, "from-env")
	}
}

func TestDurationDefault(t *testing.T) {
	log := slog.Default()

	tests := []struct {
		name  string
		value string
		def   string
		want  time.Duration
	}{
		{name: "Unset Uses Default", value: "", def: "10s", want: 10 * time.Second},
		{name: "Env Wins", value: "250ms", def: "10s", want: 250 * time.Millisecond},
		{name: "Garbage Falls Back", value: "soon", def: "1m", want: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NOTEKEEPER_TEST_DUR", tt.value)
			if got := DurationDefault(log, "NOTEKEEPER_TEST_DUR", tt.def); got != tt.want {
				t.Errorf("DurationDefault() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseSettings(t *testing.T) {
	logger := slog.Default()

	st := ParseSettings(
		WithLogger(logger),
		WithEventBuffer(42),
		WithPollInterval(3*time.Second),
	)

	if st.Logger != logger {
		t.Error("Logger not carried through")
	}
	if st.EventBuffer != 42 {
		t.Errorf("EventBuffer = %d, want 42", st.EventBuffer)
	}
	if st.PollInterval != 3*time.Second {
		t.Errorf("PollInterval = %v, want 3s", st.PollInterval)
	}

	// Zero options leave the zero values for the caller to default.
	st = ParseSettings()
	if st.Logger != nil || st.EventBuffer != 0 || st.PollInterval != 0 {
		t.Errorf("unexpected defaults: %+v", st)
	}
}
