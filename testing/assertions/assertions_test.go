package assertions_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prysmaticlabs/beacon-fuzz-corpus/testing/assertions"
	"github.com/sirupsen/logrus/hooks/test"
)

type recordingTB struct {
	errors []string
}

func (r *recordingTB) Errorf(format string, args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recordingTB) Fatalf(format string, args ...interface{}) {
	r.Errorf(format, args...)
}

func (r *recordingTB) Helper() {}

func TestEqual(t *testing.T) {
	tests := []struct {
		name     string
		expected interface{}
		actual   interface{}
		msg      []interface{}
		wantErr  string
	}{
		{name: "equal", expected: 42, actual: 42},
		{name: "not equal", expected: 42, actual: 41, wantErr: "Values are not equal, want: 42 (int), got: 41 (int)"},
		{name: "custom message", expected: 1, actual: 2, msg: []interface{}{"Custom %s", "values"}, wantErr: "Custom values"},
		{name: "mismatched types", expected: uint64(1), actual: 1, wantErr: "want: 1 (uint64), got: 1 (int)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := &recordingTB{}
			assertions.Equal(tb.Errorf, tt.expected, tt.actual, tt.msg...)
			checkRecorded(t, tb, tt.wantErr)
		})
	}
}

func TestDeepEqual(t *testing.T) {
	type pair struct{ A, B []byte }
	tb := &recordingTB{}
	assertions.DeepEqual(tb.Errorf, &pair{A: []byte{1}}, &pair{A: []byte{1}})
	checkRecorded(t, tb, "")

	tb = &recordingTB{}
	assertions.DeepEqual(tb.Errorf, &pair{A: []byte{1}}, &pair{A: []byte{2}})
	checkRecorded(t, tb, "Values are not equal")
	if !strings.Contains(tb.errors[0], "diff:") {
		t.Errorf("Expected a diff in %q", tb.errors[0])
	}
}

func TestErrorHelpers(t *testing.T) {
	sentinel := errors.New("sentinel")
	wrapped := fmt.Errorf("outer: %w", sentinel)

	tb := &recordingTB{}
	assertions.NoError(tb.Errorf, nil)
	assertions.ErrorIs(tb.Errorf, wrapped, sentinel)
	assertions.ErrorContains(tb.Errorf, "outer", wrapped)
	checkRecorded(t, tb, "")

	tb = &recordingTB{}
	assertions.NoError(tb.Errorf, wrapped)
	checkRecorded(t, tb, "Unexpected error: outer: sentinel")

	tb = &recordingTB{}
	assertions.ErrorContains(tb.Errorf, "missing", nil)
	checkRecorded(t, tb, "Expected error not returned, got: <nil>, want: missing")
}

func TestNotNil(t *testing.T) {
	var nilSlice []byte
	tb := &recordingTB{}
	assertions.NotNil(tb.Errorf, nilSlice)
	checkRecorded(t, tb, "Unexpected nil value")

	tb = &recordingTB{}
	assertions.NotNil(tb.Errorf, []byte{})
	checkRecorded(t, tb, "")
}

func TestLogsContain(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.WithField("kind", "VoluntaryExit").Info("Generated operation")

	tb := &recordingTB{}
	assertions.LogsContain(tb.Errorf, hook, "Generated operation", true)
	assertions.LogsContain(tb.Errorf, hook, "VoluntaryExit", true)
	assertions.LogsContain(tb.Errorf, hook, "rejected", false)
	checkRecorded(t, tb, "")

	tb = &recordingTB{}
	assertions.LogsContain(tb.Errorf, hook, "rejected", true)
	checkRecorded(t, tb, "Expected log not found: rejected")
}

func checkRecorded(t *testing.T, tb *recordingTB, want string) {
	t.Helper()
	if want == "" {
		if len(tb.errors) != 0 {
			t.Errorf("Unexpected assertion failures: %v", tb.errors)
		}
		return
	}
	if len(tb.errors) == 0 {
		t.Fatalf("Expected failure containing %q", want)
	}
	if !strings.Contains(tb.errors[0], want) {
		t.Errorf("Expected %q to contain %q", tb.errors[0], want)
	}
}
