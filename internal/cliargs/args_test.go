// SPDX-License-Identifier: MPL-2.0

package cliargs

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"sonar-runner-cli/internal/props"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []string
		want      props.Properties
		wantDebug bool
	}{
		{
			name: "no arguments",
			args: nil,
			want: props.Properties{},
		},
		{
			name: "attached definition",
			args: []string{"-Dsonar.projectKey=demo"},
			want: props.Properties{"sonar.projectKey": "demo"},
		},
		{
			name: "separate definition",
			args: []string{"-D", "sonar.projectKey=demo"},
			want: props.Properties{"sonar.projectKey": "demo"},
		},
		{
			name: "long define",
			args: []string{"--define", "a=b"},
			want: props.Properties{"a": "b"},
		},
		{
			name: "key without value defaults to true",
			args: []string{"-Dfoo"},
			want: props.Properties{"foo": "true"},
		},
		{
			name: "empty value",
			args: []string{"-Dfoo="},
			want: props.Properties{"foo": ""},
		},
		{
			name: "value keeps further equals signs",
			args: []string{"-Durl=jdbc:h2:tcp://host/db;a=b"},
			want: props.Properties{"url": "jdbc:h2:tcp://host/db;a=b"},
		},
		{
			name: "last occurrence wins",
			args: []string{"-Da=1", "-D", "a=2", "-Db=1", "-Da=3"},
			want: props.Properties{"a": "3", "b": "1"},
		},
		{
			name: "value after -D is taken verbatim",
			args: []string{"-D", "-X"},
			want: props.Properties{"-X": "true"},
		},
		{
			name: "empty key",
			args: []string{"-D=x"},
			want: props.Properties{"": "x"},
		},
		{
			name:      "short debug",
			args:      []string{"-X"},
			want:      props.Properties{VerboseKey: "true"},
			wantDebug: true,
		},
		{
			name:      "long debug with definitions",
			args:      []string{"-Da=1", "--debug"},
			want:      props.Properties{"a": "1", VerboseKey: "true"},
			wantDebug: true,
		},
		{
			name:      "explicit verbose definition after debug wins",
			args:      []string{"-X", "-Dsonar.verbose=false"},
			want:      props.Properties{VerboseKey: "false"},
			wantDebug: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.args, err)
			}
			if !reflect.DeepEqual(got.Properties, tt.want) {
				t.Errorf("Parse(%q).Properties = %v, want %v", tt.args, got.Properties, tt.want)
			}
			if got.Debug != tt.wantDebug {
				t.Errorf("Parse(%q).Debug = %v, want %v", tt.args, got.Debug, tt.wantDebug)
			}
		})
	}
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	tests := [][]string{
		{"-h"},
		{"--help"},
		{"-Da=1", "-h"},
		{"-h", "--not-an-option"},
		{"-X", "--help", "-D"},
	}

	for _, args := range tests {
		got, err := Parse(args)
		if !errors.Is(err, ErrHelpRequested) {
			t.Errorf("Parse(%q) error = %v, want ErrHelpRequested", args, err)
		}
		if got != nil {
			t.Errorf("Parse(%q) returned arguments alongside help: %+v", args, got)
		}
	}
}

func TestParse_UsageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		args        []string
		wantMessage string
	}{
		{
			name:        "trailing short define",
			args:        []string{"-Da=1", "-D"},
			wantMessage: "Missing argument for option --define",
		},
		{
			name:        "trailing long define",
			args:        []string{"--define"},
			wantMessage: "Missing argument for option --define",
		},
		{
			name:        "positional argument",
			args:        []string{"build"},
			wantMessage: "Unrecognized option: build",
		},
		{
			name:        "unknown flag",
			args:        []string{"-X", "--verbose"},
			wantMessage: "Unrecognized option: --verbose",
		},
		{
			name:        "long define with equals is not a define",
			args:        []string{"--define=a=b"},
			wantMessage: "Unrecognized option: --define=a=b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.args)
			var usageErr *UsageError
			if !errors.As(err, &usageErr) {
				t.Fatalf("Parse(%q) error = %v, want *UsageError", tt.args, err)
			}
			if usageErr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", usageErr.Message, tt.wantMessage)
			}
			if usageErr.Error() != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", usageErr.Error(), tt.wantMessage)
			}
		})
	}
}

func TestParseDefinition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		def       string
		wantKey   string
		wantValue string
	}{
		{"foo", "foo", "true"},
		{"foo=", "foo", ""},
		{"foo=bar", "foo", "bar"},
		{"foo=bar=baz", "foo", "bar=baz"},
		{"=bar", "", "bar"},
		{"", "", "true"},
	}

	for _, tt := range tests {
		key, value := ParseDefinition(tt.def)
		if key != tt.wantKey || value != tt.wantValue {
			t.Errorf("ParseDefinition(%q) = (%q, %q), want (%q, %q)", tt.def, key, value, tt.wantKey, tt.wantValue)
		}
	}
}

func TestWriteUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteUsage(&buf, DefaultProgram); err != nil {
		t.Fatalf("WriteUsage() error = %v", err)
	}

	want := strings.Join([]string{
		"",
		"usage: sonar-runner [options]",
		"",
		"Options:",
		" -h,--help             Display help information",
		" -X,--debug            Produce execution debug output",
		" -D,--define <arg>     Define property",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("WriteUsage() =\n%q\nwant\n%q", got, want)
	}
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestWriteUsage_WriteError(t *testing.T) {
	t.Parallel()

	writeErr := errors.New("stdout closed")
	if err := WriteUsage(failingWriter{err: writeErr}, DefaultProgram); !errors.Is(err, writeErr) {
		t.Errorf("WriteUsage() error = %v, want it to wrap %v", err, writeErr)
	}
}
