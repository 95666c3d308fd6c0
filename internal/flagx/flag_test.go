package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		names []string
		want  []string
	}{
		{
			name:  "short flag with separate value",
			args:  []string{"-i", "200000", "-s", "sqlite"},
			names: []string{"i"},
			want:  []string{"-i", "200000"},
		},
		{
			name:  "double dash with equals",
			args:  []string{"--config=alt.json", "-i", "5"},
			names: []string{"c", "config"},
			want:  []string{"--config=alt.json"},
		},
		{
			name:  "names may be given with dashes",
			args:  []string{"-c", "a.json"},
			names: []string{"-c"},
			want:  []string{"-c", "a.json"},
		},
		{
			name:  "order preserved",
			args:  []string{"--config=first.json", "-x", "1", "-c", "second.json"},
			names: []string{"c", "config"},
			want:  []string{"--config=first.json", "-c", "second.json"},
		},
		{
			name:  "unknown flags and positionals ignored",
			args:  []string{"-x", "1", "--y=2", "positional"},
			names: []string{"c"},
			want:  []string{},
		},
		{
			name:  "flag without value at end kept",
			args:  []string{"-c"},
			names: []string{"c"},
			want:  []string{"-c"},
		},
		{
			name:  "flag followed by another flag",
			args:  []string{"-c", "-i"},
			names: []string{"c"},
			want:  []string{"-c"},
		},
		{
			name:  "equals value not followed by separate value",
			args:  []string{"-i=3", "7"},
			names: []string{"i"},
			want:  []string{"-i=3"},
		},
		{
			name:  "empty input",
			args:  nil,
			names: []string{"c"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.names))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "short", args: []string{"cmd", "-c", "a.json", "-i", "5"}, want: "a.json"},
		{name: "long", args: []string{"cmd", "-i", "5", "-config=b.json"}, want: "b.json"},
		{name: "absent", args: []string{"cmd", "-i", "5"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			assert.Equal(t, tt.want, ConfigFileFlag())
		})
	}
}
