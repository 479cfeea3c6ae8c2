package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value",
			args:         []string{"-c", "medmate.json", "-d", "data"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "medmate.json"},
		},
		{
			name:         "equals form",
			args:         []string{"-storage=redis", "-l", "debug"},
			allowedFlags: []string{"-storage"},
			want:         []string{"-storage=redis"},
		},
		{
			name:         "unknown flags and positionals dropped",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "trailing flag without value",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-c", "-storage=memory"},
			allowedFlags: []string{"-c", "-storage"},
			want:         []string{"-c", "-storage=memory"},
		},
		{
			name:         "several allowed flags keep order",
			args:         []string{"-d", "/tmp/mm", "-latency", "1s", "-other", "x"},
			allowedFlags: []string{"-d", "-latency"},
			want:         []string{"-d", "/tmp/mm", "-latency", "1s"},
		},
		{
			name:         "empty",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short", func(t *testing.T) {
		os.Args = []string{"medmate", "-c", "/etc/medmate.json"}
		assert.Equal(t, "/etc/medmate.json", JsonConfigFlags())
	})

	t.Run("long", func(t *testing.T) {
		os.Args = []string{"medmate", "-config", "/etc/long.json"}
		assert.Equal(t, "/etc/long.json", JsonConfigFlags())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"medmate", "-storage", "memory"}
		assert.Empty(t, JsonConfigFlags())
	})

	t.Run("last wins", func(t *testing.T) {
		os.Args = []string{"medmate", "-c", "/a.json", "-config", "/b.json"}
		assert.Equal(t, "/b.json", JsonConfigFlags())
	})
}
