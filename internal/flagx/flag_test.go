package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-a", ":9090", "-backend", "memory"},
			allowed: []string{"-a"},
			want:    []string{"-a", ":9090"},
		},
		{
			name:    "equals form",
			args:    []string{"-api=https://example.test/api", "-x", "1"},
			allowed: []string{"-api"},
			want:    []string{"-api=https://example.test/api"},
		},
		{
			name:    "order preserved across forms",
			args:    []string{"--config=a.yaml", "-c", "b.json", "-z"},
			allowed: []string{"-c", "--config"},
			want:    []string{"--config=a.yaml", "-c", "b.json"},
		},
		{
			name:    "nothing allowed matches",
			args:    []string{"positional", "--y=2"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "next arg is a flag, not a value",
			args:    []string{"-c", "-l", "debug"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	assert.Equal(t, "usergate.yaml", ConfigFileFlag([]string{"-a", ":1", "-c", "usergate.yaml"}))
	assert.Equal(t, "cfg.json", ConfigFileFlag([]string{"-config=cfg.json"}))
	assert.Equal(t, "", ConfigFileFlag([]string{"-a", ":1"}))
	assert.Equal(t, "", ConfigFileFlag(nil))
}
