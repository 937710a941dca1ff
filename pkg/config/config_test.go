package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, DefaultTargets, cfg.Targets)
	assert.Equal(t, "", cfg.BaseDir)
	assert.Equal(t, DefaultIndent, cfg.Indent)
	assert.Equal(t, "    ", cfg.IndentString())
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(`{
  "targets": ["docs/dev.json", "docs/prod.json", "docs/staging.json"],
  "base_dir": "/srv/app",
  "indent": 2
}`), 0644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, []string{"docs/dev.json", "docs/prod.json", "docs/staging.json"}, cfg.Targets)
	assert.Equal(t, "/srv/app", cfg.BaseDir)
	assert.Equal(t, "  ", cfg.IndentString())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("POSTMAN_MERGE_BASE_DIR", "/from/env")
	t.Setenv("POSTMAN_MERGE_INDENT", "0")

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.BaseDir)
	assert.Equal(t, 0, cfg.Indent)
	assert.Equal(t, "", cfg.IndentString())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		set     map[string]interface{}
		wantErr string
	}{
		{name: "negative indent", set: map[string]interface{}{"indent": -1}, wantErr: "indent must not be negative"},
		{name: "empty targets", set: map[string]interface{}{"targets": []string{}}, wantErr: "no target collections"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			for k, val := range tt.set {
				v.Set(k, val)
			}

			_, err := Load(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestResolveTargets(t *testing.T) {
	base := t.TempDir()
	abs := filepath.Join(t.TempDir(), "elsewhere.json")

	cfg := &Config{Targets: []string{"a.json", abs, ""}, BaseDir: base}

	tests := []struct {
		name      string
		overrides []string
		want      []string
	}{
		{name: "configured targets", want: []string{filepath.Join(base, "a.json"), abs}},
		{name: "overrides replace targets", overrides: []string{"sub/b.json"}, want: []string{filepath.Join(base, "sub", "b.json")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cfg.ResolveTargets(tt.overrides)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveTargets_WorkingDirectory(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	cfg := &Config{Targets: []string{"x.json"}}
	got, err := cfg.ResolveTargets(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(wd, "x.json")}, got)
}

func TestResolveTargets_Empty(t *testing.T) {
	cfg := &Config{Targets: []string{""}, BaseDir: t.TempDir()}

	_, err := cfg.ResolveTargets(nil)
	assert.Error(t, err)
}

func TestInitializeFolder(t *testing.T) {
	dir := t.TempDir()

	created, err := InitializeFolder(dir)
	require.NoError(t, err)
	assert.True(t, created)

	data, err := os.ReadFile(filepath.Join(dir, FolderName, FileName))
	require.NoError(t, err)

	var cfg Config
	require.NoError(t, json.Unmarshal(data, &cfg))
	assert.Equal(t, DefaultTargets, cfg.Targets)
	assert.Equal(t, DefaultIndent, cfg.Indent)

	created, err = InitializeFolder(dir)
	require.NoError(t, err)
	assert.False(t, created)
}
