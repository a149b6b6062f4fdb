package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/squircle"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "card.toml", `
width = 100
height = 60.5
radius = 20
topLeftRadius = 40
cornerSmoothing = 0.6
preserveSmoothing = true
precision = 2
`)
	f, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, squircle.Params{
		Width:             100,
		Height:            60.5,
		Radius:            20,
		TopLeftRadius:     squircle.Float(40),
		CornerSmoothing:   0.6,
		PreserveSmoothing: true,
	}, f.Params())
	assert.Equal(t, 2, f.OutputPrecision())
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"card.yaml", "card.YML"} {
		path := writeFile(t, dir, name, `
width: 100
height: 60
bottomRightRadius: 0
`)
		f, err := Load(path)
		require.NoError(t, err, name)

		assert.Equal(t, squircle.Params{
			Width:             100,
			Height:            60,
			BottomRightRadius: squircle.Float(0),
			CornerSmoothing:   DefaultCornerSmoothing,
			PreserveSmoothing: DefaultPreserveSmoothing,
		}, f.Params(), name)
		assert.Equal(t, squircle.DefaultPrecision, f.OutputPrecision())
	}
}

func TestLoadEmpty(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"empty.toml", "empty.yaml"} {
		f, err := Load(writeFile(t, dir, name, ""))
		require.NoError(t, err, name)
		assert.Equal(t, File{}, f, name)
		assert.Equal(t, DefaultCornerSmoothing, f.Params().CornerSmoothing)
		assert.True(t, f.Params().PreserveSmoothing)
	}
}

func TestLoadUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(writeFile(t, dir, "bad.toml", "width = 1\nwidht = 2\n"))
	assert.Error(t, err)
	_, err = Load(writeFile(t, dir, "bad.yaml", "width: 1\nwidht: 2\n"))
	assert.Error(t, err)
}

func TestLoadSyntaxError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.toml", "width = 100\nheight = = 3\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "line 2")

	_, err = Load(writeFile(t, dir, "broken.yaml", "width: [1\n"))
	assert.Error(t, err)
}

func TestLoadUnknownFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "card.json", `{"width": 100}`)
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	writeFile(t, home, "card.toml", "width = 42\n")
	f, err := Load("~/card.toml")
	require.NoError(t, err)
	assert.Equal(t, 42.0, f.Width)
}

func TestDecodeInvalidFormat(t *testing.T) {
	_, err := Decode(strings.NewReader(""), Format(0))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]Format{
		"a.toml":         TOML,
		"dir/b.TOML":     TOML,
		"c.yaml":         YAML,
		"~/squircle.yml": YAML,
	} {
		got, err := FormatOf(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
	_, err := FormatOf("noext")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestPreserveSmoothingOverride(t *testing.T) {
	dir := t.TempDir()
	f, err := Load(writeFile(t, dir, "card.yaml", "width: 60\nheight: 40\npreserveSmoothing: false\n"))
	require.NoError(t, err)
	assert.False(t, f.Params().PreserveSmoothing)

	f, err = Load(writeFile(t, dir, "card.toml", "width = 60\nheight = 40\n"))
	require.NoError(t, err)
	assert.True(t, f.Params().PreserveSmoothing)
}
