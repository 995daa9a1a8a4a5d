package generator

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runlog/internal/app/errors"
	"runlog/internal/config"
	"runlog/internal/config/logger"
)

func Test_DefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, config.FileName, opts.Path)
	assert.Equal(t, config.FormatYAML, opts.Format)
	require.NotNil(t, opts.Config)
	assert.Equal(t, config.DefaultBannerRate, opts.Config.Overlay.BannerRate)
}

func Test_NewGenerator(t *testing.T) {
	assert.NotNil(t, NewGenerator(logger.Nop()))
}

func Test_Generator_Generate(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)

	gen := newGenerator(&bytes.Buffer{}, logger.Nop())

	cfg := config.DefaultConfig()
	cfg.Buffer.Capacity = 250
	cfg.Capture.Ignore = []string{"*heartbeat*"}

	require.NoError(t, gen.Generate(Options{Path: path, Config: cfg}, false, false))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# runlog configuration")
	assert.Contains(t, string(content), "capacity: 250")
	assert.Contains(t, string(content), "banner_rate: 0.04")

	loaded, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 250, loaded.Buffer.Capacity)
	assert.Equal(t, []string{"*heartbeat*"}, loaded.Capture.Ignore)
}

func Test_Generator_Generate_NilConfigUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)

	gen := newGenerator(&bytes.Buffer{}, logger.Nop())
	require.NoError(t, gen.Generate(Options{Path: path}, false, false))

	loaded, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBufferCapacity, loaded.Buffer.Capacity)
}

func Test_Generator_Generate_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.TOMLFileName)

	gen := newGenerator(&bytes.Buffer{}, logger.Nop())
	require.NoError(t, gen.Generate(Options{Path: path}, false, false))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# runlog configuration")
	assert.Contains(t, string(content), "[capture]")

	loaded, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultProducerRate, loaded.Producer.Rate)
}

func Test_Generator_Generate_UnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)

	gen := newGenerator(&bytes.Buffer{}, logger.Nop())

	err := gen.Generate(Options{Path: path, Format: "ini"}, false, false)
	assert.ErrorIs(t, err, errors.ErrUnknownFormat)
	assert.NoFileExists(t, path)
}

func Test_Generator_Generate_FileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0600))

	gen := newGenerator(&bytes.Buffer{}, logger.Nop())

	err := gen.Generate(Options{Path: path}, false, false)
	assert.ErrorIs(t, err, errors.ErrFileExists)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(content))
}

func Test_Generator_Generate_Force(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0600))

	gen := newGenerator(&bytes.Buffer{}, logger.Nop())
	require.NoError(t, gen.Generate(Options{Path: path}, true, false))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "banner_rate")
}

func Test_Generator_Generate_DryRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0600))

	var out bytes.Buffer

	gen := newGenerator(&out, logger.Nop())
	require.NoError(t, gen.Generate(Options{Path: path}, false, true))

	assert.Contains(t, out.String(), "severities:")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(content), "dry run never touches the file")
}
