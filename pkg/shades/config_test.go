package shades

import(
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromYaml(t *testing.T) {
	y := `
verbosity: 1
params:
  threshold: 10
  norm: 0
workers: 3
`
	c, err := NewConfigFromYaml([]byte(y))
	require.NoError(t, err)
	assert.Equal(t, 1, c.Verbosity)
	assert.Equal(t, Params{Threshold: 10, Norm: 0}, c.Params)
	assert.Equal(t, 3, c.Workers)
	assert.Equal(t, DefaultMaxPixels, c.MaxPixels, "unset fields keep their defaults")
}

func TestConfigFinalize(t *testing.T) {
	c := NewConfig()
	c.Workers = 0
	require.NoError(t, c.Finalize())
	assert.Equal(t, 1, c.Workers)

	c.Params.Threshold = 120
	assert.True(t, errors.Is(c.Finalize(), ErrInvalidParameters))

	c = NewConfig()
	c.Params.Norm = -1
	assert.True(t, errors.Is(c.Finalize(), ErrInvalidParameters))

	c = NewConfig()
	c.MaxPixels = -5
	assert.True(t, errors.Is(c.Finalize(), ErrInvalidParameters))

	_, err := NewConfigFromYaml([]byte("params:\n  threshold: 200\n"))
	assert.True(t, errors.Is(err, ErrInvalidParameters))
}

func TestConfigSaveLoad(t *testing.T) {
	c := NewConfig()
	c.Params = Params{Threshold: 12, Norm: 7}
	c.Workers = 2

	filename := filepath.Join(t.TempDir(), "last.yaml")
	require.NoError(t, c.SaveConfig(filename))

	c2, err := LoadConfig(filename)
	require.NoError(t, err)
	assert.Equal(t, c, c2)
	assert.Contains(t, c.AsYaml(), "threshold: 12")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParams(t *testing.T) {
	p := NewParams()
	assert.Equal(t, Params{Threshold: 5, Norm: 5}, p)
	assert.InDelta(t, 0.95, p.NearWhite(), 1e-6)
	assert.Equal(t, "max-rgb", Params{Norm: 0}.EstimatorName())
	assert.Equal(t, "grey-world", Params{Norm: 1}.EstimatorName())
	assert.Contains(t, p.String(), "p=5")
}
