package timeseries

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSVFromReader(t *testing.T) {
	data := "year,passengers\n1970,7.27\n1971,7.79\n1972,8.04\n"

	opts := DefaultCSVOptions()
	opts.ValueColumn = "passengers"

	s, err := LoadCSVFromReader(strings.NewReader(data), opts)
	require.NoError(t, err)

	assert.Equal(t, []float64{7.27, 7.79, 8.04}, s.Values)
	assert.Equal(t, "passengers", s.Name)
}

func TestLoadCSVDefaultsToLastColumn(t *testing.T) {
	data := "year,production\n1970,0.17\n1971,0.20\n"

	s, err := LoadCSVFromReader(strings.NewReader(data), DefaultCSVOptions())
	require.NoError(t, err)

	assert.Equal(t, []float64{0.17, 0.20}, s.Values)
	assert.Equal(t, "production", s.Name)
}

func TestLoadCSVNoHeader(t *testing.T) {
	data := "1,10.5\n2,11.5\n3,12.5\n"

	opts := DefaultCSVOptions()
	opts.HasHeader = false

	s, err := LoadCSVFromReader(strings.NewReader(data), opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{10.5, 11.5, 12.5}, s.Values)
}

func TestLoadCSVSkipsMissingValues(t *testing.T) {
	data := "y\n1.0\nNA\n2.0\nNaN\n\n3.0\n"

	s, err := LoadCSVFromReader(strings.NewReader(data), nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.0, 2.0, 3.0}, s.Values)
}

func TestLoadCSVEmpty(t *testing.T) {
	_, err := LoadCSVFromReader(strings.NewReader("y\nNA\n"), nil)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "series.csv")

	s := Named("level", []float64{1.5, 2.25, 3.125})
	require.NoError(t, SaveCSV(s, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "index,level\n"))

	loaded, err := LoadCSV(path, &CSVOptions{ValueColumn: "level", HasHeader: true, Delimiter: ','})
	require.NoError(t, err)
	assert.Equal(t, s.Values, loaded.Values)
}
