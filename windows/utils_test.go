package windows

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChartDimensions(t *testing.T) {
	w, h := chartDimensions(0)
	assert.Equal(t, 640, w, "width has a floor")
	assert.Equal(t, 300, h)

	w, h = chartDimensions(1000)
	assert.Equal(t, 1000, w)
	assert.Equal(t, 450, h)

	_, h = chartDimensions(2000)
	assert.Equal(t, 560, h, "height has a ceiling")
}

func TestTruncatePath(t *testing.T) {
	assert.Equal(t, "/short", truncatePath("/short", 20))
	assert.Equal(t, "…h.csv", truncatePath("/a/very/long/path.csv", 6))
	assert.Equal(t, "…", truncatePath("/a/b", 1))
}

func TestIsDataFile(t *testing.T) {
	assert.True(t, isDataFile("data.csv"))
	assert.True(t, isDataFile("report.xlsx"))
	assert.False(t, isDataFile("notes.txt"))
	assert.False(t, isDataFile("data.xls"))
}

func TestCleanFilename(t *testing.T) {
	assert.Equal(t, "my_data", cleanFilename("/tmp/my data.csv"))
	assert.Equal(t, "sales-2025", cleanFilename("sales-2025.xlsx"))
	assert.Equal(t, "export", cleanFilename("!!!.csv"))
}
