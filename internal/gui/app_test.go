package gui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"image-editor/internal/algorithms"
	"image-editor/internal/core"
	"image-editor/internal/io"
)

func newTestApplication(t *testing.T) *Application {
	t.Helper()
	fyneApp := test.NewApp()
	t.Cleanup(fyneApp.Quit)

	logger, _ := logtest.NewNullLogger()
	a := NewApplication(fyneApp, logger, core.DefaultConfig())
	t.Cleanup(a.cleanup)
	return a
}

// writeFixture saves a small gradient PNG and returns its path.
func writeFixture(t *testing.T, dir string) string {
	t.Helper()
	data := make([]byte, 0, 60*80*3)
	for y := 0; y < 60; y++ {
		for x := 0; x < 80; x++ {
			data = append(data, byte(x*3), byte(y*4), 128)
		}
	}
	mat, err := gocv.NewMatFromBytes(60, 80, gocv.MatTypeCV8UC3, data)
	require.NoError(t, err)
	defer mat.Close()

	logger, _ := logtest.NewNullLogger()
	path, err := io.NewImageLoader(logger, ".png", 0).SaveImage(mat, filepath.Join(dir, "fixture.png"))
	require.NoError(t, err)
	return path
}

func TestControlsDisabledUntilLoad(t *testing.T) {
	a := newTestApplication(t)

	assert.False(t, a.toolbar.openBtn.Disabled())
	assert.True(t, a.toolbar.saveBtn.Disabled())
	assert.True(t, a.toolbar.resetBtn.Disabled())
	for _, fb := range filterButtons {
		assert.True(t, a.toolbar.FilterButton(fb.name).Disabled(), fb.label)
	}
	assert.True(t, a.adjustments.zoomSlider.Disabled())
	assert.False(t, a.editor.HasImage())
}

func TestActionWithoutImageReportsStatus(t *testing.T) {
	a := newTestApplication(t)

	a.toolbar.onFilter(algorithms.Grayscale)
	assert.Equal(t, "Open an image first", a.status.Text)

	a.adjustments.brightnessSlider.OnChanged(1.5)
	assert.Equal(t, core.IdentityAdjustments(), a.editor.Adjustments())
}

func TestLoadEnablesControlsAndShowsImage(t *testing.T) {
	a := newTestApplication(t)
	path := writeFixture(t, t.TempDir())

	require.NoError(t, a.LoadImageFromPath(path))

	assert.False(t, a.toolbar.saveBtn.Disabled())
	assert.False(t, a.toolbar.FilterButton(algorithms.Blur).Disabled())
	assert.False(t, a.adjustments.contrastSlider.Disabled())

	bounds := a.canvas.Image().Bounds()
	assert.Equal(t, 400, bounds.Dx())
	assert.Equal(t, 400, bounds.Dy())
	assert.Contains(t, a.status.Text, "fixture.png (400x400)")
	assert.Contains(t, a.status.Text, "unchanged")
}

func TestFilterButtonAppliesFilter(t *testing.T) {
	a := newTestApplication(t)
	require.NoError(t, a.LoadImageFromPath(writeFixture(t, t.TempDir())))

	test.Tap(a.toolbar.FilterButton(algorithms.Grayscale))

	assert.Equal(t, []string{algorithms.Grayscale}, a.editor.AppliedFilters())
	assert.Contains(t, a.status.Text, "filters: grayscale")
	assert.Contains(t, a.status.Text, "PSNR")
}

func TestZoomSliderScalesPreview(t *testing.T) {
	a := newTestApplication(t)
	require.NoError(t, a.LoadImageFromPath(writeFixture(t, t.TempDir())))

	a.adjustments.zoomSlider.OnChanged(2.0)

	assert.Equal(t, 2.0, a.editor.Adjustments().Zoom)
	assert.Equal(t, 800, a.canvas.Image().Bounds().Dx())
}

func TestResetButtonRestoresSliders(t *testing.T) {
	a := newTestApplication(t)
	require.NoError(t, a.LoadImageFromPath(writeFixture(t, t.TempDir())))

	a.adjustments.brightnessSlider.OnChanged(0.6)
	a.adjustments.contrastSlider.OnChanged(1.8)
	test.Tap(a.toolbar.FilterButton(algorithms.Edges))

	test.Tap(a.toolbar.resetBtn)

	assert.Equal(t, core.IdentityAdjustments(), a.editor.Adjustments())
	assert.Empty(t, a.editor.AppliedFilters())
	assert.Equal(t, 1.0, a.adjustments.brightnessSlider.Value)
	assert.Equal(t, 1.0, a.adjustments.contrastSlider.Value)
	assert.Equal(t, "1.00", a.adjustments.brightnessValue.Text)
}

func TestLoadInvalidFileReportsError(t *testing.T) {
	a := newTestApplication(t)
	path := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	err := a.LoadImageFromPath(path)

	var decodeErr *io.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
	assert.True(t, strings.HasPrefix(a.status.Text, "Error:"))
	assert.Contains(t, a.status.Text, "broken.png")
	assert.False(t, a.editor.HasImage())
	assert.True(t, a.toolbar.saveBtn.Disabled())
}

func TestSaveAppendsDefaultExtension(t *testing.T) {
	a := newTestApplication(t)
	dir := t.TempDir()
	require.NoError(t, a.LoadImageFromPath(writeFixture(t, dir)))

	// The save dialog leaves an empty file at the chosen path.
	chosen := filepath.Join(dir, "edited")
	require.NoError(t, os.WriteFile(chosen, nil, 0o644))

	written, err := a.SaveImageToPath(chosen)
	require.NoError(t, err)

	assert.Equal(t, chosen+".jpg", written)
	assert.FileExists(t, written)
	assert.NoFileExists(t, chosen)
	assert.Equal(t, "Saved: "+written, a.status.Text)
}
