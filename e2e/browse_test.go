//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startBrowser(t *testing.T) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Catalog should load")
	return tf
}

func TestBrowserShowsCatalog(t *testing.T) {
	t.Parallel()
	tf := startBrowser(t)

	require.True(t, tf.SeePlain("Stage Wiki"), "Should show the title")
	require.True(t, tf.SeePlain("0 All"), "Should show the category bar")
	require.True(t, tf.SeePlain("Sound"), "Should show configured categories")
}

func TestBrowserSearch(t *testing.T) {
	t.Parallel()
	tf := startBrowser(t)

	tf.ClearOutput()
	require.NoError(t, tf.Search("head-set"))

	err := tf.WaitForE(func(s string) bool {
		plain := ansiRe.ReplaceAllString(s, "")
		return strings.Contains(plain, "1 entry found") && strings.Contains(plain, "Headset")
	}, 3*time.Second, "search should narrow the list to Headset")
	require.NoError(t, err)

	require.NoError(t, tf.SendEnter())
	require.True(t, tf.SeePlain(`Search: "head-set"`), "Should keep the search after submitting")
}

func TestBrowserCategoryFilter(t *testing.T) {
	t.Parallel()
	tf := startBrowser(t)

	tf.ClearOutput()
	// Light is the fifth default category
	require.NoError(t, tf.SendKeys("5"))

	require.True(t, tf.SeePlain("Filtered by category: Light"), "Should show the category status")
	require.True(t, tf.SeePlain("Fixtures"), "Should offer the subcategories of Light")

	require.NoError(t, tf.SendKeys("]"))
	require.True(t, tf.SeePlain("Filtered by: Light → Control"), "Should select the first subcategory")

	tf.ClearOutput()
	require.NoError(t, tf.SendEscape())
	require.True(t, tf.SeePlain("Filtered by category: Light"), "Esc should drop the subcategory first")
}

func TestBrowserReportsMissingSource(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	_, err = tf.CreateDataFile("data/sound.json", `{"terms": [{"t": "Mixer", "c": "Sound", "d": "Audio mixing device"}]}`)
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("--base", tf.workspace, "list"))
	require.True(t, tf.SeePlain("6 of 7 sources could not be loaded"), "Only sound.json exists under the new base")
	require.True(t, tf.SeePlain("Mixer  [Sound]"), "The remaining source should still be listed")
}
