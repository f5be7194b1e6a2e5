package ui

import (
	"errors"
	"io"
	"testing"

	"github.com/pkg/browser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubBrowser(t *testing.T, fn func(string) error) {
	t.Helper()
	prev := openBrowser
	openBrowser = fn
	t.Cleanup(func() { openBrowser = prev })
}

func TestOpenURL_UsesBrowser(t *testing.T) {
	var got []string
	stubBrowser(t, func(url string) error {
		got = append(got, url)
		return nil
	})

	require.NoError(t, OpenURL("https://example.com/notes"))
	assert.Equal(t, []string{"https://example.com/notes"}, got)
}

func TestOpenURL_WrapsError(t *testing.T) {
	errNoBrowser := errors.New("no browser")
	stubBrowser(t, func(string) error { return errNoBrowser })

	err := OpenURL("https://example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, errNoBrowser)
	assert.Contains(t, err.Error(), "open https://example.com")
}

func TestOpenURL_LauncherOutputSilenced(t *testing.T) {
	assert.Equal(t, io.Discard, browser.Stdout)
	assert.Equal(t, io.Discard, browser.Stderr)
}

func TestNewAppModel_DefaultOpenerIsBrowser(t *testing.T) {
	var got []string
	stubBrowser(t, func(url string) error {
		got = append(got, url)
		return nil
	})

	a := NewAppModel(testSite(), Options{Clipboard: func(string) error { return nil }})
	require.NoError(t, a.openURL("https://example.com/loom"))
	assert.Equal(t, []string{"https://example.com/loom"}, got)
}
