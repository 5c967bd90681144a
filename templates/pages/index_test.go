package pages

import (
	"bytes"
	"context"
	"testing"

	"pocket-notes/models"
	"pocket-notes/notice"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, v View) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Index(v).Render(context.Background(), &buf))
	return buf.String()
}

func TestIndex_EmptyStates(t *testing.T) {
	html := render(t, View{Tab: "notes"})
	assert.Contains(t, html, "No notes yet. Add one above!")

	html = render(t, View{Tab: "favorites"})
	assert.Contains(t, html, "No favorites yet. Add one above!")
}

func TestIndex_NotesAreEscaped(t *testing.T) {
	html := render(t, View{
		Tab:   "notes",
		Notes: []models.Note{{ID: "n/1", Text: "<b>buy milk</b>", Date: "10/17/2026"}},
	})

	assert.Contains(t, html, "&lt;b&gt;buy milk&lt;/b&gt;")
	assert.NotContains(t, html, "<b>buy milk</b>")
	assert.Contains(t, html, "10/17/2026")
	assert.Contains(t, html, `/tabs/notes/n%2F1/delete`)
	assert.NotContains(t, html, "No notes yet")
}

func TestIndex_SettingsTab(t *testing.T) {
	html := render(t, View{
		Tab:      "settings",
		Settings: models.Settings{Username: "ada", DarkMode: true, Notifications: false},
	})

	assert.Contains(t, html, `data-theme="dark"`)
	assert.Contains(t, html, `value="ada"`)
	assert.Contains(t, html, `name="darkMode" value="true" checked`)
	assert.NotContains(t, html, `name="notifications" value="true" checked`)
}

func TestIndex_Notices(t *testing.T) {
	html := render(t, View{
		Tab:     "favorites",
		Notices: []notice.Notice{{Kind: notice.KindError, Title: "Error", Message: "Could not load favorites."}},
	})

	assert.Contains(t, html, `class="notice notice-error"`)
	assert.Contains(t, html, "Could not load favorites.")
}
