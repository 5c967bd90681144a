package pages

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"pocket-notes/models"
	"pocket-notes/notice"

	"github.com/a-h/templ"
)

// Tabs in display order.
var Tabs = []string{"notes", "favorites", "settings"}

// View is everything the page needs for one render.
type View struct {
	Tab       string
	Notes     []models.Note
	Favorites []models.Favorite
	Settings  models.Settings
	Notices   []notice.Notice
}

// htmlWriter keeps the first write error so components can write freely.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// Index renders the tabbed page.
func Index(v View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		theme := "light"
		if v.Settings.DarkMode {
			theme = "dark"
		}

		h.raw(`<!DOCTYPE html><html lang="en" data-theme="`)
		h.text(theme)
		h.raw(`"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>Pocket Notes</title></head><body>`)

		h.raw(`<nav>`)
		for _, tab := range Tabs {
			h.raw(`<a href="/?tab=`)
			h.text(tab)
			h.raw(`"`)
			if tab == v.Tab {
				h.raw(` aria-current="page"`)
			}
			h.raw(`>`)
			h.text(tabTitle(tab))
			h.raw(`</a> `)
		}
		h.raw(`</nav><main>`)

		h.render(ctx, NoticeList(v.Notices))

		switch v.Tab {
		case "favorites":
			h.render(ctx, FavoritesTab(v.Favorites))
		case "settings":
			h.render(ctx, SettingsTab(v.Settings))
		default:
			h.render(ctx, NotesTab(v.Notes))
		}

		h.raw(`</main></body></html>`)
		return h.err
	})
}

func tabTitle(tab string) string {
	switch tab {
	case "favorites":
		return "Favorites"
	case "settings":
		return "Settings"
	default:
		return "Notes"
	}
}

func NoticeList(notices []notice.Notice) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(notices) == 0 {
			return nil
		}
		h := &htmlWriter{w: w}
		h.raw(`<ul class="notices">`)
		for _, n := range notices {
			h.raw(`<li class="notice notice-`)
			h.text(string(n.Kind))
			h.raw(`" role="alert"><strong>`)
			h.text(n.Title)
			h.raw(`</strong> `)
			h.text(n.Message)
			h.raw(`</li>`)
		}
		h.raw(`</ul>`)
		return h.err
	})
}

func NotesTab(notes []models.Note) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<h1>Notes</h1>`)
		h.raw(`<form method="post" action="/tabs/notes"><input name="text" placeholder="Type a new note"><button type="submit">Add Note</button></form>`)

		if len(notes) == 0 {
			h.raw(`<p class="empty">No notes yet. Add one above!</p>`)
			return h.err
		}

		h.raw(`<ul class="notes">`)
		for _, n := range notes {
			h.raw(`<li><span class="note-text">`)
			h.text(n.Text)
			h.raw(`</span> <small class="note-date">`)
			h.text(n.Date)
			h.raw(`</small>`)
			h.raw(fmt.Sprintf(`<form method="post" action="/tabs/notes/%s/delete" onsubmit="return confirm('Are you sure you want to delete this note?')"><button type="submit">Delete</button></form>`,
				templ.EscapeString(url.PathEscape(n.ID))))
			h.raw(`</li>`)
		}
		h.raw(`</ul>`)
		return h.err
	})
}

func FavoritesTab(favorites []models.Favorite) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<h1>Favorites</h1>`)
		h.raw(`<form method="post" action="/tabs/favorites"><input name="name" placeholder="Add a new favorite"><button type="submit">Add Favorite</button></form>`)

		if len(favorites) == 0 {
			h.raw(`<p class="empty">No favorites yet. Add one above!</p>`)
			return h.err
		}

		h.raw(`<ul class="favorites">`)
		for _, f := range favorites {
			h.raw(`<li><span class="favorite-name">`)
			h.text(f.Name)
			h.raw(`</span>`)
			h.raw(fmt.Sprintf(`<form method="post" action="/tabs/favorites/%s/delete"><button type="submit">Remove</button></form>`,
				templ.EscapeString(url.PathEscape(f.ID))))
			h.raw(`</li>`)
		}
		h.raw(`</ul>`)
		return h.err
	})
}

func SettingsTab(s models.Settings) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<h1>User Settings</h1><form method="post" action="/tabs/settings">`)
		h.raw(`<label>Username: <input name="username" placeholder="Enter your username" value="`)
		h.text(s.Username)
		h.raw(`"></label>`)
		h.raw(`<label>Dark Mode <input type="checkbox" name="darkMode" value="true"`)
		if s.DarkMode {
			h.raw(` checked`)
		}
		h.raw(`></label>`)
		h.raw(`<label>Notifications <input type="checkbox" name="notifications" value="true"`)
		if s.Notifications {
			h.raw(` checked`)
		}
		h.raw(`></label>`)
		h.raw(`<button type="submit">Save Settings</button></form>`)
		return h.err
	})
}
