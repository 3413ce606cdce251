package views

import (
	"fmt"
	"strings"

	"github.com/yume-app/yume/internal/mantra"
	"github.com/yume-app/yume/internal/tui"
)

// MantraListModel renders the mantra table with favorite and pin markers.
type MantraListModel struct {
	Styles  tui.Styles
	Texts   []string
	Prefs   mantra.Preferences
	Current int
	Cursor  int
	// Rows is how many mantras fit on screen.
	Rows int
}

// View renders the mantra panel.
func (m MantraListModel) View() string {
	st := m.Styles
	var b strings.Builder

	b.WriteString(st.Title.Render("Mantras"))
	b.WriteString("\n")
	b.WriteString(st.Dim.Render(m.summary()))
	b.WriteString("\n\n")

	start, end := window(len(m.Texts), m.Cursor, m.Rows)
	for i := start; i < end; i++ {
		cursor := "  "
		text := m.Texts[i]
		if i == m.Cursor {
			cursor = st.Selected.Render("› ")
			text = st.Selected.Render(text)
		} else if i == m.Current {
			text = st.Mantra.Render(text)
		}
		fav := " "
		if m.Prefs.IsFavorite(i) {
			fav = st.Warning.Render("★")
		}
		pin := " "
		if m.Prefs.IsLocked(i) {
			pin = st.Success.Render("●")
		}
		b.WriteString(fmt.Sprintf("%s%s%s %2d. %s\n", cursor, fav, pin, i+1, text))
	}

	b.WriteString("\n")
	b.WriteString(st.Dim.Render("f favorite  ·  p pin  ·  n new mantra"))
	return b.String()
}

func (m MantraListModel) summary() string {
	parts := []string{fmt.Sprintf("%d favorites", len(m.Prefs.Favorites))}
	if len(m.Prefs.Favorites) == 1 {
		parts[0] = "1 favorite"
	}
	if m.Prefs.Locked != nil {
		parts = append(parts, fmt.Sprintf("pinned #%d", *m.Prefs.Locked+1))
	}
	return strings.Join(parts, "  ·  ")
}

// window returns the half-open range of rows to show so that cursor stays
// visible.
func window(n, cursor, rows int) (int, int) {
	if rows <= 0 || rows >= n {
		return 0, n
	}
	start := cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > n {
		start = n - rows
	}
	return start, start + rows
}
