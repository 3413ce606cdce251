package mantra

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yume-app/yume/internal/prefs"
)

// ErrIndexOutOfRange is returned for a mantra index outside the table.
var ErrIndexOutOfRange = errors.New("mantra index out of range")

// Book owns the mantra table, the current selection, and the persisted
// preferences.
type Book struct {
	store   prefs.Store
	texts   []string
	prefs   Preferences
	rnd     Rand
	current int
}

// Load reads preferences from store. Missing, unreadable, or malformed
// values are treated as unset, and indices outside texts are dropped, so
// Load never fails.
func Load(store prefs.Store, texts []string, rnd Rand) *Book {
	b := &Book{store: store, texts: texts, rnd: rnd}
	b.prefs = readPreferences(store, len(texts))
	return b
}

func readPreferences(store prefs.Store, n int) Preferences {
	var p Preferences

	if raw, ok, err := store.Get(prefs.KeyFavoriteMantras); err == nil && ok {
		var ids []int
		if json.Unmarshal([]byte(raw), &ids) == nil {
			seen := make(map[int]bool, len(ids))
			for _, id := range ids {
				if id < 0 || id >= n || seen[id] {
					continue
				}
				seen[id] = true
				p.Favorites = append(p.Favorites, id)
			}
		}
	}

	if raw, ok, err := store.Get(prefs.KeyLockedMantra); err == nil && ok {
		var id *int
		if json.Unmarshal([]byte(raw), &id) == nil && id != nil && *id >= 0 && *id < n {
			p.Locked = id
		}
	}

	return p
}

// Len returns the number of mantras.
func (b *Book) Len() int {
	return len(b.texts)
}

// Text returns mantra i, or "" if i is out of range.
func (b *Book) Text(i int) string {
	if i < 0 || i >= len(b.texts) {
		return ""
	}
	return b.texts[i]
}

// Texts returns a copy of the mantra table.
func (b *Book) Texts() []string {
	return append([]string(nil), b.texts...)
}

// Current returns the index of the mantra on display.
func (b *Book) Current() int {
	return b.current
}

// CurrentText returns the mantra on display.
func (b *Book) CurrentText() string {
	return b.Text(b.current)
}

// Preferences returns a copy of the current preferences.
func (b *Book) Preferences() Preferences {
	out := Preferences{Favorites: append([]int(nil), b.prefs.Favorites...)}
	if b.prefs.Locked != nil {
		locked := *b.prefs.Locked
		out.Locked = &locked
	}
	return out
}

// Next selects a new mantra for display and returns its index.
func (b *Book) Next() int {
	if i := Pick(b.prefs, len(b.texts), b.rnd); i >= 0 {
		b.current = i
	}
	return b.current
}

// ToggleFavorite flips favorite status for i and persists the favorites.
func (b *Book) ToggleFavorite(i int) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.prefs = b.prefs.ToggleFavorite(i)
	return b.saveFavorites()
}

// ToggleLock locks i, or unlocks it if it is already locked, and persists
// the lock.
func (b *Book) ToggleLock(i int) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.prefs = b.prefs.ToggleLock(i)
	if b.prefs.Locked != nil {
		b.current = *b.prefs.Locked
	}
	return b.saveLock()
}

// Unlock clears any lock and persists it.
func (b *Book) Unlock() error {
	if b.prefs.Locked == nil {
		return nil
	}
	return b.ToggleLock(*b.prefs.Locked)
}

func (b *Book) check(i int) error {
	if i < 0 || i >= len(b.texts) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, i, len(b.texts))
	}
	return nil
}

func (b *Book) saveFavorites() error {
	ids := b.prefs.Favorites
	if ids == nil {
		ids = []int{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal favorites: %w", err)
	}
	if err := b.store.Set(prefs.KeyFavoriteMantras, string(data)); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}

func (b *Book) saveLock() error {
	data, err := json.Marshal(b.prefs.Locked)
	if err != nil {
		return fmt.Errorf("marshal lock: %w", err)
	}
	if err := b.store.Set(prefs.KeyLockedMantra, string(data)); err != nil {
		return fmt.Errorf("save lock: %w", err)
	}
	return nil
}
