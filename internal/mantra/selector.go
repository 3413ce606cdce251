package mantra

// Rand is the randomness a Selector draws from. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Preferences are the user's choices over the mantra table. Favorites keep
// the order in which they were added.
type Preferences struct {
	Favorites []int
	Locked    *int
}

// IsFavorite reports whether i is a favorite.
func (p Preferences) IsFavorite(i int) bool {
	for _, f := range p.Favorites {
		if f == i {
			return true
		}
	}
	return false
}

// IsLocked reports whether i is the locked mantra.
func (p Preferences) IsLocked(i int) bool {
	return p.Locked != nil && *p.Locked == i
}

// ToggleFavorite adds i to the favorites, or removes it if present.
func (p Preferences) ToggleFavorite(i int) Preferences {
	out := Preferences{Locked: p.Locked}
	removed := false
	for _, f := range p.Favorites {
		if f == i {
			removed = true
			continue
		}
		out.Favorites = append(out.Favorites, f)
	}
	if !removed {
		out.Favorites = append(out.Favorites, i)
	}
	return out
}

// ToggleLock locks i, or clears the lock if i is already locked.
func (p Preferences) ToggleLock(i int) Preferences {
	out := Preferences{Favorites: append([]int(nil), p.Favorites...)}
	if !p.IsLocked(i) {
		locked := i
		out.Locked = &locked
	}
	return out
}

// Pick chooses an index into a table of n mantras: the locked mantra if
// there is one, otherwise a uniformly random favorite, otherwise a
// uniformly random entry. It returns -1 when n is zero.
func Pick(p Preferences, n int, rnd Rand) int {
	if n <= 0 {
		return -1
	}
	if p.Locked != nil && *p.Locked >= 0 && *p.Locked < n {
		return *p.Locked
	}
	if len(p.Favorites) > 0 {
		return p.Favorites[rnd.Intn(len(p.Favorites))]
	}
	return rnd.Intn(n)
}
