package models

// Snapshot is the persisted part of the session. It is also the shape of the
// export document.
type Snapshot struct {
	Settings     Settings       `json:"settings"`
	Favorites    []FavoriteItem `json:"favorites"`
	ChatMessages []ChatMessage  `json:"chatMessages"`
}

// NewSnapshot returns defaults with non-nil slices so the export document
// always carries [] rather than null.
func NewSnapshot() Snapshot {
	return Snapshot{
		Settings:     DefaultSettings(),
		Favorites:    []FavoriteItem{},
		ChatMessages: []ChatMessage{},
	}
}

// Clone deep-copies the slices.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Settings:     s.Settings,
		Favorites:    make([]FavoriteItem, 0, len(s.Favorites)),
		ChatMessages: make([]ChatMessage, len(s.ChatMessages)),
	}
	for _, f := range s.Favorites {
		out.Favorites = append(out.Favorites, f.clone())
	}
	copy(out.ChatMessages, s.ChatMessages)
	return out
}

func (f FavoriteItem) clone() FavoriteItem {
	f.Formulas = cloneStrings(f.Formulas)
	f.KeyPoints = cloneStrings(f.KeyPoints)
	f.Examples = cloneStrings(f.Examples)
	return f
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
