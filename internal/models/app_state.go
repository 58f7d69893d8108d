package models

// AppState is the full session state handed to the frontend.
type AppState struct {
	Mode            string          `json:"mode"`
	SelectedBranch  string          `json:"selectedBranch"`
	SelectedSubject string          `json:"selectedSubject"`
	ExpandedTopics  map[string]bool `json:"expandedTopics"`
	Settings        Settings        `json:"settings"`
	Favorites       []FavoriteItem  `json:"favorites"`
	ChatMessages    []ChatMessage   `json:"chatMessages"`
}

// TopicView is a topic as rendered for the current settings. Formulas and
// KeyPoints are nil when the matching display toggle is off.
type TopicView struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Formulas  []string `json:"formulas,omitempty"`
	KeyPoints []string `json:"keyPoints,omitempty"`
	Examples  []string `json:"examples"`
	Expanded  bool     `json:"expanded"`
	Favorite  bool     `json:"favorite"`
}
