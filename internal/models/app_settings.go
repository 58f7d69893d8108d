package models

// Theme is the colour scheme of the UI.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

// AIModel selects the verbosity tier shown in the settings panel.
type AIModel string

const (
	AIModelBasic    AIModel = "basic"
	AIModelAdvanced AIModel = "advanced"
	AIModelExpert   AIModel = "expert"
)

// Settings is the user_settings document. DefaultMode and DefaultBranch are
// catalogue keys and are not guaranteed to resolve.
type Settings struct {
	Theme         Theme    `json:"theme"`
	FontSize      FontSize `json:"fontSize"`
	DefaultMode   string   `json:"defaultMode"`
	DefaultBranch string   `json:"defaultBranch"`
	ShowFormulas  bool     `json:"showFormulas"`
	ShowKeyPoints bool     `json:"showKeyPoints"`
	AutoSave      bool     `json:"autoSave"`
	AIModel       AIModel  `json:"aiModel"`
	Language      string   `json:"language"`
}

// DefaultSettings returns the record used on first run and on reset.
func DefaultSettings() Settings {
	return Settings{
		Theme:         ThemeDark,
		FontSize:      FontMedium,
		DefaultMode:   "btech",
		DefaultBranch: "cse",
		ShowFormulas:  true,
		ShowKeyPoints: true,
		AutoSave:      true,
		AIModel:       AIModelAdvanced,
		Language:      "english",
	}
}

func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}

func (f FontSize) Valid() bool {
	switch f {
	case FontSmall, FontMedium, FontLarge:
		return true
	}
	return false
}

func (m AIModel) Valid() bool {
	switch m {
	case AIModelBasic, AIModelAdvanced, AIModelExpert:
		return true
	}
	return false
}
