package models

// Topic is a single read-only study unit.
type Topic struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Formulas  []string `json:"formulas"`
	KeyPoints []string `json:"keyPoints"`
	Examples  []string `json:"examples"`
}

type Subject struct {
	Key    string  `json:"key"`
	Name   string  `json:"name"`
	Topics []Topic `json:"topics"`
}

// Branch is a top-level discipline. Icon and Color are tags the frontend maps
// to its own assets.
type Branch struct {
	Key      string    `json:"key"`
	Name     string    `json:"name"`
	Icon     string    `json:"icon"`
	Color    string    `json:"color"`
	Subjects []Subject `json:"subjects"`
}

// Mode is a top-level application view.
type Mode struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// SearchHit locates a topic matched by a catalogue search.
type SearchHit struct {
	BranchKey   string `json:"branchKey"`
	BranchName  string `json:"branchName"`
	SubjectKey  string `json:"subjectKey"`
	SubjectName string `json:"subjectName"`
	Index       int    `json:"index"`
	Topic       Topic  `json:"topic"`
}
