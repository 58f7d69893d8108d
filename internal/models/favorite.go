package models

import "fmt"

// FavoriteItem is a denormalised copy of a catalogue topic. ID is
// "<subjectKey>-<topicIndex>".
type FavoriteItem struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Formulas  []string `json:"formulas"`
	KeyPoints []string `json:"keyPoints"`
	Examples  []string `json:"examples"`
	Subject   string   `json:"subject"`
}

// TopicKey builds the composite key shared by favorites and the expanded-topic map.
func TopicKey(subjectKey string, index int) string {
	return fmt.Sprintf("%s-%d", subjectKey, index)
}
