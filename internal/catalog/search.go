package catalog

import (
	"strings"

	"studydesk/internal/models"
)

// Search returns every topic whose title, content, key points or examples
// contain query, case-insensitively, in catalogue order.
func (c *Catalog) Search(query string) []models.SearchHit {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var hits []models.SearchHit
	for _, b := range c.branches {
		for _, s := range b.Subjects {
			for i, t := range s.Topics {
				if !topicMatches(t, q) {
					continue
				}
				hits = append(hits, models.SearchHit{
					BranchKey:   b.Key,
					BranchName:  b.Name,
					SubjectKey:  s.Key,
					SubjectName: s.Name,
					Index:       i,
					Topic:       t,
				})
			}
		}
	}
	return hits
}

func topicMatches(t models.Topic, q string) bool {
	if strings.Contains(strings.ToLower(t.Title), q) || strings.Contains(strings.ToLower(t.Content), q) {
		return true
	}
	for _, group := range [][]string{t.KeyPoints, t.Examples} {
		for _, s := range group {
			if strings.Contains(strings.ToLower(s), q) {
				return true
			}
		}
	}
	return false
}
