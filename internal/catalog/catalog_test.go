package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studydesk/internal/models"
)

func TestDefault_LoadsEmbeddedCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	keys := make([]string, 0)
	for _, b := range c.ListBranches() {
		keys = append(keys, b.Key)
	}
	assert.Equal(t, []string{"cse", "ece", "ee", "mech", "civil", "chem"}, keys)

	modes := make([]string, 0)
	for _, m := range c.ListModes() {
		modes = append(modes, m.Key)
	}
	assert.Equal(t, []string{"btech", "cybersec", "ai", "calculator", "notes"}, modes)

	assert.Equal(t, "Computer Science & Engineering", c.BranchName("cse"))
	assert.True(t, c.HasMode("btech"))
	assert.True(t, c.HasBranch("chem"))
}

func TestBranch_UnknownKeyIsNotFound(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, ok := c.Branch("aero")
	assert.False(t, ok)
	assert.Equal(t, "", c.BranchName("aero"))
	assert.False(t, c.HasMode(""))
}

func TestSubject_MustBelongToBranch(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	s, err := c.Subject("cse", "dbms")
	require.NoError(t, err)
	assert.Equal(t, "Database Management Systems", s.Name)

	_, err = c.Subject("ece", "dbms")
	assert.ErrorIs(t, err, ErrSubjectNotFound)
}

func TestTopic_Bounds(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	topic, subject, err := c.Topic("dbms", 1)
	require.NoError(t, err)
	assert.Equal(t, "Normalization", topic.Title)
	assert.Equal(t, "Database Management Systems", subject.Name)

	_, _, err = c.Topic("dbms", 2)
	assert.ErrorIs(t, err, ErrTopicNotFound)
	_, _, err = c.Topic("dbms", -1)
	assert.ErrorIs(t, err, ErrTopicNotFound)
	_, _, err = c.Topic("nope", 0)
	assert.ErrorIs(t, err, ErrSubjectNotFound)
}

func TestFavoriteFromTopic(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	fav, err := c.FavoriteFromTopic("dsa", 0)
	require.NoError(t, err)
	assert.Equal(t, "dsa-0", fav.ID)
	assert.Equal(t, "Time Complexity", fav.Title)
	assert.Equal(t, "Data Structures & Algorithms", fav.Subject)
	assert.Len(t, fav.Formulas, 2)

	// The favorite must not alias catalogue storage.
	fav.Formulas[0] = "changed"
	topic, _, _ := c.Topic("dsa", 0)
	assert.Equal(t, "Big O, Omega, Theta notations", topic.Formulas[0])
}

func TestSearch(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	hits := c.Search("LRU")
	require.Len(t, hits, 1)
	assert.Equal(t, "os", hits[0].SubjectKey)
	assert.Equal(t, 1, hits[0].Index)
	assert.Equal(t, "Memory Management", hits[0].Topic.Title)

	hits = c.Search("heat")
	require.Len(t, hits, 2)
	assert.Equal(t, "mech", hits[0].BranchKey)
	assert.Equal(t, "chem", hits[1].BranchKey)

	assert.Empty(t, c.Search("   "))
	assert.Empty(t, c.Search("quantum chromodynamics"))
}

func TestNew_RejectsDuplicateSubjects(t *testing.T) {
	doc := []byte(`{"branches":[
		{"key":"a","subjects":[{"key":"s","topics":[]}]},
		{"key":"b","subjects":[{"key":"s","topics":[]}]}
	]}`)
	_, err := New(doc)
	assert.Error(t, err)
}

func TestNew_SkipsBlankKeys(t *testing.T) {
	doc := []byte(`{"modes":[{"key":" "},{"key":" x ","name":"X"}],"branches":[{"key":""}]}`)
	c, err := New(doc)
	require.NoError(t, err)
	assert.Equal(t, []models.Mode{{Key: "x", Name: "X"}}, c.ListModes())
	assert.Empty(t, c.ListBranches())
}

func TestNew_InvalidJSON(t *testing.T) {
	_, err := New([]byte("{"))
	assert.Error(t, err)
}
