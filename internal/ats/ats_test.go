package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_IdenticalTexts(t *testing.T) {
	text := "Built data pipelines with Kafka and Spark, owned the warehouse"
	assert.InDelta(t, 100.0, Score(text, text), 0.01)
}

func TestScore_EmptyInput(t *testing.T) {
	assert.Equal(t, 0.0, Score("", "anything at all"))
	assert.Equal(t, 0.0, Score("anything at all", ""))
	assert.Equal(t, 0.0, Score("", ""))
	// nothing tokenizable (single characters only)
	assert.Equal(t, 0.0, Score("a b c", "x y z"))
}

func TestScore_DisjointVocabulary(t *testing.T) {
	assert.Equal(t, 0.0, Score("cats dogs birds", "trucks engines diesel"))
}

func TestScore_Symmetric(t *testing.T) {
	a := "python sql airflow dashboards"
	b := "sql dashboards stakeholder reporting"
	assert.InDelta(t, Score(a, b), Score(b, a), 0.001)
}

func TestScore_PartialOverlap(t *testing.T) {
	a := "python sql airflow"
	b := "python sql tableau"
	got := Score(a, b)
	assert.Greater(t, got, 0.0)
	assert.Less(t, got, 100.0)
}

func TestScore_MoreOverlapScoresHigher(t *testing.T) {
	ref := "python sql airflow dashboards reporting"
	closer := "python sql airflow dashboards metrics"
	farther := "python golf sailing cooking travel"
	assert.Greater(t, Score(closer, ref), Score(farther, ref))
}

func TestHighlight(t *testing.T) {
	t.Run("longest keyword wins whole units", func(t *testing.T) {
		got := Highlight("management and manage", []string{"manage", "management"})
		assert.Equal(t, "**management** and **manage**", got)
	})

	t.Run("whole word only", func(t *testing.T) {
		got := Highlight("mismanagement hurts", []string{"management"})
		assert.Equal(t, "mismanagement hurts", got)
	})

	t.Run("case-insensitive, original casing kept", func(t *testing.T) {
		got := Highlight("Led SQL migrations", []string{"sql"})
		assert.Equal(t, "Led **SQL** migrations", got)
	})

	t.Run("duplicate and empty keywords are harmless", func(t *testing.T) {
		got := Highlight("python rules", []string{"python", "python", ""})
		assert.Equal(t, "**python** rules", got)
	})

	t.Run("no keywords leaves text alone", func(t *testing.T) {
		assert.Equal(t, "untouched", Highlight("untouched", nil))
	})
}
