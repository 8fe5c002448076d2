package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	e := New(nil)

	assert.Equal(t, "John Smith", e.Name("John Smith\nSoftware Engineer\n..."))
	assert.Equal(t, "", e.Name("A very long first line with more than five words here"))
	assert.Equal(t, "", e.Name(""))
	assert.Equal(t, "", e.Name("   \n  "))
	// leading blank lines don't count as the first line
	assert.Equal(t, "Jane Doe", e.Name("\n\nJane Doe\nAnalyst"))
}

func TestTitleAndCompany(t *testing.T) {
	e := New(nil)

	tests := []struct {
		name        string
		jobDesc     string
		wantTitle   string
		wantCompany string
	}{
		{
			name:        "title from announcement line",
			jobDesc:     "Position: Senior Data Analyst\nWork at Globex\nDo analysis",
			wantTitle:   "Senior Data Analyst",
			wantCompany: "Globex",
		},
		{
			name:        "role keyword with dash separator",
			jobDesc:     "Role- Backend Engineer\nJoin us",
			wantTitle:   "Backend Engineer",
			wantCompany: "",
		},
		{
			name:        "your career headline overrides announcement",
			jobDesc:     "Position: Clerk\nGrow Your Career at Initech\nDetails follow",
			wantTitle:   "Grow Your Career at Initech",
			wantCompany: "Initech",
		},
		{
			name:        "no patterns at all",
			jobDesc:     "We need someone good with spreadsheets.",
			wantTitle:   "",
			wantCompany: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, company := e.TitleAndCompany(tt.jobDesc)
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantCompany, company)
		})
	}
}

func TestTitleAndCompany_OverrideList(t *testing.T) {
	e := New([]string{"Moneris"})

	_, company := e.TitleAndCompany("Join the moneris payments team.\nPosition: Analyst")
	assert.Equal(t, "Moneris", company)

	// an explicit "at <Company>" still wins over the override list
	_, company = e.TitleAndCompany("Work at Globex\nwe compete with moneris")
	assert.Equal(t, "Globex", company)

	// no override configured, no "at" phrase
	none := New(nil)
	_, company = none.TitleAndCompany("Join the moneris payments team.")
	assert.Equal(t, "", company)
}

func TestKeywords(t *testing.T) {
	assert.Equal(t, []string{"cats", "dogs", "fast"}, Keywords("Cats and dogs run fast"))
	assert.Empty(t, Keywords("a an to we it"))
	assert.Empty(t, Keywords(""))
	// deduplicated and sorted
	assert.Equal(t, []string{"data", "pipelines"}, Keywords("Data DATA pipelines data"))
	// digits break the alphabetic run below the length threshold
	assert.Equal(t, []string{"kubernetes"}, Keywords("k8s abc1def kubernetes"))
}

func TestKeywords_StableUnderRetokenization(t *testing.T) {
	text := "Design and operate distributed streaming systems with Kafka"
	first := Keywords(text)
	second := Keywords(strings.Join(first, " "))
	assert.Equal(t, first, second)
}
