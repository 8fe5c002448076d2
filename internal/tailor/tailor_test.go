package tailor

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p-shah256/tailor/internal/ats"
	"github.com/p-shah256/tailor/internal/cleaner"
	"github.com/p-shah256/tailor/internal/extraction"
	pkgerrors "github.com/p-shah256/tailor/pkg/errors"
	"github.com/p-shah256/tailor/pkg/types"
)

type fakeGenerator struct {
	tailored string
	letter   string

	rewriteProfile string
	coverName      string
	coverTitle     string
	coverCompany   string
	coverSource    string
	coverReferrer  string
	failRewrite    error
}

func (f *fakeGenerator) InferRoleProfile(ctx context.Context, jobDesc string) (*types.RoleProfile, error) {
	return &types.RoleProfile{
		RoleTitle: "Data Engineer",
		TopSkills: []string{"SQL", "Python"},
		Tone:      "data-driven",
		Summary:   "Role: Data Engineer. Key skills: SQL, Python. Resume tone: data-driven.",
	}, nil
}

func (f *fakeGenerator) RewriteResume(ctx context.Context, resume, jobDesc, profileSummary string, temperature float32) (string, error) {
	if f.failRewrite != nil {
		return "", f.failRewrite
	}
	f.rewriteProfile = profileSummary
	return f.tailored, nil
}

func (f *fakeGenerator) CoverLetter(ctx context.Context, name, jobTitle, company, source, referrer string, temperature float32) (string, error) {
	f.coverName = name
	f.coverTitle = jobTitle
	f.coverCompany = company
	f.coverSource = source
	f.coverReferrer = referrer
	return f.letter, nil
}

func newTestPipeline(gen Generator) *Pipeline {
	return New(gen, extraction.New([]string{"Moneris"}), cleaner.New(nil))
}

const jobDesc = "Position: Data Engineer\nBuild data pipelines at Globex\nOwn the sqlite warehouse\nWhy Join Us\nFree snacks"

func TestRun(t *testing.T) {
	gen := &fakeGenerator{
		tailored: "John Smith\nBuilt data pipelines, owns warehouse work",
		letter:   "Dear Hiring Manager,",
	}
	p := newTestPipeline(gen)

	result, err := p.Run(context.Background(), types.TailorRequest{
		ResumeText:  "John Smith\nSpreadsheet wrangler",
		JobDescText: jobDesc,
		JobSource:   types.SourceLinkedIn,
		Temperature: 0.7,
	})
	require.NoError(t, err)

	assert.Equal(t, "John Smith", result.Detected.Name)
	assert.Equal(t, "Data Engineer", result.Detected.JobTitle)
	assert.Equal(t, "Globex", result.Detected.Company)
	assert.Contains(t, result.Detected.Keywords, "pipelines")
	assert.NotContains(t, result.Detected.Keywords, "own") // below length threshold

	// boilerplate never reaches the scorer, so "snacks" can't contribute
	cleanedJD := "Position: Data Engineer\nBuild data pipelines at Globex\nOwn the sqlite warehouse"
	assert.InDelta(t, ats.Score(gen.tailored, cleanedJD), result.ScoreAfter, 0.01)
	assert.Greater(t, result.ScoreAfter, result.ScoreBefore)

	assert.Equal(t, gen.tailored, result.TailoredResume)
	assert.Equal(t, "Dear Hiring Manager,", result.CoverLetter)
	assert.Contains(t, result.HighlightedResume, "**pipelines**")

	// detected info flows into the cover letter call
	assert.Equal(t, "John Smith", gen.coverName)
	assert.Equal(t, "Data Engineer", gen.coverTitle)
	assert.Equal(t, "Globex", gen.coverCompany)
	assert.Equal(t, types.SourceLinkedIn, gen.coverSource)

	// the inferred profile feeds the rewrite prompt
	assert.Contains(t, gen.rewriteProfile, "Data Engineer")
}

func TestRun_FallbacksWhenNothingDetected(t *testing.T) {
	gen := &fakeGenerator{tailored: "rewritten", letter: "letter"}
	p := newTestPipeline(gen)

	_, err := p.Run(context.Background(), types.TailorRequest{
		ResumeText:   "A first line that clearly has far too many words to be a name",
		JobDescText:  "We want a generalist. No patterns here.",
		JobSource:    types.SourceReferral,
		ReferrerName: "Alice",
		Temperature:  0.5,
	})
	require.NoError(t, err)

	assert.Equal(t, "Applicant", gen.coverName)
	assert.Equal(t, "the role", gen.coverTitle)
	assert.Equal(t, "the company", gen.coverCompany)
	assert.Equal(t, "Alice", gen.coverReferrer)
}

func TestRun_EmptyInputs(t *testing.T) {
	p := newTestPipeline(&fakeGenerator{})

	_, err := p.Run(context.Background(), types.TailorRequest{JobDescText: "job"})
	assert.ErrorIs(t, err, pkgerrors.ErrEmptyInput)

	_, err = p.Run(context.Background(), types.TailorRequest{ResumeText: "resume"})
	assert.ErrorIs(t, err, pkgerrors.ErrEmptyInput)

	_, err = p.Run(context.Background(), types.TailorRequest{ResumeText: "  \n ", JobDescText: "job"})
	assert.ErrorIs(t, err, pkgerrors.ErrEmptyInput)
}

func TestRun_HTMLJobPosting(t *testing.T) {
	gen := &fakeGenerator{tailored: "rewritten", letter: "letter"}
	p := newTestPipeline(gen)

	result, err := p.Run(context.Background(), types.TailorRequest{
		ResumeText:  "John Smith\nworks with data",
		JobDescText: "<html><body><p>Position: Analyst</p><p>Reporting at Globex</p><script>x()</script></body></html>",
		JobSource:   types.SourceIndeed,
	})
	require.NoError(t, err)

	assert.Equal(t, "Analyst", result.Detected.JobTitle)
	assert.Equal(t, "Globex", result.Detected.Company)
	assert.NotContains(t, result.Detected.Keywords, "html")
	assert.NotContains(t, result.Detected.Keywords, "script")
}

func TestRun_GeneratorFailurePropagates(t *testing.T) {
	gen := &fakeGenerator{failRewrite: pkgerrors.External("gemini", assert.AnError)}
	p := newTestPipeline(gen)

	_, err := p.Run(context.Background(), types.TailorRequest{
		ResumeText:  "John Smith\ndata things",
		JobDescText: jobDesc,
	})
	assert.ErrorIs(t, err, pkgerrors.ErrExternalService)
}

func TestRun_KeywordDisplayCap(t *testing.T) {
	gen := &fakeGenerator{tailored: "rewritten", letter: "letter"}
	p := newTestPipeline(gen)

	var b strings.Builder
	b.WriteString("Position: Collector\n")
	for i := 0; i < 30; i++ {
		b.WriteString(strings.Repeat(string(rune('a'+i%26)), 4+i%3) + "word ")
	}
	result, err := p.Run(context.Background(), types.TailorRequest{
		ResumeText:  "John Smith",
		JobDescText: b.String(),
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(result.Detected.Keywords), 25)
}
