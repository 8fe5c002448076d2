// Package tailor orchestrates one generate action: heuristic extraction,
// cleaning, before/after scoring, the LLM calls, and keyword highlighting.
package tailor

import (
	"context"
	"log/slog"
	"strings"

	"github.com/p-shah256/tailor/internal/ats"
	"github.com/p-shah256/tailor/internal/cleaner"
	"github.com/p-shah256/tailor/internal/extraction"
	pkgerrors "github.com/p-shah256/tailor/pkg/errors"
	"github.com/p-shah256/tailor/pkg/types"
)

// displayKeywordLimit caps how many ATS keywords the result reports;
// highlighting still uses the full set.
const displayKeywordLimit = 25

// Generator is the LLM surface the pipeline needs. *llm.Client satisfies it.
type Generator interface {
	InferRoleProfile(ctx context.Context, jobDesc string) (*types.RoleProfile, error)
	RewriteResume(ctx context.Context, resume, jobDesc, profileSummary string, temperature float32) (string, error)
	CoverLetter(ctx context.Context, name, jobTitle, company, source, referrer string, temperature float32) (string, error)
}

type Pipeline struct {
	gen       Generator
	extractor *extraction.Extractor
	clean     *cleaner.Cleaner
}

func New(gen Generator, extractor *extraction.Extractor, clean *cleaner.Cleaner) *Pipeline {
	return &Pipeline{
		gen:       gen,
		extractor: extractor,
		clean:     clean,
	}
}

// Run executes the full tailoring sequence for one submission. Everything is
// request-scoped; nothing survives the call.
func (p *Pipeline) Run(ctx context.Context, req types.TailorRequest) (*types.TailorResult, error) {
	if strings.TrimSpace(req.ResumeText) == "" {
		return nil, pkgerrors.EmptyInput("resume_text")
	}
	if strings.TrimSpace(req.JobDescText) == "" {
		return nil, pkgerrors.EmptyInput("job_desc_text")
	}
	temperature := clampTemperature(req.Temperature)

	jobText := req.JobDescText
	if cleaner.LooksLikeHTML(jobText) {
		jobText = p.clean.CleanHTML(jobText)
	}

	name := p.extractor.Name(req.ResumeText)
	title, company := p.extractor.TitleAndCompany(jobText)
	keywords := extraction.Keywords(jobText)
	cleanedJD := p.clean.CleanJobDescription(jobText)

	scoreBefore := ats.Score(req.ResumeText, cleanedJD)
	slog.Info("Scored original resume",
		"score", scoreBefore,
		"keywords", len(keywords),
		"title", title,
		"company", company)

	profile, err := p.gen.InferRoleProfile(ctx, jobText)
	if err != nil {
		return nil, err
	}

	tailored, err := p.gen.RewriteResume(ctx, req.ResumeText, cleanedJD, profile.Summary, temperature)
	if err != nil {
		return nil, err
	}
	scoreAfter := ats.Score(tailored, cleanedJD)
	slog.Info("Scored tailored resume", "before", scoreBefore, "after", scoreAfter)

	coverLetter, err := p.gen.CoverLetter(ctx,
		fallback(name, "Applicant"),
		fallback(title, "the role"),
		fallback(company, "the company"),
		req.JobSource, req.ReferrerName, temperature)
	if err != nil {
		return nil, err
	}

	displayed := keywords
	if len(displayed) > displayKeywordLimit {
		displayed = displayed[:displayKeywordLimit]
	}

	return &types.TailorResult{
		Detected: types.DetectedInfo{
			Name:     name,
			JobTitle: title,
			Company:  company,
			Keywords: displayed,
		},
		RoleProfile:       *profile,
		ScoreBefore:       scoreBefore,
		ScoreAfter:        scoreAfter,
		TailoredResume:    tailored,
		CoverLetter:       coverLetter,
		HighlightedResume: ats.Highlight(tailored, keywords),
	}, nil
}

func clampTemperature(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
