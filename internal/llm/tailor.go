package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/p-shah256/tailor/internal/cleaner"
	"github.com/p-shah256/tailor/pkg/types"
)

var clean = cleaner.New(nil)

const (
	roleProfileMaxTokens = 300
	rewriteMaxTokens     = 1500
	coverLetterMaxTokens = 700
)

// InferRoleProfile asks the model what the posting is really hiring for and
// what tone the resume should take. Runs at temperature 0 so repeated
// submissions of the same posting agree with each other.
func (c *Client) InferRoleProfile(ctx context.Context, jobDesc string) (*types.RoleProfile, error) {
	prompt := fmt.Sprintf(`Analyze the job description below and respond with a JSON object:
{
  "role_title": "the role title, e.g. Data Analyst",
  "top_skills": ["the top 3 skills required"],
  "tone": "the ideal resume tone, e.g. formal, creative, data-driven, friendly"
}

Job Description:
%s`, jobDesc)

	content, err := c.Generate(ctx,
		"You are a job posting analysis assistant. Respond only with the requested JSON.",
		prompt, 0, roleProfileMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("role inference failed: %w", err)
	}

	return parseRoleProfile(content), nil
}

// parseRoleProfile reads the model's JSON leniently; when the response isn't
// valid JSON the raw text becomes the summary as-is.
func parseRoleProfile(content string) *types.RoleProfile {
	cleaned := clean.CleanLlmResponse(content)
	profile := &types.RoleProfile{Summary: cleaned}
	if gjson.Valid(cleaned) {
		profile.RoleTitle = gjson.Get(cleaned, "role_title").String()
		profile.Tone = gjson.Get(cleaned, "tone").String()
		for _, s := range gjson.Get(cleaned, "top_skills").Array() {
			profile.TopSkills = append(profile.TopSkills, s.String())
		}
		profile.Summary = profileSummary(profile)
	}
	return profile
}

// profileSummary flattens the structured profile back into prose for the
// rewrite prompt.
func profileSummary(p *types.RoleProfile) string {
	var b strings.Builder
	if p.RoleTitle != "" {
		fmt.Fprintf(&b, "Role: %s. ", p.RoleTitle)
	}
	if len(p.TopSkills) > 0 {
		fmt.Fprintf(&b, "Key skills: %s. ", strings.Join(p.TopSkills, ", "))
	}
	if p.Tone != "" {
		fmt.Fprintf(&b, "Resume tone: %s.", p.Tone)
	}
	return strings.TrimSpace(b.String())
}

// RewriteResume produces the tailored resume at the caller's temperature.
func (c *Client) RewriteResume(ctx context.Context, resume, jobDesc, profileSummary string, temperature float32) (string, error) {
	prompt := fmt.Sprintf(`%s

Now, rewrite the following resume to better match the job description. Emphasize the key skills and use the appropriate tone.

Resume:
%s

Job Description:
%s

Tailored Resume:`, profileSummary, resume, jobDesc)

	content, err := c.Generate(ctx,
		"You are a resume optimization assistant. Rewrite resumes to match job descriptions without inventing experience.",
		prompt, temperature, rewriteMaxTokens)
	if err != nil {
		return "", fmt.Errorf("resume rewrite failed: %w", err)
	}
	return clean.CleanLlmResponse(content), nil
}

// CoverLetter writes a personalized cover letter. The referral line only
// appears when the job came through a referral and the referrer gave a name.
func (c *Client) CoverLetter(ctx context.Context, name, jobTitle, company, source, referrer string, temperature float32) (string, error) {
	referralLine := ""
	if source == types.SourceReferral && referrer != "" {
		referralLine = fmt.Sprintf(" They were referred by %s.", referrer)
	}

	prompt := fmt.Sprintf(`Write a personalized cover letter for %s applying to the %s role at %s.
They found this job through %s.%s
The tone should be confident, respectful, and focused on alignment with the role.

Cover Letter:`, name, jobTitle, company, source, referralLine)

	content, err := c.Generate(ctx,
		"You are a cover letter writing assistant.",
		prompt, temperature, coverLetterMaxTokens)
	if err != nil {
		return "", fmt.Errorf("cover letter generation failed: %w", err)
	}
	return clean.CleanLlmResponse(content), nil
}
