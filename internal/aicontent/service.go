package aicontent

import (
	"context"
	"errors"
	"fmt"

	"resume-builder/internal/ai"
	"resume-builder/internal/shared/telemetry"
)

// DefaultSubject is used when the caller provides no job title.
const DefaultSubject = "Professional"

var generatedSkills = []string{
	"Communication",
	"Problem Solving",
	"Teamwork",
}

var fallbackSkills = []string{
	"Communication",
	"Problem Solving",
	"Teamwork",
	"Technical Skills",
	"Time Management",
}

// Service produces resume content bundles, falling back to deterministic
// templates when the generative client is absent or fails.
type Service struct {
	Client ai.Client
}

// NewService constructs a Service. A nil client means no credentials were
// configured and every call takes the fallback path.
func NewService(client ai.Client) *Service {
	return &Service{Client: client}
}

// Generate returns a complete bundle for the given subject. It never returns
// an error: any client failure or empty result resolves to the fallback.
func (s *Service) Generate(ctx context.Context, subject string) Bundle {
	if subject == "" {
		subject = DefaultSubject
	}

	if s != nil && s.Client != nil {
		prompt := fmt.Sprintf("Generate a professional resume summary for a %s.", subject)
		text, err := s.Client.GenerateText(ctx, prompt)
		if err != nil {
			if !errors.Is(err, ai.ErrNotConfigured) {
				telemetry.Error("aicontent.generate", map[string]any{
					"subject": subject,
					"error":   err.Error(),
				})
			}
		} else if text != "" {
			// Summary and experience intentionally share the raw text.
			return Bundle{
				Summary:    text,
				Skills:     append([]string(nil), generatedSkills...),
				Experience: text,
			}
		}
	}

	return Fallback(subject)
}

// Fallback synthesizes a deterministic bundle purely from the subject.
func Fallback(subject string) Bundle {
	return Bundle{
		Summary: fmt.Sprintf(
			"Motivated and detail-oriented %s with strong analytical, technical, and communication skills. Able to work effectively in team environments and deliver high-quality results.",
			subject,
		),
		Skills: append([]string(nil), fallbackSkills...),
		Experience: fmt.Sprintf(
			"Worked on academic and personal projects related to %s. Demonstrated ability to learn quickly and apply knowledge effectively.",
			subject,
		),
	}
}
