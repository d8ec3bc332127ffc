package sigedit

import "strings"

// Validation messages.
const (
	IssueInvalidStructure = "Invalid HTML structure"
	WarnInlineStyles      = "Consider using inline styles for better email client compatibility"
	WarnExternalImages    = "External images may not display in some email clients"
)

// ValidationResult is the outcome of validating signature HTML.
type ValidationResult struct {
	IsValid       bool          `json:"isValid"`
	Issues        []string      `json:"issues"`
	Warnings      []string      `json:"warnings"`
	Compatibility Compatibility `json:"compatibility"`
}

// Compatibility reports per-client pass/fail. Every client currently shares
// the same signal.
type Compatibility struct {
	Outlook   bool `json:"outlook"`
	Gmail     bool `json:"gmail"`
	AppleMail bool `json:"appleMail"`
}

// Validate checks html for structural problems (blocking) and email-client
// compatibility risks (warnings).
func Validate(html string) *ValidationResult {
	issues := []string{}
	warnings := []string{}

	if !strings.Contains(html, "<") || !strings.Contains(html, ">") {
		issues = append(issues, IssueInvalidStructure)
	}

	if !strings.Contains(html, "style=") {
		warnings = append(warnings, WarnInlineStyles)
	}

	if strings.Contains(html, `src="http`) && !strings.Contains(html, `src="data:`) {
		warnings = append(warnings, WarnExternalImages)
	}

	ok := len(issues) == 0
	return &ValidationResult{
		IsValid:  ok,
		Issues:   issues,
		Warnings: warnings,
		Compatibility: Compatibility{
			Outlook:   ok,
			Gmail:     ok,
			AppleMail: ok,
		},
	}
}
