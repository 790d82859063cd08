package advisor

import (
	"fmt"
	"strings"

	gojson "github.com/goccy/go-json"

	"coverplan/internal/core"
)

// wire mirrors the collaborator's response with every field optional, so
// that a missing required field is distinguishable from a zero value.
type wireResult struct {
	Summary        *wireSummary `json:"summary"`
	ReportMarkdown *string      `json:"reportMarkdown"`
}

type wireSummary struct {
	HealthScore          *float64 `json:"healthScore"`
	AccidentScore        *float64 `json:"accidentScore"`
	LifeScore            *float64 `json:"lifeScore"`
	WealthScore          *float64 `json:"wealthScore"`
	LiquidityScore       *float64 `json:"liquidityScore"`
	TotalPremium         *float64 `json:"totalPremium"`
	PremiumToIncomeRatio *float64 `json:"premiumToIncomeRatio"`
	Gaps                 []string `json:"gaps"`
}

// ParseResult decodes and shape-checks a raw collaborator response. The five
// required score fields, totalPremium, gaps and reportMarkdown must be
// present; liquidityScore and premiumToIncomeRatio stay optional. Malformed
// output is rejected whole, never repaired or partially accepted.
func ParseResult(raw []byte) (core.AnalysisResult, error) {
	var w wireResult
	if err := gojson.Unmarshal(raw, &w); err != nil {
		return core.AnalysisResult{}, fmt.Errorf("%w: %v", ErrMalformedResult, err)
	}
	if w.Summary == nil {
		return core.AnalysisResult{}, fmt.Errorf("%w: missing summary", ErrMalformedResult)
	}
	if w.ReportMarkdown == nil || strings.TrimSpace(*w.ReportMarkdown) == "" {
		return core.AnalysisResult{}, fmt.Errorf("%w: missing reportMarkdown", ErrMalformedResult)
	}

	s := w.Summary
	required := map[string]*float64{
		"healthScore":   s.HealthScore,
		"accidentScore": s.AccidentScore,
		"lifeScore":     s.LifeScore,
		"wealthScore":   s.WealthScore,
		"totalPremium":  s.TotalPremium,
	}
	for name, v := range required {
		if v == nil {
			return core.AnalysisResult{}, fmt.Errorf("%w: missing summary.%s", ErrMalformedResult, name)
		}
	}
	if s.Gaps == nil {
		return core.AnalysisResult{}, fmt.Errorf("%w: missing summary.gaps", ErrMalformedResult)
	}

	return core.AnalysisResult{
		Summary: core.AnalysisSummary{
			HealthScore:          *s.HealthScore,
			AccidentScore:        *s.AccidentScore,
			LifeScore:            *s.LifeScore,
			WealthScore:          *s.WealthScore,
			LiquidityScore:       s.LiquidityScore,
			TotalPremium:         *s.TotalPremium,
			PremiumToIncomeRatio: s.PremiumToIncomeRatio,
			Gaps:                 s.Gaps,
		},
		ReportMarkdown: *w.ReportMarkdown,
	}, nil
}
