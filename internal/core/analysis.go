package core

// NeutralScore substitutes a missing optional risk score when rendering.
const NeutralScore = 50

// AnalysisSummary is the structured dashboard block returned by the external
// advisor. Scores are 0-100. LiquidityScore and PremiumToIncomeRatio are
// optional in the wire contract; nil means the advisor omitted them.
type AnalysisSummary struct {
	HealthScore          float64  `json:"healthScore"`
	AccidentScore        float64  `json:"accidentScore"`
	LifeScore            float64  `json:"lifeScore"`
	WealthScore          float64  `json:"wealthScore"`
	LiquidityScore       *float64 `json:"liquidityScore,omitempty"`
	TotalPremium         float64  `json:"totalPremium"`
	PremiumToIncomeRatio *float64 `json:"premiumToIncomeRatio,omitempty"`
	Gaps                 []string `json:"gaps"`
}

// AnalysisResult is the whole advisor response: the dashboard summary plus a
// free-form report in the restricted line-oriented markup. It is received
// whole and held read-only until the next successful analysis replaces it.
type AnalysisResult struct {
	Summary        AnalysisSummary `json:"summary"`
	ReportMarkdown string          `json:"reportMarkdown"`
}

// Liquidity returns the liquidity score, or the neutral midpoint when the
// advisor left it out.
func (s AnalysisSummary) Liquidity() float64 {
	if s.LiquidityScore == nil {
		return NeutralScore
	}
	return *s.LiquidityScore
}

// Ratio returns the premium-to-income ratio, or zero when absent.
func (s AnalysisSummary) Ratio() float64 {
	if s.PremiumToIncomeRatio == nil {
		return 0
	}
	return *s.PremiumToIncomeRatio
}
