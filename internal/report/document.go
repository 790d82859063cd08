package report

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"coverplan/internal/core"
)

// Filename builds the download name for an exported report, embedding the
// current date.
func Filename(t time.Time) string {
	return "insurance-report_" + t.Format("2006-01-02") + ".html"
}

var docTemplate = template.Must(template.New("report").Parse(`<!doctype html>
<html lang="zh">
<head>
<meta charset="utf-8">
<title>家庭保障分析报告</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; color: #1e293b; }
h3 { border-left: 4px solid #4f46e5; padding-left: .75rem; }
.callout { font-weight: bold; color: #4338ca; background: #eef2ff; padding: .25rem .75rem; border-radius: .375rem; display: inline-block; }
.spacer { height: .75rem; }
.scores { display: flex; flex-wrap: wrap; gap: .5rem; margin: 1rem 0; }
.scores div { background: #f8fafc; border-radius: .5rem; padding: .5rem 1rem; }
.gaps li { background: #fffbeb; margin: .25rem 0; padding: .5rem; border-radius: .375rem; }
footer { margin-top: 2rem; color: #94a3b8; font-size: .75rem; }
</style>
</head>
<body>
<h1>家庭保障分析报告</h1>
<div class="scores">
<div>健康 {{printf "%.0f" .Summary.HealthScore}}</div>
<div>意外 {{printf "%.0f" .Summary.AccidentScore}}</div>
<div>寿险 {{printf "%.0f" .Summary.LifeScore}}</div>
<div>财富 {{printf "%.0f" .Summary.WealthScore}}</div>
<div>流动性 {{printf "%.0f" .Liquidity}}</div>
<div>汇总年缴保费 {{.TotalPremium}}</div>
<div>保费/收入比 {{.RatioPercent}}</div>
</div>
{{if .Summary.Gaps}}<h3>风险预警与缺口</h3>
<ul class="gaps">{{range .Summary.Gaps}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{.Body}}
<footer>生成时间 {{.GeneratedAt}}</footer>
</body>
</html>
`))

type docData struct {
	Summary      core.AnalysisSummary
	Liquidity    float64
	TotalPremium string
	RatioPercent string
	Body         template.HTML
	GeneratedAt  string
}

// BuildDocument assembles the standalone exportable report page: the
// dashboard summary block followed by the rendered markup body.
func BuildDocument(res core.AnalysisResult, generatedAt time.Time) ([]byte, error) {
	var b strings.Builder
	data := docData{
		Summary:   res.Summary,
		Liquidity: res.Summary.Liquidity(),
		// The advisor normalizes totalPremium to CNY.
		TotalPremium: core.FormatAmount(core.CNY, decimal.NewFromFloat(res.Summary.TotalPremium)),
		RatioPercent: fmt.Sprintf("%.1f%%", res.Summary.Ratio()*100),
		Body:         Render(res.ReportMarkdown),
		GeneratedAt:  generatedAt.Format("2006-01-02 15:04"),
	}
	if err := docTemplate.Execute(&b, data); err != nil {
		return nil, fmt.Errorf("render report document: %w", err)
	}
	return []byte(b.String()), nil
}
