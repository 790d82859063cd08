// Package canned is a local, deterministic Analyzer used for development and
// tests, the way the in-memory data backend stands in for the real one. It
// scores the household with the same heuristics the real advisor is prompted
// with: emergency-fund adequacy, debt versus life cover, core protection
// gaps, and the ~10% premium-to-income guideline.
package canned

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"coverplan/internal/core"
	"coverplan/internal/household"
)

type Advisor struct{}

func New() *Advisor {
	return &Advisor{}
}

func (a *Advisor) Analyze(_ context.Context, snap household.Snapshot) (core.AnalysisResult, error) {
	fin := snap.Financials

	months := core.CoverageMonths(fin.EmergencyFund, fin.MonthlyExpenses)
	band := core.BandForCoverage(months)
	liquidity := clampScore(months.InexactFloat64() * 12.5)

	covered := coverageByType(snap)
	memberCount := len(snap.Members)

	health := memberShare(covered[core.PolicyMedical], covered[core.PolicyCriticalIllness], memberCount)
	accident := memberShare(covered[core.PolicyAccident], nil, memberCount)
	life := lifeScore(snap, fin.TotalDebt)
	wealth := wealthScore(snap, band)

	totalPremium := decimal.Zero
	for _, p := range snap.Policies {
		totalPremium = totalPremium.Add(p.AnnualPremium)
	}
	income := fin.OtherIncome
	for _, m := range snap.Members {
		income = income.Add(m.Income)
	}
	var ratio float64
	if income.IsPositive() {
		ratio, _ = totalPremium.Div(income).Round(4).Float64()
	}

	gaps := collectGaps(snap, months, band, ratio)
	report := buildReport(snap, months, band, totalPremium, ratio, gaps)

	return core.AnalysisResult{
		Summary: core.AnalysisSummary{
			HealthScore:          health,
			AccidentScore:        accident,
			LifeScore:            life,
			WealthScore:          wealth,
			LiquidityScore:       &liquidity,
			TotalPremium:         totalPremium.InexactFloat64(),
			PremiumToIncomeRatio: &ratio,
			Gaps:                 gaps,
		},
		ReportMarkdown: report,
	}, nil
}

// coverageByType maps each policy type to the set of insured member ids.
func coverageByType(snap household.Snapshot) map[core.PolicyType]map[string]bool {
	out := make(map[core.PolicyType]map[string]bool)
	for _, p := range snap.Policies {
		if out[p.Type] == nil {
			out[p.Type] = make(map[string]bool)
		}
		out[p.Type][p.InsuredMemberID] = true
	}
	return out
}

// memberShare scores how many members appear in either insured set, as a
// 0-100 share of the household.
func memberShare(primary, secondary map[string]bool, members int) float64 {
	if members == 0 {
		return 0
	}
	union := make(map[string]bool, len(primary)+len(secondary))
	for id := range primary {
		union[id] = true
	}
	for id := range secondary {
		union[id] = true
	}
	return clampScore(float64(len(union)) / float64(members) * 100)
}

// lifeScore rates life cover against the remaining household debt. With no
// debt, any life policy counts as adequate.
func lifeScore(snap household.Snapshot, totalDebt decimal.Decimal) float64 {
	lifeCover := decimal.Zero
	for _, p := range snap.Policies {
		if p.Type == core.PolicyLife {
			lifeCover = lifeCover.Add(p.CoverageAmount)
		}
	}
	if !totalDebt.IsPositive() {
		if lifeCover.IsPositive() {
			return 80
		}
		return core.NeutralScore
	}
	ratio, _ := lifeCover.Div(totalDebt).Float64()
	return clampScore(ratio * 100)
}

func wealthScore(snap household.Snapshot, band core.CoverageBand) float64 {
	score := 30.0
	for _, p := range snap.Policies {
		if p.Type == core.PolicyAnnuity {
			score += 40
			break
		}
	}
	if band == core.CoverageRobust {
		score += 30
	}
	return clampScore(score)
}

func collectGaps(snap household.Snapshot, months decimal.Decimal, band core.CoverageBand, ratio float64) []string {
	gaps := []string{}

	if band == core.CoverageHighRisk {
		gaps = append(gaps, fmt.Sprintf("紧急预备金仅可覆盖 %s 个月开支，低于 3 个月的安全线", months.StringFixed(1)))
	} else if band == core.CoverageBaseline {
		gaps = append(gaps, fmt.Sprintf("紧急预备金可覆盖 %s 个月开支，建议逐步增加至 6 个月以上", months.StringFixed(1)))
	}

	covered := coverageByType(snap)
	for _, m := range snap.Members {
		if !covered[core.PolicyMedical][m.ID] && !covered[core.PolicyCriticalIllness][m.ID] {
			gaps = append(gaps, fmt.Sprintf("%s 缺少医疗险或重疾险保障", m.Name))
		}
	}
	if len(covered[core.PolicyAccident]) == 0 && len(snap.Members) > 0 {
		gaps = append(gaps, "家庭成员均无意外险保障")
	}
	if snap.Financials.TotalDebt.IsPositive() && len(covered[core.PolicyLife]) == 0 {
		gaps = append(gaps, fmt.Sprintf("家庭负债 %s 无寿险保额覆盖",
			core.FormatAmount(snap.Financials.Currency, snap.Financials.TotalDebt)))
	}
	if ratio > 0.1 {
		gaps = append(gaps, fmt.Sprintf("年缴保费占家庭年收入 %.1f%%，高于 10%% 的建议上限", ratio*100))
	}
	return gaps
}

func buildReport(snap household.Snapshot, months decimal.Decimal, band core.CoverageBand, totalPremium decimal.Decimal, ratio float64, gaps []string) string {
	var b strings.Builder
	b.WriteString("# 家庭保障分析报告\n\n")
	b.WriteString(fmt.Sprintf("本报告基于 %d 位家庭成员与 %d 份保单生成。\n\n", len(snap.Members), len(snap.Policies)))

	b.WriteString("# 流动性与预备金\n")
	switch band {
	case core.CoverageHighRisk:
		b.WriteString("**风险较高：建议优先积攒至少 3 个月开支**\n")
	case core.CoverageBaseline:
		b.WriteString("**基本达标：建议逐步增加至 6 个月开支**\n")
	default:
		b.WriteString("**稳健：您的流动性管理非常出色**\n")
	}
	b.WriteString(fmt.Sprintf("当前紧急预备金可覆盖 %s 个月的必要开支。\n\n", months.StringFixed(1)))

	b.WriteString("# 保费支出\n")
	b.WriteString(fmt.Sprintf("家庭年缴保费合计约 %s，占年收入比例 %.1f%%。\n\n",
		core.FormatAmount(snap.Financials.Currency, totalPremium), ratio*100))

	if len(gaps) > 0 {
		b.WriteString("# 保障缺口\n")
		for _, g := range gaps {
			b.WriteString("- " + g + "\n")
		}
	} else {
		b.WriteString("# 保障缺口\n当前未发现明显保障缺口。\n")
	}
	return b.String()
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
