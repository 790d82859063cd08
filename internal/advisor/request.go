package advisor

import (
	"fmt"

	gojson "github.com/goccy/go-json"

	"coverplan/internal/household"
)

// promptTemplate is the fixed instruction wrapped around the serialized
// snapshot. The collaborator is prompted with this literal structure, so the
// field names and nesting of the JSON blocks must stay stable across calls.
const promptTemplate = `作为一名资深的家庭理财与保险专家，请基于以下家庭结构、财务状况和现有保单进行深度分析。

注意：输入数据包含多种币种（如 CNY, USD, HKD 等），请在分析时考虑汇率影响或以主要币种（CNY）为基准进行汇总说明。

家庭成员 (包含年收入和币种):
%s

家庭风险防范与财务状况 (包含详细债务项):
%s

现有保单 (包含保额、保费和币种):
%s

请特别关注：
1. 紧急预备金充足度 (流动性风险): 预备金是否覆盖 6-12 个月开支。
2. 家庭负债对寿险保额需求的影响: 保额应足以覆盖剩余负债。
3. 核心保障缺口分析 (重疾、医疗、意外、寿险)。
4. 保费支出合理性评估 (通常建议占家庭年总收入的 10%%)。
5. 针对性优化建议。

返回内容必须包含两部分：
1. 一个结构化的 JSON 总结，用于仪表盘展示。请将总保费汇总为 CNY（约数即可）。
2. 详细的 Markdown 格式报告内容。`

// BuildPrompt serializes the snapshot into the analysis request text. The
// same snapshot always produces the same prompt.
func BuildPrompt(snap household.Snapshot) (string, error) {
	members, err := gojson.MarshalIndent(snap.Members, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal members: %w", err)
	}
	financials, err := gojson.MarshalIndent(snap.Financials, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal financials: %w", err)
	}
	policies, err := gojson.MarshalIndent(snap.Policies, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal policies: %w", err)
	}
	return fmt.Sprintf(promptTemplate, members, financials, policies), nil
}
