package roles

const (
	AIExpert     = "AI専門家"
	HealthExpert = "健康専門家"

	// Default is used whenever a role name is not in the table.
	Default = AIExpert
)

type entry struct {
	name   string
	prompt string
}

// Display order of the roles on the page.
var table = []entry{
	{
		name:   AIExpert,
		prompt: "あなたは高度なAIと機械学習の専門家です。ユーザーの質問に対して、技術的に正確で簡潔、かつ実践的な説明を提供してください。必要なら簡単なコード例やアルゴリズムの擬似コードを含めてください。",
	},
	{
		name:   HealthExpert,
		prompt: "あなたは医療と健康分野の専門家です。一般的な健康アドバイスをわかりやすく提供してください。ただし、診断や治療の確定は避け、専門医の受診を促す表現を含めてください。",
	},
}

var prompts = func() map[string]string {
	m := make(map[string]string, len(table))
	for _, e := range table {
		m[e.name] = e.prompt
	}
	return m
}()

// SystemPrompt returns the system prompt for role. Unknown roles silently
// resolve to the prompt of Default.
func SystemPrompt(role string) string {
	if prompt, ok := prompts[role]; ok {
		return prompt
	}
	return prompts[Default]
}

// Names returns the role names in display order.
func Names() []string {
	names := make([]string, 0, len(table))
	for _, e := range table {
		names = append(names, e.name)
	}
	return names
}

// Valid reports whether role is in the table.
func Valid(role string) bool {
	_, ok := prompts[role]
	return ok
}
