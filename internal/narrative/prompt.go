package narrative

import (
	"strings"
	"text/template"

	"moveAnalyzer/internal/model"
)

const systemPrompt = "You are a helpful chess analysis assistant."

var promptTemplate = template.Must(template.New("prompt").Parse(`Chess Game Summary:
{{.WhitePlayer}} (White, {{.WhiteRating}}) vs
{{.BlackPlayer}} (Black, {{.BlackRating}})

Game PGN:
{{.PGN}}

Final Result: {{.Outcome}}

Please provide a brief summary of this game in the following format:

• Opening: [Opening name]
• Key Moments:
  - [First key moment]
  - [Second key moment]
  - [Third key moment if any]
• Final Outcome: [How the game ended]
• Recommendations:
  - [First recommendation]
  - [Second recommendation]
  - [Third recommendation if any]

Note: When referring to players, use their names instead of colors.
Format the response exactly as shown above with bullet points. NO spacing.
`))

// BuildPrompt renders the analysis request for a game.
func BuildPrompt(game model.Game) (string, error) {
	var b strings.Builder
	if err := promptTemplate.Execute(&b, game); err != nil {
		return "", err
	}
	return b.String(), nil
}
