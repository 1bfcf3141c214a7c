package narrative

import (
	"fmt"
	"strings"
)

// Provider selects the language model backend that writes narratives.
type Provider int

const (
	OpenAI Provider = iota + 1
	Gemini
)

func (p Provider) String() string {
	switch p {
	case OpenAI:
		return "openai"
	case Gemini:
		return "gemini"
	default:
		return fmt.Sprintf("provider(%d)", int(p))
	}
}

// ParseProvider maps a flag value onto a Provider.
func ParseProvider(name string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "openai", "gpt":
		return OpenAI, nil
	case "gemini", "google":
		return Gemini, nil
	default:
		return 0, fmt.Errorf("unknown provider: %q", name)
	}
}
