package scenes

import (
	"image/color"

	"github.com/aquabot/firstmate/pkg/game"
)

// Destination dashboard 上的一个入口
type Destination struct {
	Path        string
	Title       string
	Subtitle    string
	Description string
	Features    []string
	Accent      color.NRGBA
}

var destinations = []Destination{
	{
		Path:        game.PathGeneral,
		Title:       "General Chatbot",
		Subtitle:    "Conversational Maritime Assistant",
		Description: "Ask questions about laytime, weather, distances, CP clauses, or upload documents for AI-assisted summaries. Perfect for conversational queries and proactive alerts.",
		Features: []string{
			"Answer laytime & voyage queries",
			"Document summarization",
			"Voice or chat interaction",
			"Real-time alerts on weather & market",
		},
		Accent: color.NRGBA{R: 37, G: 99, B: 235, A: 255}, // blue-600
	},
	{
		Path:        game.PathSpecial,
		Title:       "Special Agentic Chatbot",
		Subtitle:    "AI Agent for Smart Planning",
		Description: "AI agent for smart voyage planning, cargo-tonnage matching, and cost optimization. Generates actionable insights and detailed reports automatically.",
		Features: []string{
			"Optimal route planning & fuel cost analysis",
			"Cargo-ship pairing suggestions with profitability estimates",
			"Port intelligence & PDA cost management",
			"Decision support with trade-offs & TCE ranking",
		},
		Accent: color.NRGBA{R: 5, G: 150, B: 105, A: 255}, // emerald-600
	},
}

// Destinations 返回 dashboard 的全部入口
func Destinations() []Destination {
	out := make([]Destination, len(destinations))
	copy(out, destinations)
	return out
}

// DestinationFor 按路径查找入口
func DestinationFor(path string) (Destination, bool) {
	for _, d := range destinations {
		if d.Path == path {
			return d, true
		}
	}
	return Destination{}, false
}
