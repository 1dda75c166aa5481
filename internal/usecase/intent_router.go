package usecase

import (
	"strings"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/snapshot"
)

// Intent is the report family a free-text query is routed to.
type Intent string

const (
	IntentCaptain      Intent = "captain"
	IntentConditions   Intent = "conditions"
	IntentPlayers      Intent = "players"
	IntentStrategy     Intent = "strategy"
	IntentDifferential Intent = "differential"
	IntentCompare      Intent = "compare"
	IntentGeneral      Intent = "general"
)

type intentRule struct {
	intent   Intent
	keywords []string
}

// intentRules are checked in order; the first rule with a matching keyword wins.
var intentRules = []intentRule{
	{intent: IntentCaptain, keywords: []string{"captain", "vice", "vc"}},
	{intent: IntentConditions, keywords: []string{"pitch", "conditions", "weather"}},
	{intent: IntentPlayers, keywords: []string{"form", "player", "stats"}},
	{intent: IntentStrategy, keywords: []string{"team", "strategy", "11"}},
	{intent: IntentDifferential, keywords: []string{"differential", "ownership"}},
	{intent: IntentCompare, keywords: []string{"compare", "vs"}},
}

// RouteView is what the router needs to know about current state.
type RouteView struct {
	Acquiring bool
	Snapshot  snapshot.Snapshot
}

type IntentRouter struct{}

func NewIntentRouter() *IntentRouter {
	return &IntentRouter{}
}

// Classify matches lower-cased substrings. Queries matching nothing are general.
func (r *IntentRouter) Classify(query string) Intent {
	text := strings.ToLower(query)
	for _, rule := range intentRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(text, keyword) {
				return rule.intent
			}
		}
	}
	return IntentGeneral
}

// Route renders the report for query against view.
func (r *IntentRouter) Route(query string, view RouteView) (Intent, string) {
	s := view.Snapshot
	switch {
	case view.Acquiring:
		return IntentGeneral, connectingMessage
	case !s.HasEvents():
		return IntentGeneral, renderNoMatches(noMatchesExplanation(s))
	}

	players := s.AllPlayers()
	if len(players) == 0 {
		return IntentGeneral, processingMessage
	}

	intent := r.Classify(query)
	switch intent {
	case IntentCaptain:
		return intent, renderCaptain(s, players)
	case IntentConditions:
		return intent, renderConditions(s)
	case IntentPlayers:
		return intent, renderPlayers(s, players)
	case IntentStrategy:
		return intent, renderStrategy(s, players)
	case IntentDifferential:
		return intent, renderDifferentials(players)
	case IntentCompare:
		return intent, renderComparison(players)
	default:
		return IntentGeneral, renderGeneral(s)
	}
}

func noMatchesExplanation(s snapshot.Snapshot) string {
	if explanation := strings.TrimSpace(s.Explanation); explanation != "" {
		return explanation
	}
	return "There may be no cricket matches scheduled today, or all data sources are temporarily unavailable."
}
