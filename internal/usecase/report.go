package usecase

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/analytics"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/conditions"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/snapshot"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/squad"
	"github.com/valyala/bytebufferpool"
)

// Reports are plain text. Paired "**" delimiters mark emphasis.

const (
	connectingMessage  = "Connecting to live cricket data sources..."
	processingMessage  = "Processing live match data and generating player analytics..."
	noPlayersMessage   = "Still processing player data..."
	noCompareMessage   = "Insufficient player data for comparison analysis."
	noDifferentialText = "No clear differential picks identified in current data. All high-form players have significant ownership."

	liveConfidence      = "95%"
	syntheticConfidence = "85%"
)

type reportWriter struct {
	buf *bytebufferpool.ByteBuffer
}

func (w reportWriter) line(format string, args ...any) {
	if len(args) == 0 {
		_, _ = w.buf.WriteString(format)
	} else {
		_, _ = fmt.Fprintf(w.buf, format, args...)
	}
	_ = w.buf.WriteByte('\n')
}

func (w reportWriter) bullet(format string, args ...any) {
	w.line("• "+format, args...)
}

func (w reportWriter) bullets(lines []string) {
	for _, l := range lines {
		w.bullet("%s", l)
	}
}

func (w reportWriter) blank() {
	_ = w.buf.WriteByte('\n')
}

func render(fn func(w reportWriter)) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	fn(reportWriter{buf: buf})
	return strings.TrimRight(buf.String(), "\n")
}

func weatherSource(c conditions.Conditions) string {
	if c.Live {
		return "Live Weather APIs"
	}
	return "Simulated"
}

func confidence(s snapshot.Snapshot) string {
	if s.Synthetic() {
		return syntheticConfidence
	}
	return liveConfidence
}

// RenderReady is the greeting shown once a snapshot with events is published.
func RenderReady(s snapshot.Snapshot) string {
	ev := s.Selected
	return render(func(w reportWriter) {
		w.line("**Fantasy Cricket Assistant Ready!**")
		w.blank()
		w.line("**Data Source:** %s", s.DataSource)
		w.line("**Live Matches:** %d found", len(s.Events))
		w.line("**Current Analysis:** %s", ev.Name)
		w.line("**Tournament:** %s", ev.Series)
		w.line("**Venue:** %s", ev.Venue)
		w.line("**Format:** %s", ev.Format)
		w.line("**Status:** %s", ev.Status)
		if s.Synthetic() {
			w.blank()
			w.line("**Note:** live sources were unavailable; this match is simulated (%s).", ev.Source)
		}
		w.blank()
		w.line("**Try:**")
		w.bullets([]string{
			`"Best captain for this match"`,
			`"Analyze pitch conditions"`,
			`"Player form comparison"`,
			`"Fantasy team strategy"`,
			`"Weather impact analysis"`,
		})
	})
}

func renderNoMatches(explanation string) string {
	return render(func(w reportWriter) {
		w.line("**No Live Cricket Matches Found**")
		w.blank()
		w.line("**Reality Check:** %s", explanation)
		w.blank()
		w.line("**When Cricket Typically Happens:**")
		w.bullets(seasonGuide())
		w.blank()
		w.line("**What you can do:**")
		w.bullets([]string{
			"Check official cricket websites for today's schedule",
			"Try again later when matches are actually happening",
			"Ask me about general fantasy cricket strategy",
		})
		w.blank()
		w.line("**No matches or players are invented when none are expected.**")
	})
}

func renderCaptain(s snapshot.Snapshot, players []squad.Player) string {
	pick, ok := analytics.Captain(players)
	if !ok {
		return noPlayersMessage
	}
	safe := pick.Safe
	c := s.Conditions

	return render(func(w reportWriter) {
		w.line("**Captain Analysis**")
		w.blank()
		w.line("**Data Source:** %s", s.DataSource)
		w.line("**Match:** %s", s.Selected.Name)
		w.blank()
		w.line("**Safe Captain Choice:**")
		w.line("**%s (%s)**", safe.Name, safe.Team)
		w.bullet("**Form Score:** %d/100", safe.Form)
		w.bullet("**Ownership:** %d%% (Template pick)", safe.Ownership)
		w.bullet("**Price:** %s credits", safe.Credits())
		w.bullet("**Role:** %s", safe.Specialism)
		w.bullet("**Venue Average:** %d", safe.VenueAvg)
		w.blank()

		if pick.HasDifferential {
			diff := pick.Differential
			w.line("**Differential Captain:**")
			w.line("**%s (%s)**", diff.Name, diff.Team)
			w.bullet("**Form Score:** %d/100", diff.Form)
			w.bullet("**Ownership:** %d%% (Low ownership!)", diff.Ownership)
			w.bullet("**Price:** %s credits", diff.Credits())
			w.bullet("**Risk Level:** %s", analytics.CaptainRisk(diff))
		} else {
			w.line("**Differential Captain:** not enough players for a differential pick")
		}
		w.blank()

		w.line("**Conditions Impact:**")
		w.bullet("**Pitch:** %s", c.Pitch)
		w.bullet("**Weather:** %s", c.Weather)
		w.bullet("**Temperature:** %d°C", c.Temperature)
		w.bullet("**Strategy:** %s", analytics.CaptainStrategy(c.Pitch))
		w.blank()

		switch {
		case pick.HasDifferential && safe.Ownership > 50:
			w.line("**Recommendation:** %s for safe rank, %s for rank climbing", safe.Name, pick.Differential.Name)
		default:
			w.line("**Recommendation:** %s offers best risk-reward balance", safe.Name)
		}
		w.blank()
		w.line("*Analysis based on data from %s*", s.DataSource)
	})
}

func renderConditions(s snapshot.Snapshot) string {
	c := s.Conditions
	ev := s.Selected

	return render(func(w reportWriter) {
		w.line("**Conditions Analysis**")
		w.blank()
		w.line("**Venue:** %s", ev.Venue)
		w.line("**Weather Source:** %s", weatherSource(c))
		w.blank()
		w.line("**Current Weather:**")
		w.bullet("**Condition:** %s", c.Weather)
		w.bullet("**Temperature:** %d°C", c.Temperature)
		w.bullet("**Humidity:** %d%%", c.Humidity)
		w.bullet("**Wind:** %d km/h", c.WindSpeed)
		w.bullet("**Dew Factor:** %s", c.Dew)
		w.blank()
		w.line("**Pitch Analysis:**")
		w.bullet("**Type:** %s", c.Pitch)
		w.bullet("**Assessment:** %s", analytics.PitchAssessment(c.Pitch))
		w.blank()
		w.line("**Fantasy Impact:**")
		w.bullets(analytics.FantasyImpact(c))
		w.blank()
		w.line("**Strategy Recommendation:**")
		w.line("%s", analytics.ConditionsStrategy(c, ev.Format))
		w.blank()
		w.line("**Status:** %s", ev.Status)
		w.line("**Last Updated:** %s", s.PublishedAt.UTC().Format("15:04:05 UTC"))
	})
}

func renderPlayers(s snapshot.Snapshot, players []squad.Player) string {
	summary := analytics.SummarizePlayers(players)

	return render(func(w reportWriter) {
		w.line("**Player Analysis**")
		w.blank()
		w.line("**Data Processing:** %d players analyzed", summary.Total)
		w.line("**Source:** %s", s.DataSource)
		w.blank()
		w.line("**Top Form Players:**")
		for i, p := range summary.TopForm {
			w.line("%d. **%s** (%s)", i+1, p.Name, p.Team)
			w.line("   • Form: %d/100 | Price: %scr | Own: %d%%", p.Form, p.Credits(), p.Ownership)
		}
		w.blank()
		w.line("**Value Picks (High Form, Low Ownership):**")
		if len(summary.ValuePicks) == 0 {
			w.line("No clear value picks identified in current data")
		}
		for _, p := range summary.ValuePicks {
			w.bullet("**%s** - Form: %d/100, Ownership: %d%%", p.Name, p.Form, p.Ownership)
		}
		w.blank()
		w.line("**Position-wise Leaders:**")
		leaders := analytics.PositionLeaders(s.Squads, s.Selected.Teams[:])
		if len(leaders) == 0 {
			w.line("Position analysis in progress...")
		}
		for _, leader := range leaders {
			w.bullet("**%s** (%s): %s (%d/100)", leader.Role, leader.Team, leader.Player.Name, leader.Player.Form)
		}
		w.blank()
		w.line("**Form Trends:**")
		w.bullet("Players above 90 form: %d", summary.Elite)
		w.bullet("Players below 70 form: %d", summary.Struggling)
		w.bullet("Average form score: %d", summary.MeanForm)
		w.blank()
		w.line("**Insights:**")
		if summary.FavorsHighScorers() {
			w.bullet("Form distribution looks favorable for high scorers")
		} else {
			w.bullet("Form distribution looks evenly spread")
		}
		w.bullet("Ownership concentration: %d template players", summary.Template)
		w.bullet("Price efficiency opportunities detected: %d", summary.PriceEfficient)
	})
}

func renderStrategy(s snapshot.Snapshot, players []squad.Player) string {
	ev := s.Selected
	c := s.Conditions
	firstShare, secondShare := analytics.TeamDistribution(ev.Format)

	return render(func(w reportWriter) {
		w.line("**Team Building Strategy**")
		w.blank()
		w.line("**Match Context:** %s", ev.Name)
		w.line("**Format:** %s | **Conditions:** %s", ev.Format, c.Pitch)
		w.blank()
		w.line("**%s Optimal Strategy:**", ev.Format)
		w.bullets(analytics.FormatStrategy(ev.Format))
		w.blank()
		w.line("**Budget Allocation (100 credits):**")
		for _, tier := range analytics.BudgetTiers {
			w.bullet("**%s:** %s", tier.Label, tier.Range)
		}
		w.blank()
		w.line("**Team Distribution:**")
		w.bullet("**%s:** %s players", ev.Teams[0], firstShare)
		w.bullet("**%s:** %s players", ev.Teams[1], secondShare)
		w.blank()
		w.line("**Conditions-Based Adjustments:**")
		w.bullets(analytics.ConditionsAdjustments(c.Pitch))
		w.blank()
		w.line("**Risk Management:**")
		for _, tier := range analytics.RiskSplit {
			w.bullet("**%s:** %s", tier.Label, tier.Range)
		}
		w.blank()
		w.line("**Recommendations:**")
		if top, ok := analytics.TopPlayer(players); ok {
			w.bullet("**Must-have Player**: %s (Form: %d/100)", top.Name, top.Form)
		}
		if c.Pitch == conditions.PitchBatting {
			w.bullet("**Captain Choice**: Aggressive batsman")
		} else {
			w.bullet("**Captain Choice**: Consistent performer")
		}
		w.bullet("%s", "**Value Pick**: Look for players with form > 80 and ownership < 30%")
		w.bullet("%s", "**Avoid**: Players below 70 form unless under 15% ownership")
		w.bullet("**Toss Factor**: %s", analytics.TossFactor(c.Dew))
		w.blank()
		w.line("**Live Adjustments:**")
		w.line("Monitor team news, toss decisions, and late injury updates before deadline.")
	})
}

func renderDifferentials(players []squad.Player) string {
	picks := analytics.Differentials(players)
	if len(picks) == 0 {
		return noDifferentialText
	}
	bands := analytics.Ownership(players)

	return render(func(w reportWriter) {
		w.line("**Differential Analysis**")
		w.blank()
		w.line("**Low Ownership Gems Detected:**")
		for i, p := range picks {
			w.blank()
			w.line("**%d. %s (%s)**", i+1, p.Name, p.Team)
			w.bullet("**Ownership**: %d%% (Very Low!)", p.Ownership)
			w.bullet("**Form**: %d/100", p.Form)
			w.bullet("**Price**: %s credits", p.Credits())
			w.bullet("**Role**: %s", p.Specialism)
			w.bullet("**Risk Level**: %s", analytics.DifferentialRisk(p))
		}
		w.blank()
		w.line("**Differential Strategy:**")
		w.bullets([]string{
			"These players could be **rank-climbing goldmines**",
			"While 70%+ pick template players, smart managers find these gems",
			"If any of these perform, you'll gain **hundreds of ranks**",
			"Perfect for GPP tournaments and rank climbing",
		})
		w.blank()
		w.line("**Risk vs Reward:**")
		w.bullets([]string{
			"Template team = safer average rank",
			"Differential picks = higher ceiling, risk of red arrows",
			"**Recommendation**: Use 1-2 differentials max in balanced teams",
		})
		w.blank()
		w.line("**Ownership Analysis:**")
		w.bullet("High ownership (>50%%): %d players", bands.High)
		w.bullet("Medium ownership (25-50%%): %d players", bands.Medium)
		w.bullet("Low ownership (<25%%): %d players", bands.Low)
	})
}

func renderComparison(players []squad.Player) string {
	cmp, ok := analytics.Compare(players)
	if !ok {
		return noCompareMessage
	}
	a, b := cmp.First, cmp.Second
	other := func(p squad.Player) squad.Player {
		if p.Name == a.Name && p.Team == a.Team {
			return b
		}
		return a
	}

	return render(func(w reportWriter) {
		w.line("**Player Comparison**")
		w.blank()
		w.line("**%s vs %s**", a.Name, b.Name)
		w.blank()
		w.line("| Metric | %s | %s |", a.Name, b.Name)
		w.line("|--------|---------|---------|")
		w.line("| **Form** | %d/100 | %d/100 |", a.Form, b.Form)
		w.line("| **Price** | %scr | %scr |", a.Credits(), b.Credits())
		w.line("| **Ownership** | %d%% | %d%% |", a.Ownership, b.Ownership)
		w.line("| **Role** | %s | %s |", a.Specialism, b.Specialism)
		w.line("| **Team** | %s | %s |", a.Team, b.Team)
		w.blank()
		w.line("**Verdict:**")
		if cmp.FormDecided {
			w.line("**%s** edges ahead with superior form (%d vs %d)", a.Name, a.Form, b.Form)
		} else {
			w.line("Form scores are very close - consider other factors")
		}
		w.blank()
		w.line("**Value Analysis:**")
		w.line("**%s** offers better value (lower price-to-form ratio)", cmp.BetterValue.Name)
		w.blank()
		w.line("**Ownership Factor:**")
		diff := cmp.Differential
		w.line("**%s** is the differential pick (%d%% vs %d%%)", diff.Name, diff.Ownership, other(diff).Ownership)
		w.blank()
		w.line("**Recommendation:**")
		w.line("Choose based on your strategy - template safety vs differential upside.")
	})
}

func renderGeneral(s snapshot.Snapshot) string {
	ev := s.Selected

	return render(func(w reportWriter) {
		w.line("**Match Intelligence Hub**")
		w.blank()
		w.line("**Analysis:** %s", ev.Name)
		w.line("**Data Confidence:** %s (%s)", confidence(s), s.DataSource)
		w.blank()
		w.line("**Player Intelligence:**")
		w.bullets([]string{
			`"Best captain picks" - captain recommendations`,
			`"Player form analysis" - performance metrics`,
			`"Differential picks" - Low ownership gems`,
			`"Player comparison" - Head-to-head analytics`,
		})
		w.blank()
		w.line("**Conditions Intelligence:**")
		w.bullets([]string{
			`"Pitch analysis" - Venue-specific insights`,
			`"Weather impact" - Current conditions`,
			`"Toss factor" - Dew and chasing impact`,
		})
		w.blank()
		w.line("**Strategy Intelligence:**")
		w.bullets([]string{
			`"Team building strategy" - Format-specific advice`,
			`"Budget allocation" - Spending plans`,
			`"Risk management" - Safe vs aggressive picks`,
		})
		w.blank()
		w.line("**Match Data:**")
		w.bullet("Match Status: %s", ev.Status)
		w.bullet("Venue: %s", ev.Venue)
		w.bullet("Format: %s", ev.Format)
		w.bullet("Tournament: %s", ev.Series)
	})
}
