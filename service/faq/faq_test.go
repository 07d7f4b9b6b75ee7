package faq

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type MatcherTest struct {
	suite.Suite
	matcher *Matcher
}

func (m *MatcherTest) SetupTest() {
	m.matcher = NewMatcher()
}

func (m *MatcherTest) TestDietaryMatch() {
	answer, ok := m.matcher.Match("Habt ihr vegane Optionen?")
	m.True(ok)
	m.Contains(answer, "Vegetarische, vegane und glutenfreie Optionen")
}

func (m *MatcherTest) TestMatchIsCaseInsensitive() {
	lower, okLower := m.matcher.Match("glutenfrei?")
	upper, okUpper := m.matcher.Match("GLUTENFREI?")
	m.True(okLower)
	m.True(okUpper)
	m.Equal(lower, upper)
}

func (m *MatcherTest) TestEmptyInputNeverMatches() {
	answer, ok := m.matcher.Match("")
	m.False(ok)
	m.Equal("", answer)
}

func (m *MatcherTest) TestNoMatchIsNormalOutcome() {
	_, ok := m.matcher.Match("xyzzy qwertz")
	m.False(ok)
}

// A message carrying both a gift-card and a payment cue resolves by declared
// rule order, not by content specificity.
func (m *MatcherTest) TestDeclaredOrderWins() {
	answer, ok := m.matcher.Match("Kann ich einen Gutschein mit PayPal bezahlen?")
	m.True(ok)
	m.Contains(answer, "Gutscheine gibt es vor Ort oder online")
	m.NotContains(answer, "Wir akzeptieren EC")
}

func (m *MatcherTest) TestComputedHoursDefault() {
	answer, ok := m.matcher.Match("Wann habt ihr geöffnet?")
	m.True(ok)
	m.True(strings.HasPrefix(answer, "Küchenzeiten:"))
	m.Contains(answer, "Dienstag: geschlossen")
}

func (m *MatcherTest) TestComputedHoursSundayLunch() {
	answer, ok := m.matcher.Match("Seid ihr Sonntag zum Lunch offen?")
	m.True(ok)
	m.Equal("Sonntag Mittag geöffnet: 12:00–14:00 (letzte Küchenbestellung 13:50).", answer)
}

func (m *MatcherTest) TestSameRuleAlwaysSameAnswer() {
	first, ok := m.matcher.Match("Gibt es WLAN?")
	m.True(ok)
	second, ok := m.matcher.Match("habt ihr wifi")
	m.True(ok)
	m.Equal(first, second)
}

func TestMatcher(t *testing.T) {
	suite.Run(t, new(MatcherTest))
}
