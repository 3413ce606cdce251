// Package mantra selects the affirmation shown during breathing sessions
// and keeps the user's favorite and locked choices.
package mantra

var mantras = []string{
	"I am safe in this moment",
	"This feeling will pass",
	"I breathe in calm, I breathe out tension",
	"I am stronger than my anxiety",
	"I have survived every hard moment so far",
	"My body knows how to relax",
	"I am here, I am now, I am okay",
	"Each breath brings me back to myself",
	"I release what I cannot control",
	"I am allowed to take up space",
	"Peace begins with this breath",
	"I am grounded and steady",
	"My thoughts are not facts",
	"I can do hard things gently",
	"I choose calm over worry",
	"It is okay to slow down",
	"I am enough, just as I am",
	"With every exhale I let go",
	"I trust myself to handle this",
	"Calm is always one breath away",
}

// All returns a copy of the affirmation table.
func All() []string {
	out := make([]string, len(mantras))
	copy(out, mantras)
	return out
}
