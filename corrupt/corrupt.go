// Package corrupt injects OCR-like noise into clean text. It is used to
// manufacture (dirty, clean) training pairs for the spelling and grammar
// correction model.
package corrupt

import (
	"math/rand"
	"strings"
)

// Corruptor applies a fixed ordered sequence of corruption rules to text.
// All randomness is drawn from the injected source, so a corruptor with a
// seeded source produces reproducible output.
type Corruptor struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Corruptor {
	return &Corruptor{
		rng: rng,
	}
}

// Rules are folded over every line in this exact order. The order matters
// because later rules operate on the output of earlier ones: word split and
// join change the word count seen by word deletion.
var lineRules = []func(c *Corruptor, line string, severity float64) string{
	(*Corruptor).substituteGlyphs,
	(*Corruptor).editWords,
	(*Corruptor).swapWords,
	(*Corruptor).splitWord,
	(*Corruptor).joinWords,
	(*Corruptor).dropWords,
}

// Corrupt returns a noisy rendering of text. Severity is the independent
// probability that a given rule fires on a given line or word, in [0, 1].
// Severity 0 still normalizes the text: lines are rejoined with "\n" (CRLF
// becomes LF) and runs of whitespace inside a line collapse to single spaces.
//
// Each line is processed in isolation. Rules draw from the random source in a
// fixed order per line, so a fixed source makes the whole call deterministic.
func (c *Corruptor) Corrupt(text string, severity float64) string {
	lines := strings.SplitAfter(text, "\n")
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		for _, rule := range lineRules {
			line = rule(c, line, severity)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// chance draws one Bernoulli trial.
func (c *Corruptor) chance(p float64) bool {
	return c.rng.Float64() < p
}
