package corrupt

import "strings"

// Glyph confusions commonly produced by OCR on scanned Ukrainian documents.
// The first variant of every set is the target itself, so a rule that fires
// may still leave the line unchanged.
type substitution struct {
	target   string
	variants []string
}

var substitutions = []substitution{
	{"№", []string{"N", "N°", "Nº", "Ме", "Не", "Ле", "Н", "Но", "Ло", "Мо", "№"}},
	{"0", []string{"0", "O", "o"}},
	{"1", []string{"1", "I", "l", "i"}},
	{"2", []string{"2", "Z", "z"}},
	{"i", []string{"i", "I", "l", "1"}},
	{"o", []string{"o", "O", "0"}},
	{"e", []string{"e", "E", "3"}},
	{"a", []string{"a", "A", "4"}},
	{"s", []string{"s", "S", "5"}},
	{"t", []string{"t", "T", "7"}},
	{"g", []string{"g", "G", "9"}},
	{"b", []string{"b", "B", "8"}},
	{"l", []string{"l", "L", "1"}},
}

// Characters inserted by the word edit rule. The trailing space is
// intentional: an inserted space later tokenizes into a word break.
var insertAlphabet = []rune("abcdefghijklmnopqrstuvwxyz0123456789 ")

// substituteGlyphs runs every confusion rule once over the line. A firing
// rule picks one variant and replaces all occurrences of the target with that
// same variant.
func (c *Corruptor) substituteGlyphs(line string, severity float64) string {
	for _, sub := range substitutions {
		if c.chance(severity) {
			variant := sub.variants[c.rng.Intn(len(sub.variants))]
			line = strings.ReplaceAll(line, sub.target, variant)
		}
	}
	return line
}

// editWords deletes or inserts a single character in individual words.
func (c *Corruptor) editWords(line string, severity float64) string {
	words := strings.Fields(line)
	for i, word := range words {
		if !c.chance(severity) {
			continue
		}
		runes := []rune(word)
		if c.chance(0.5) {
			if len(runes) == 0 {
				continue
			}
			at := c.rng.Intn(len(runes))
			words[i] = string(runes[:at]) + string(runes[at+1:])
		} else {
			at := c.rng.Intn(len(runes) + 1)
			char := insertAlphabet[c.rng.Intn(len(insertAlphabet))]
			words[i] = string(runes[:at]) + string(char) + string(runes[at:])
		}
	}
	return strings.Join(words, " ")
}

// swapWords swaps the first adjacent pair whose trial fires. Rarer than the
// character rules, so the gate is severity/10.
func (c *Corruptor) swapWords(line string, severity float64) string {
	words := strings.Fields(line)
	for i := 0; i+1 < len(words); i++ {
		if c.chance(severity / 10) {
			words[i], words[i+1] = words[i+1], words[i]
			break
		}
	}
	return strings.Join(words, " ")
}

// splitWord breaks the first firing word of at least two runes in two at a
// random internal position. At most one split per line.
func (c *Corruptor) splitWord(line string, severity float64) string {
	words := strings.Fields(line)
	for i, word := range words {
		if !c.chance(severity) {
			continue
		}
		runes := []rune(word)
		if len(runes) < 2 {
			continue
		}
		at := 1 + c.rng.Intn(len(runes)-1)
		split := make([]string, 0, len(words)+1)
		split = append(split, words[:i]...)
		split = append(split, string(runes[:at]), string(runes[at:]))
		split = append(split, words[i+1:]...)
		words = split
		break
	}
	return strings.Join(words, " ")
}

// joinWords concatenates the first adjacent pair whose trial fires. At most
// one join per line.
func (c *Corruptor) joinWords(line string, severity float64) string {
	words := strings.Fields(line)
	for i := 0; i+1 < len(words); i++ {
		if c.chance(severity) {
			words[i] = words[i] + words[i+1]
			words = append(words[:i+1], words[i+2:]...)
			break
		}
	}
	return strings.Join(words, " ")
}

// dropWords blanks individual words with probability severity/10. Blanked
// words leave adjacent spaces behind in the join; that artifact is part of
// the noise model, not cleaned up.
func (c *Corruptor) dropWords(line string, severity float64) string {
	words := strings.Fields(line)
	for i := range words {
		if c.chance(severity / 10) {
			words[i] = ""
		}
	}
	return strings.Join(words, " ")
}
