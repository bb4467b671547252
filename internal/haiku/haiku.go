// Package haiku implements the deletion ritual: the rotating warning
// verses and the word-count rule the three composed lines must satisfy
// before a delete is authorized.
package haiku

import "strings"

// Bounds is the admissible word-count range for one line.
type Bounds struct {
	Min int
	Max int
}

// Rule holds per-line bounds for the three composed lines.
type Rule [3]Bounds

// DefaultRule is the ranged form: 3-5 words on the outer lines and 4-7
// on the middle one, so the user is not forced to an exact count.
var DefaultRule = Rule{{Min: 3, Max: 5}, {Min: 4, Max: 7}, {Min: 3, Max: 5}}

// NewRule builds a rule from per-line minima and maxima.
func NewRule(min, max [3]int) Rule {
	return Rule{
		{Min: min[0], Max: max[0]},
		{Min: min[1], Max: max[1]},
		{Min: min[2], Max: max[2]},
	}
}

// WordCount counts whitespace-separated non-empty tokens.
func WordCount(line string) int {
	return len(strings.Fields(line))
}

// Valid reports whether all three lines meet the rule at once.
func (r Rule) Valid(lines [3]string) bool {
	for i, line := range lines {
		n := WordCount(line)
		if n < r[i].Min || n > r[i].Max {
			return false
		}
	}
	return true
}

// Prompts rotates through the reflection verses shown on the warning
// step. The index advances by one on every show, wrapping, never
// random, so a persistent user reads the whole pool in order.
type Prompts struct {
	verses []string
	index  int
}

// NewPrompts builds a rotation over the given verses; an empty slice
// falls back to the built-in pool.
func NewPrompts(verses []string) *Prompts {
	if len(verses) == 0 {
		verses = warningVerses
	}
	return &Prompts{verses: verses}
}

// DefaultPrompts rotates over the built-in pool.
func DefaultPrompts() *Prompts {
	return NewPrompts(nil)
}

// Next returns the verse to show and advances the rotation.
func (p *Prompts) Next() string {
	verse := p.verses[p.index]
	p.index = (p.index + 1) % len(p.verses)
	return verse
}

// Len reports the pool size.
func (p *Prompts) Len() int {
	return len(p.verses)
}
