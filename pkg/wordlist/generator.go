package wordlist

import (
	"strings"
	"time"
)

// Generator expands requests into wordlists. It holds no per-call state and
// is safe for concurrent use.
type Generator struct {
	now func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the clock that decides the current calendar year.
// Nil clocks are ignored.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// New returns a Generator using the wall clock unless overridden.
func New(opts ...Option) *Generator {
	g := &Generator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = New()

// Generate runs req through the default Generator.
func Generate(req Request) *Result {
	return defaultGenerator.Generate(req)
}

// Generate builds the wordlist for req. It never fails: requests without
// seed words, inverted or negative length windows all produce an empty Result.
func (g *Generator) Generate(req Request) *Result {
	seeds := req.Seeds()
	if len(seeds) == 0 {
		return &Result{}
	}

	year := g.now().Year()
	years := yearSuffixes(year)
	set := newLengthSet(req.MinLen, req.MaxLen)

	expandCase(set, seeds)
	if req.UseLeet {
		expandLeet(set)
	}
	expandAffixes(set, years)
	expandCombinations(set, seeds, years, shortYear(year))
	expandReversals(set, seeds)

	return &Result{words: set.words}
}

func expandCase(set *lengthSet, seeds []string) {
	for _, w := range seeds {
		set.add(w)
		set.add(strings.ToLower(w))
		set.add(strings.ToUpper(w))
		set.add(Capitalize(w))
	}
}

func expandLeet(set *lengthSet) {
	for _, w := range set.snapshot() {
		set.add(Leet(w))
	}
}

func expandAffixes(set *lengthSet, years []string) {
	for _, w := range set.snapshot() {
		for _, y := range years {
			set.add(w + y)
			for _, c := range SpecialChars {
				set.add(w + y + c)
			}
		}

		for _, n := range numberSuffixes {
			set.add(w + n)
			for _, c := range SpecialChars {
				set.add(w + n + c)
			}
		}

		for i, c := range SpecialChars {
			set.add(w + c)
			set.add(c + w)
			set.add(c + w + c)
			// Doubles don't depend on c; repeating them per symbol only re-adds.
			if i == 0 {
				for _, ds := range DoubleSpecials {
					set.add(w + ds)
				}
			}
		}
	}
}

func expandCombinations(set *lengthSet, seeds, years []string, yy string) {
	core := seeds[:min(len(seeds), CoreWordLimit)]
	yearTail := years[max(0, len(years)-ComboYearTail):]
	numberHead := numberSuffixes[:min(len(numberSuffixes), ComboNumberHead)]
	tripleLimit := min(len(core), TripleWordLimit)

	for i, w1 := range core {
		for j, w2 := range core {
			if i == j {
				continue
			}

			for _, sep := range Separators {
				combined := w1 + sep + w2
				set.add(combined)
				for _, y := range yearTail {
					set.add(combined + y)
				}
				for _, c := range SpecialChars {
					set.add(combined + c)
				}
				for _, n := range numberHead {
					set.add(combined + n)
				}
			}

			for k := range tripleLimit {
				if k == i || k == j {
					continue
				}
				w3 := core[k]
				set.add(w1 + w2 + w3)
				set.add(w1 + "." + w2 + "." + w3)
				set.add(w1 + w2 + w3 + yy)
			}
		}
	}
}

func expandReversals(set *lengthSet, seeds []string) {
	for _, w := range seeds {
		set.add(Reverse(w))
		set.add(ToggleCase(w, false))
		set.add(ToggleCase(w, true))
	}
}
