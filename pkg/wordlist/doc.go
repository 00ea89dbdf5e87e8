// Package wordlist expands a handful of personal facts into a large,
// deduplicated list of candidate passwords.
//
// A Request carries the facts (names, birth years, pets, hobbies, comma
// separated sibling and keyword lists) together with a length window. The
// Generator turns the facts into seed words and runs them through a fixed
// pipeline of expansion stages:
//
//  1. Case forms: original, lower, upper and capitalized.
//  2. Leet substitution (optional) over everything produced so far.
//  3. Affixes: four and two digit years, numbers 0-999 plus common
//     sequences, and special characters, appended or wrapped around words.
//  4. Pair and triple combinations of the first CoreWordLimit seeds joined
//     by Separators and decorated with trailing years, numbers and symbols.
//  5. Reversed and alternating-case forms of every seed.
//
// Every candidate passes through a single length filter, so each word in a
// Result satisfies MinLen <= length <= MaxLen, where length is counted in
// Unicode code points. The filter runs on insertion, so later stages only
// expand words that already fit the window: a seed shorter than MinLen gets
// no affixed forms even when an affix would bring it into range. The Result keeps first-insertion order, which makes
// the output (and any preview prefix of it) fully deterministic for a given
// request and calendar year.
//
// # Usage
//
//	req := wordlist.NewRequest()
//	req.FirstName = "Alice"
//	req.PetName = "Rex"
//	req.Keywords = "chess, jazz"
//	req.UseLeet = true
//
//	res := wordlist.Generate(req)
//	fmt.Println(res.Len(), res.Preview(wordlist.PreviewSize))
//
//	// Stream the list without building one big string.
//	_, err := res.WriteTo(w)
//
// Stages that expand "everything produced so far" iterate an immutable
// snapshot taken at stage entry, so a stage never feeds on its own output.
//
// # Resources
//
// Generation is synchronous, single threaded and has no cancellation hook.
// With a few dozen seeds it produces hundreds of thousands of candidates, so
// hosting services should run it off the request goroutine with their own
// concurrency bound and timeout, and keep the seed count and MaxLen bounded.
package wordlist
