package wordlist

import "strconv"

// Generation limits.
const (
	// CoreWordLimit caps how many seeds take part in pair combinations.
	CoreWordLimit = 30
	// TripleWordLimit caps which seeds may be used as the third word of a triple.
	TripleWordLimit = 10
	// ComboYearTail is the number of trailing entries of the year list appended to combined words.
	ComboYearTail = 50
	// ComboNumberHead is the number of leading entries of the number list appended to combined words.
	ComboNumberHead = 100
	// FirstYear is the first four digit year used as a suffix.
	FirstYear = 1900
	// FutureYears is how many years past the current one are used as suffixes.
	FutureYears = 10
)

// SpecialChars are appended, prepended and wrapped around words.
var SpecialChars = []string{"!", "@", "#", "$", "%", "&", "*", "?", ".", "_", "-", "+", "=", "~"}

// DoubleSpecials are appended to words as a whole.
var DoubleSpecials = []string{"!!", "@@", "##", "$$", "??", "!@", "@!", "123!", "123456!", "123456789!"}

// CommonSequences follow the plain 0-999 range in the number suffix list.
var CommonSequences = []string{
	"1234", "12345", "123456", "1234567", "12345678", "123456789",
	"1111", "2222", "3333", "4444", "5555", "6666", "7777", "8888", "9999",
}

// Separators join the words of a pair combination.
var Separators = []string{"", ".", "_", "-", "@", "#", "!", "/"}

// numberSuffixes is 0..999 followed by CommonSequences. Read only.
var numberSuffixes = buildNumberSuffixes()

func buildNumberSuffixes() []string {
	out := make([]string, 0, 1000+len(CommonSequences))
	for n := range 1000 {
		out = append(out, strconv.Itoa(n))
	}
	return append(out, CommonSequences...)
}

// yearSuffixes returns FirstYear..year+FutureYears followed by "00".."99".
func yearSuffixes(year int) []string {
	last := year + FutureYears
	out := make([]string, 0, max(0, last-FirstYear+1)+100)
	for y := FirstYear; y <= last; y++ {
		out = append(out, strconv.Itoa(y))
	}
	for y := range 100 {
		if y < 10 {
			out = append(out, "0"+strconv.Itoa(y))
			continue
		}
		out = append(out, strconv.Itoa(y))
	}
	return out
}

// shortYear drops the first two digits of year: 2024 becomes "24".
func shortYear(year int) string {
	s := strconv.Itoa(year)
	if len(s) <= 2 {
		return ""
	}
	return s[2:]
}
