package wordlist

import (
	"strings"

	"github.com/dmitrymomot/profiler/pkg/sanitizer"
)

// Default length window applied by NewRequest.
const (
	DefaultMinLen = 6
	DefaultMaxLen = 20
)

// UnknownTarget labels requests that carry neither a first name nor a company.
const UnknownTarget = "Unknown Target"

// Request holds the facts a wordlist is derived from. Every fact is
// optional; SiblingNames, SiblingDOBs and Keywords are comma separated lists.
// MinLen and MaxLen bound the rune length of every generated word. They are
// not validated here: a window no word can fit simply yields an empty result.
type Request struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	DOB           string `json:"dob"`
	PetName       string `json:"petName"`
	PartnerName   string `json:"partnerName"`
	PartnerDOB    string `json:"partnerDob"`
	FatherName    string `json:"fatherName"`
	FatherDOB     string `json:"fatherDob"`
	MotherName    string `json:"motherName"`
	MotherDOB     string `json:"motherDob"`
	SiblingNames  string `json:"siblingNames"`
	SiblingDOBs   string `json:"siblingDobs"`
	Company       string `json:"company"`
	FavHobby      string `json:"favHobby"`
	FavPerson     string `json:"favPerson"`
	FavInfluencer string `json:"favInfluencer"`
	Keywords      string `json:"keywords"`

	UseLeet bool `json:"useLeet"`
	MinLen  int  `json:"minLen"`
	MaxLen  int  `json:"maxLen"`
}

// NewRequest returns an empty request with the default length window.
func NewRequest() Request {
	return Request{MinLen: DefaultMinLen, MaxLen: DefaultMaxLen}
}

// Seeds returns the trimmed, non-empty seed words in extraction order:
// single-value facts first, then the elements of the list facts.
// Duplicates are kept.
func (r Request) Seeds() []string {
	seeds := sanitizer.Apply([]string{
		r.FirstName, r.LastName, r.DOB, r.PetName,
		r.PartnerName, r.PartnerDOB,
		r.FatherName, r.FatherDOB,
		r.MotherName, r.MotherDOB,
		r.Company, r.FavHobby, r.FavPerson, r.FavInfluencer,
	}, sanitizer.TrimStringSlice, sanitizer.FilterEmpty)

	for _, list := range []string{r.SiblingNames, r.SiblingDOBs, r.Keywords} {
		seeds = append(seeds, splitList(list)...)
	}
	return seeds
}

// TargetName picks the label a request is recorded under.
func (r Request) TargetName() string {
	if name := strings.TrimSpace(r.FirstName); name != "" {
		return name
	}
	if company := strings.TrimSpace(r.Company); company != "" {
		return company
	}
	return UnknownTarget
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return sanitizer.Apply(strings.Split(s, ","), sanitizer.TrimStringSlice, sanitizer.FilterEmpty)
}
