package profiler

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/dmitrymomot/profiler/handler"
	"github.com/dmitrymomot/profiler/pkg/validator"
	"github.com/dmitrymomot/profiler/pkg/wordlist"
)

// Length is a length bound as submitted by a client. JSON accepts a
// number, a numeric string or null; form values bind as text. Values that
// are not whole numbers are reported by GenerateRequest.Wordlist.
type Length string

func (l *Length) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*l = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = Length(s)
	default:
		// Numbers are kept verbatim; anything else fails validation later.
		*l = Length(data)
	}
	return nil
}

// Int returns the bound, or def when it was not submitted.
func (l Length) Int(def int) (int, error) {
	s := strings.TrimSpace(string(l))
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

// GenerateRequest is the body of a generation request.
type GenerateRequest struct {
	FirstName     string `json:"firstName" form:"firstName"`
	LastName      string `json:"lastName" form:"lastName"`
	DOB           string `json:"dob" form:"dob"`
	PetName       string `json:"petName" form:"petName"`
	PartnerName   string `json:"partnerName" form:"partnerName"`
	PartnerDOB    string `json:"partnerDob" form:"partnerDob"`
	FatherName    string `json:"fatherName" form:"fatherName"`
	FatherDOB     string `json:"fatherDob" form:"fatherDob"`
	MotherName    string `json:"motherName" form:"motherName"`
	MotherDOB     string `json:"motherDob" form:"motherDob"`
	SiblingNames  string `json:"siblingNames" form:"siblingNames"`
	SiblingDOBs   string `json:"siblingDobs" form:"siblingDobs"`
	Company       string `json:"company" form:"company"`
	FavHobby      string `json:"favHobby" form:"favHobby"`
	FavPerson     string `json:"favPerson" form:"favPerson"`
	FavInfluencer string `json:"favInfluencer" form:"favInfluencer"`
	Keywords      string `json:"keywords" form:"keywords"`

	UseLeet bool   `json:"useLeet" form:"useLeet"`
	MinLen  Length `json:"minLen" form:"minLen"`
	MaxLen  Length `json:"maxLen" form:"maxLen"`
}

// Wordlist validates the request against cfg and converts it. Failures
// are returned as handler.ValidationError.
func (g GenerateRequest) Wordlist(cfg Config) (wordlist.Request, error) {
	req := wordlist.Request{
		FirstName:     g.FirstName,
		LastName:      g.LastName,
		DOB:           g.DOB,
		PetName:       g.PetName,
		PartnerName:   g.PartnerName,
		PartnerDOB:    g.PartnerDOB,
		FatherName:    g.FatherName,
		FatherDOB:     g.FatherDOB,
		MotherName:    g.MotherName,
		MotherDOB:     g.MotherDOB,
		SiblingNames:  g.SiblingNames,
		SiblingDOBs:   g.SiblingDOBs,
		Company:       g.Company,
		FavHobby:      g.FavHobby,
		FavPerson:     g.FavPerson,
		FavInfluencer: g.FavInfluencer,
		Keywords:      g.Keywords,
		UseLeet:       g.UseLeet,
	}

	if err := validator.Apply(
		validator.Integer("minLen", string(g.MinLen)),
		validator.Integer("maxLen", string(g.MaxLen)),
	); err != nil {
		return wordlist.Request{}, toHandlerValidation(err)
	}

	// Both parse: Integer accepted them.
	req.MinLen, _ = g.MinLen.Int(wordlist.DefaultMinLen)
	req.MaxLen, _ = g.MaxLen.Int(wordlist.DefaultMaxLen)

	if err := validator.Apply(
		validator.MinNum("minLen", req.MinLen, 0),
		validator.MinNum("maxLen", req.MaxLen, 0),
		validator.MaxNum("maxLen", req.MaxLen, cfg.MaxLenLimit),
		validator.NotGreaterThanField("minLen", req.MinLen, "maxLen", req.MaxLen),
		validator.MaxLenSlice("seeds", req.Seeds(), cfg.MaxSeedWords),
	); err != nil {
		return wordlist.Request{}, toHandlerValidation(err)
	}
	return req, nil
}

func toHandlerValidation(err error) error {
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		return err
	}
	out := handler.NewValidationError()
	for _, e := range verrs {
		out.Add(e.Field, e.Message)
	}
	return out
}

// HistoryRequest selects how many history records to return.
type HistoryRequest struct {
	Limit int `query:"limit"`
}
