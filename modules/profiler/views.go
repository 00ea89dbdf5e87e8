package profiler

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/profiler/handler"
)

// Element ids patched by DataStar responses.
const (
	ResultTarget  = "#result"
	HistoryTarget = "#history"
	ToastTarget   = "#toast-container"
)

// Views renders the HTML surface. Every component is replaceable.
type Views struct {
	Page        func(PageParams) templ.Component
	ResultPanel func(ResultParams) templ.Component
	History     func([]Record) templ.Component
	ErrorPage   func(handler.ErrorPageParams) templ.Component
	ErrorToast  func(handler.ErrorToastParams) templ.Component
}

// PageParams contains data for rendering the form page.
type PageParams struct {
	Form    GenerateRequest
	Result  *ResultParams
	History []Record
}

// ResultParams contains data for rendering the result panel.
type ResultParams struct {
	Form       GenerateRequest
	TargetName string
	Count      int
	Preview    []string
}

// DefaultViews returns the components compiled from views.templ.
func DefaultViews() *Views {
	return &Views{
		Page:        pageView,
		ResultPanel: resultView,
		History:     historyView,
		ErrorPage:   errorPageView,
		ErrorToast:  errorToastView,
	}
}

func (v *Views) withDefaults() *Views {
	d := DefaultViews()
	if v == nil {
		return d
	}
	out := *v
	if out.Page == nil {
		out.Page = d.Page
	}
	if out.ResultPanel == nil {
		out.ResultPanel = d.ResultPanel
	}
	if out.History == nil {
		out.History = d.History
	}
	if out.ErrorPage == nil {
		out.ErrorPage = d.ErrorPage
	}
	if out.ErrorToast == nil {
		out.ErrorToast = d.ErrorToast
	}
	return &out
}

type formField struct {
	name  string
	label string
	value func(GenerateRequest) string
}

var formFields = []formField{
	{"firstName", "First name", func(g GenerateRequest) string { return g.FirstName }},
	{"lastName", "Last name", func(g GenerateRequest) string { return g.LastName }},
	{"dob", "Date of birth", func(g GenerateRequest) string { return g.DOB }},
	{"petName", "Pet name", func(g GenerateRequest) string { return g.PetName }},
	{"partnerName", "Partner name", func(g GenerateRequest) string { return g.PartnerName }},
	{"partnerDob", "Partner date of birth", func(g GenerateRequest) string { return g.PartnerDOB }},
	{"fatherName", "Father name", func(g GenerateRequest) string { return g.FatherName }},
	{"fatherDob", "Father date of birth", func(g GenerateRequest) string { return g.FatherDOB }},
	{"motherName", "Mother name", func(g GenerateRequest) string { return g.MotherName }},
	{"motherDob", "Mother date of birth", func(g GenerateRequest) string { return g.MotherDOB }},
	{"siblingNames", "Sibling names (comma separated)", func(g GenerateRequest) string { return g.SiblingNames }},
	{"siblingDobs", "Sibling dates of birth (comma separated)", func(g GenerateRequest) string { return g.SiblingDOBs }},
	{"company", "Company", func(g GenerateRequest) string { return g.Company }},
	{"favHobby", "Favourite hobby", func(g GenerateRequest) string { return g.FavHobby }},
	{"favPerson", "Favourite person", func(g GenerateRequest) string { return g.FavPerson }},
	{"favInfluencer", "Favourite influencer", func(g GenerateRequest) string { return g.FavInfluencer }},
	{"keywords", "Keywords (comma separated)", func(g GenerateRequest) string { return g.Keywords }},
}

func lengthValue(l Length, def int) string {
	if l == "" {
		return strconv.Itoa(def)
	}
	return string(l)
}
