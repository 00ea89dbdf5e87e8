package wordlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/profiler/pkg/wordlist"
)

func TestNewRequest(t *testing.T) {
	t.Parallel()

	req := wordlist.NewRequest()
	assert.Equal(t, wordlist.DefaultMinLen, req.MinLen)
	assert.Equal(t, wordlist.DefaultMaxLen, req.MaxLen)
	assert.False(t, req.UseLeet)
	assert.Empty(t, req.Seeds())
}

func TestRequest_Seeds(t *testing.T) {
	t.Parallel()

	req := wordlist.Request{
		FirstName:     " Alice ",
		LastName:      "",
		DOB:           "1990",
		PetName:       "   ",
		PartnerName:   "Bob",
		FatherDOB:     "1960",
		Company:       "Acme",
		FavInfluencer: "Zed",
		SiblingNames:  "Carol, ,Dave,",
		SiblingDOBs:   "1992",
		Keywords:      " chess ,jazz, Alice",
	}

	assert.Equal(t, []string{
		"Alice", "1990", "Bob", "1960", "Acme", "Zed",
		"Carol", "Dave", "1992",
		"chess", "jazz", "Alice",
	}, req.Seeds())
}

func TestRequest_TargetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  wordlist.Request
		want string
	}{
		{"first name wins", wordlist.Request{FirstName: "Alice", Company: "Acme"}, "Alice"},
		{"company fallback", wordlist.Request{FirstName: "  ", Company: " Acme "}, "Acme"},
		{"unknown", wordlist.Request{LastName: "Smith"}, wordlist.UnknownTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.req.TargetName())
		})
	}
}
