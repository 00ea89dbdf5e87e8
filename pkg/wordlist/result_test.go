package wordlist_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/profiler/pkg/wordlist"
)

func bobResult(t *testing.T) *wordlist.Result {
	t.Helper()
	req := wordlist.Request{FirstName: "Bob", MinLen: 3, MaxLen: 3}
	return wordlist.New(wordlist.WithClock(fixedYear(2024))).Generate(req)
}

func TestResult_Preview(t *testing.T) {
	t.Parallel()

	res := bobResult(t)
	require.Equal(t, 6, res.Len())

	assert.Equal(t, []string{"Bob", "bob"}, res.Preview(2))
	assert.Equal(t, res.Words(), res.Preview(wordlist.PreviewSize))
	assert.Empty(t, res.Preview(0))

	preview := res.Preview(1)
	preview[0] = "changed"
	assert.Equal(t, "Bob", res.Words()[0], "preview is a copy")
}

func TestResult_Text(t *testing.T) {
	t.Parallel()

	res := bobResult(t)
	assert.Equal(t, "Bob\nbob\nBOB\nboB\nbOb\nBoB", res.Text())

	var buf bytes.Buffer
	n, err := res.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, res.Text(), buf.String())
	assert.Equal(t, int64(buf.Len()), n)
}

func TestResult_All(t *testing.T) {
	t.Parallel()

	res := bobResult(t)

	var got []string
	for w := range res.All() {
		got = append(got, w)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"Bob", "bob"}, got)
}

func TestResult_Empty(t *testing.T) {
	t.Parallel()

	res := wordlist.Generate(wordlist.Request{})
	assert.Equal(t, 0, res.Len())
	assert.Equal(t, "", res.Text())
	assert.Empty(t, res.Preview(wordlist.PreviewSize))

	var buf bytes.Buffer
	n, err := res.WriteTo(&buf)
	require.NoError(t, err)
	assert.Zero(t, n)
}
