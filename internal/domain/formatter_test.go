package domain

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderJSONSingle(t *testing.T) {
	f := Formatter{}
	out := f.Render(Single("ticket", Ticket{ID: 42, Subject: "Hello", Status: "open", Channel: "email"}), FormatJSON)

	assert.Contains(t, out, `"id": 42`)
	assert.Contains(t, out, `"subject": "Hello"`)
}

func TestRenderJSONPaginated(t *testing.T) {
	f := Formatter{}
	page := Page[Ticket]{
		Items:      []Ticket{{ID: 1, Status: "open", Channel: "email"}},
		NextCursor: "abc",
	}
	out := f.Render(PageResult("ticket", page), FormatJSON)

	assert.Contains(t, out, `"items"`)
	assert.Contains(t, out, `"nextCursor": "abc"`)

	empty := f.Render(PageResult("ticket", Page[Ticket]{Items: []Ticket{}}), FormatJSON)
	assert.Contains(t, empty, `"items": []`)
	assert.NotContains(t, empty, "nextCursor", "exhausted pages carry no cursor")
}

func TestRenderTableRows(t *testing.T) {
	f := Formatter{}
	page := Page[Ticket]{Items: []Ticket{
		{ID: 1, Subject: "Refund request", Status: "open", Priority: "high", Channel: "email", CreatedDatetime: "2024-03-05T10:00:00Z"},
		{ID: 2, Subject: "Login issue", Status: "closed", Channel: "chat"},
	}}
	out := f.Render(PageResult("ticket", page), FormatTable)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "| id | subject | status | priority | channel | createdDatetime |", lines[0])
	assert.Contains(t, lines[1], "---")
	assert.Contains(t, out, "| Refund request |")
	assert.Contains(t, out, "| 2024-03-05 |", "timestamps render date-only in tables")
	assert.NotContains(t, out, "10:00:00")
}

func TestRenderTableTruncatesCells(t *testing.T) {
	f := Formatter{}
	long := strings.Repeat("x", 200)
	out := f.Render(PageResult("ticket", Page[Ticket]{Items: []Ticket{{ID: 1, Subject: long, Status: "open", Channel: "email"}}}), FormatTable)

	assert.Contains(t, out, strings.Repeat("x", 60)+"…")
	assert.NotContains(t, out, strings.Repeat("x", 61))
}

// Truncation cuts on rune boundaries so multi-byte text never renders as
// invalid UTF-8.
func TestRenderTruncationKeepsValidUTF8(t *testing.T) {
	f := Formatter{}
	subject := "a" + strings.Repeat("é", 40)
	out := f.Render(PageResult("ticket", Page[Ticket]{Items: []Ticket{
		{ID: 1, Subject: subject, Status: "open", Channel: "email"},
	}}), FormatTable)

	assert.True(t, utf8.ValidString(out), "truncated cell split a rune")
	assert.Contains(t, out, "…")

	limited := Formatter{CharLimit: 30}
	out = limited.Render(Single("ticket", Ticket{ID: 1, Subject: strings.Repeat("é", 100), Status: "open", Channel: "email"}), FormatJSON)
	assert.True(t, utf8.ValidString(out), "char-limit cut split a rune")
	assert.True(t, strings.HasSuffix(out, "… (response truncated)"))
}

func TestRenderTableEmptyAndCursor(t *testing.T) {
	f := Formatter{}

	out := f.Render(PageResult("ticket", Page[Ticket]{}), FormatTable)
	assert.Equal(t, "No results.\n", out)

	out = f.Render(PageResult("ticket", Page[Ticket]{
		Items:      []Ticket{{ID: 1, Status: "open", Channel: "email"}},
		NextCursor: "cur-2",
	}), FormatTable)
	assert.Contains(t, out, "Next cursor: cur-2")
}

func TestRenderDetailNestedFields(t *testing.T) {
	f := Formatter{}
	ticket := Ticket{
		ID:      42,
		Subject: "Hello",
		Status:  "open",
		Channel: "email",
		Tags:    []Tag{{ID: 1, Name: "vip"}},
	}
	out := f.Render(Single("ticket", ticket), FormatTable)

	assert.Contains(t, out, "id: 42")
	assert.Contains(t, out, "subject: Hello")
	assert.Contains(t, out, "```json", "nested values go into a fenced block")
	assert.Contains(t, out, `"name": "vip"`)
}

func TestRenderFallbackColumns(t *testing.T) {
	f := Formatter{}
	items := []any{map[string]any{"id": 1, "alpha": "a", "beta": "b", "gamma": "c", "delta": "d", "epsilon": "e", "zeta": "f"}}
	out := f.Render(List("unknown-kind", items), FormatTable)

	header := strings.SplitN(out, "\n", 2)[0]
	cols := strings.Count(header, "|") - 1
	assert.LessOrEqual(t, cols, 5, "fallback column set is capped")
	assert.True(t, strings.HasPrefix(header, "| id |"), "id leads when present")
}

func TestRenderCharLimit(t *testing.T) {
	f := Formatter{CharLimit: 40}
	out := f.Render(Single("ticket", Ticket{ID: 1, Subject: strings.Repeat("a", 500), Status: "open", Channel: "email"}), FormatJSON)

	assert.LessOrEqual(t, len(out), 40+len("\n… (response truncated)"))
	assert.True(t, strings.HasSuffix(out, "… (response truncated)"))
}

func TestRenderEscapesTableBreakers(t *testing.T) {
	f := Formatter{}
	out := f.Render(PageResult("ticket", Page[Ticket]{Items: []Ticket{
		{ID: 1, Subject: "line one\nline two | with pipe", Status: "open", Channel: "email"},
	}}), FormatTable)

	assert.Contains(t, out, "line one line two \\| with pipe")
}

// Rendering is pure: the same result and format must produce byte-identical
// output on every call.
func TestRenderIdempotence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("repeat renders are byte-identical", prop.ForAll(
		func(id int64, subject, cursor string, table bool) bool {
			f := Formatter{CharLimit: 500}
			r := Paginated("ticket", []any{Ticket{ID: id, Subject: subject, Status: "open", Channel: "email"}}, cursor)
			format := FormatJSON
			if table {
				format = FormatTable
			}
			return f.Render(r, format) == f.Render(r, format)
		},
		gen.Int64(), gen.AnyString(), gen.AlphaString(), gen.Bool(),
	))

	properties.TestingRun(t)
}
