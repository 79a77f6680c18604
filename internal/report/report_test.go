package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/carpenike/qrmenu/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c *catalog.Catalog) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, New(&buf).Write(c))
	return buf.String()
}

// sectionLines returns the lines of the section starting at title, up to the
// next blank line, skipping the title and divider.
func sectionLines(t *testing.T, out, title string) []string {
	t.Helper()

	start := strings.Index(out, title+"\n"+divider+"\n")
	require.GreaterOrEqual(t, start, 0, "section %q not found", title)

	rest := out[start+len(title)+len(divider)+2:]
	if end := strings.Index(rest, "\n\n"); end >= 0 {
		rest = rest[:end+1]
	}
	return strings.Split(strings.TrimSuffix(rest, "\n"), "\n")
}

func TestWrite_MatchesGolden(t *testing.T) {
	want, err := os.ReadFile("testdata/report.golden")
	require.NoError(t, err)

	assert.Equal(t, string(want), render(t, catalog.Default()))
}

func TestWrite_Deterministic(t *testing.T) {
	first := render(t, catalog.Default())
	second := render(t, catalog.Default())

	assert.Equal(t, first, second)
}

func TestWrite_SummaryLineCounts(t *testing.T) {
	c := catalog.Default()
	out := render(t, c)

	tests := []struct {
		title string
		want  int
	}{
		{"3️⃣  CATEGORIES", len(c.Categories)},
		{"4️⃣  DISHES", len(c.Dishes)},
		{"5️⃣  TABLES", len(c.Tables)},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			lines := sectionLines(t, out, tt.title)
			assert.Len(t, lines, tt.want)
			for _, line := range lines {
				assert.True(t, strings.HasPrefix(line, "  - "), "line %q", line)
			}
		})
	}
}

func TestWrite_DishLinesContainNameAndPrice(t *testing.T) {
	c := catalog.Default()
	lines := sectionLines(t, render(t, c), "4️⃣  DISHES")
	require.Len(t, lines, len(c.Dishes))

	for i, d := range c.Dishes {
		assert.Contains(t, lines[i], d.Name)
		assert.Contains(t, lines[i], strconv.Itoa(d.Price))
	}
}

func TestRestaurants_JSONRoundTrip(t *testing.T) {
	c := catalog.Default()

	var buf bytes.Buffer
	require.NoError(t, New(&buf).Restaurants(c))

	_, body, found := strings.Cut(buf.String(), divider+"\n")
	require.True(t, found)

	var got []catalog.Restaurant
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, c.Restaurants, got)
}

func TestOutlets_JSONRoundTrip(t *testing.T) {
	c := catalog.Default()

	var buf bytes.Buffer
	require.NoError(t, New(&buf).Outlets(c))

	_, body, found := strings.Cut(buf.String(), divider+"\n")
	require.True(t, found)

	var got []catalog.Outlet
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, c.Outlets, got)
}

func TestRestaurants_NoHTMLEscaping(t *testing.T) {
	c := &catalog.Catalog{Restaurants: []catalog.Restaurant{{Name: "Curry & Co <Delhi>"}}}

	var buf bytes.Buffer
	require.NoError(t, New(&buf).Restaurants(c))

	assert.Contains(t, buf.String(), `"name": "Curry & Co <Delhi>"`)
}

func TestNextSteps_UsesOutletMenuPath(t *testing.T) {
	c := catalog.Default()
	c.Outlets[0].Slug = "bistro-annex"

	var buf bytes.Buffer
	require.NoError(t, New(&buf).NextSteps(c))

	assert.Contains(t, buf.String(), "4. ✅ Test public menu at /m/bistro-annex\n")
}

// failWriter accepts limit bytes and then fails every write.
type failWriter struct {
	limit   int
	written int
}

var errClosed = errors.New("stdout closed")

func (w *failWriter) Write(p []byte) (int, error) {
	if w.written+len(p) > w.limit {
		return 0, errClosed
	}
	w.written += len(p)
	return len(p), nil
}

func TestWrite_PropagatesWriteError(t *testing.T) {
	t.Run("first section", func(t *testing.T) {
		err := New(&failWriter{}).Write(catalog.Default())
		require.Error(t, err)
		assert.ErrorIs(t, err, errClosed)
		assert.Contains(t, err.Error(), "report: write banner")
	})

	t.Run("later section", func(t *testing.T) {
		var banner bytes.Buffer
		require.NoError(t, New(&banner).Banner(nil))

		err := New(&failWriter{limit: banner.Len()}).Write(catalog.Default())
		require.Error(t, err)
		assert.ErrorIs(t, err, errClosed)
		assert.Contains(t, err.Error(), "report: write restaurants")
	})
}
