// Package report renders a seed catalog as a human-readable setup report:
// the records themselves, sample SQL to load them and the next steps for
// bringing a demo outlet online.
package report

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/carpenike/qrmenu/internal/catalog"
	"github.com/pkg/errors"
)

//go:embed banner.txt
var banner string

const (
	rule    = "============================================================"
	divider = "------------------------------------------------------------"
)

const setupSteps = `1. Go to Supabase Dashboard → SQL Editor
2. Create a new query
3. Run the SQL INSERT statements below
4. Or use Supabase Python client to insert
5. Verify data in Table Editor
`

// Reporter writes report sections to an underlying writer.
type Reporter struct {
	w io.Writer
}

// New returns a Reporter that writes to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Write renders the full report for c, section by section. It stops at the
// first write error.
func (r *Reporter) Write(c *catalog.Catalog) error {
	sections := []func(*catalog.Catalog) error{
		r.Banner,
		r.Restaurants,
		r.Outlets,
		r.Categories,
		r.Dishes,
		r.Tables,
		r.Instructions,
		r.NextSteps,
		r.DemoLogin,
	}
	for _, section := range sections {
		if err := section(c); err != nil {
			return err
		}
	}
	return nil
}

// Banner writes the report header.
func (r *Reporter) Banner(_ *catalog.Catalog) error {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(banner)
	b.WriteString("\n")
	b.WriteString("\n📝 SEED DATA TO INSERT:\n\n")
	return r.flush("banner", &b)
}

// Restaurants writes the restaurant list as indented JSON.
func (r *Reporter) Restaurants(c *catalog.Catalog) error {
	var b strings.Builder
	b.WriteString("1️⃣  RESTAURANTS\n")
	b.WriteString(divider + "\n")
	if err := writeJSON(&b, c.Restaurants); err != nil {
		return errors.Wrap(err, "report: encode restaurants")
	}
	return r.flush("restaurants", &b)
}

// Outlets writes the outlet list as indented JSON.
func (r *Reporter) Outlets(c *catalog.Catalog) error {
	var b strings.Builder
	heading(&b, "2️⃣  OUTLETS")
	if err := writeJSON(&b, c.Outlets); err != nil {
		return errors.Wrap(err, "report: encode outlets")
	}
	return r.flush("outlets", &b)
}

// Categories writes one line per category.
func (r *Reporter) Categories(c *catalog.Catalog) error {
	var b strings.Builder
	heading(&b, "3️⃣  CATEGORIES")
	for _, cat := range c.Categories {
		fmt.Fprintf(&b, "  - %s: %s\n", cat.Name, cat.Description)
	}
	return r.flush("categories", &b)
}

// Dishes writes one line per dish with its category and price.
func (r *Reporter) Dishes(c *catalog.Catalog) error {
	var b strings.Builder
	heading(&b, "4️⃣  DISHES")
	for _, d := range c.Dishes {
		fmt.Fprintf(&b, "  - %s (%s): ₹%d\n", d.Name, d.Category, d.Price)
	}
	return r.flush("dishes", &b)
}

// Tables writes one line per table with its seat count.
func (r *Reporter) Tables(c *catalog.Catalog) error {
	var b strings.Builder
	heading(&b, "5️⃣  TABLES")
	for _, t := range c.Tables {
		fmt.Fprintf(&b, "  - %s: %d seats\n", t.Number, t.Capacity)
	}
	return r.flush("tables", &b)
}

// Instructions writes the setup steps followed by the sample SQL block.
func (r *Reporter) Instructions(c *catalog.Catalog) error {
	sql, err := SampleSQL(c)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("\n" + rule + "\n")
	b.WriteString("\n✅ INSTRUCTIONS:\n")
	b.WriteString("\n")
	b.WriteString(setupSteps)
	b.WriteString("\nSAMPLE SQL (run one by one):\n\n")
	b.WriteString(sql)
	b.WriteString("\n\n")
	return r.flush("instructions", &b)
}

// NextSteps writes the post-import checklist.
func (r *Reporter) NextSteps(c *catalog.Catalog) error {
	menuPath := "/m/"
	if len(c.Outlets) > 0 {
		menuPath = c.Outlets[0].MenuPath()
	}

	var b strings.Builder
	b.WriteString("\n🎯 NEXT STEPS:\n")
	b.WriteString("\n")
	b.WriteString("1. ✅ Run the SQL INSERT statements\n")
	b.WriteString("2. ✅ Verify data in Supabase Table Editor\n")
	b.WriteString("3. ✅ Generate QR codes for tables\n")
	fmt.Fprintf(&b, "4. ✅ Test public menu at %s\n", menuPath)
	b.WriteString("5. ✅ Create a test order\n")
	b.WriteString("6. ✅ View in dashboard\n")
	b.WriteString("\n")
	return r.flush("next steps", &b)
}

// DemoLogin writes the closing banner and the demo account's login email.
func (r *Reporter) DemoLogin(c *catalog.Catalog) error {
	var b strings.Builder
	b.WriteString("\n" + rule + "\n")
	b.WriteString("\n✨ Demo data setup complete!\n")
	b.WriteString("\n📝 DEMO LOGIN:\n")
	if len(c.Restaurants) > 0 {
		fmt.Fprintf(&b, "  Email: %s\n", c.Restaurants[0].Email)
	}
	b.WriteString("  (Set password during first signup)\n")
	return r.flush("demo login", &b)
}

func (r *Reporter) flush(section string, b *strings.Builder) error {
	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return errors.Wrapf(err, "report: write %s", section)
	}
	return nil
}

// heading writes a numbered section title preceded by a blank line.
func heading(b *strings.Builder, title string) {
	b.WriteString("\n" + title + "\n")
	b.WriteString(divider + "\n")
}

// writeJSON encodes v with two-space indentation and a trailing newline.
// HTML escaping is off so "&" and "<" come out verbatim.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
