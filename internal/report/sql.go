package report

import (
	_ "embed"
	"strings"
	"text/template"

	"github.com/carpenike/qrmenu/internal/catalog"
	"github.com/pkg/errors"
)

//go:embed sample.sql.tmpl
var sampleSQLText string

var sampleSQLTemplate = template.Must(template.New("sample.sql").Funcs(template.FuncMap{
	"quote":   quoteLiteral,
	"sqlbool": boolLiteral,
}).Parse(sampleSQLText))

// sampleSQLData is the subset of the catalog the SQL block references.
// Only the first dish and first table are spelled out as examples.
type sampleSQLData struct {
	Restaurant catalog.Restaurant
	Outlet     catalog.Outlet
	Categories []catalog.Category
	Dish       catalog.Dish
	DishOrder  int
	Table      catalog.Table
	DeepLink   string
}

// SampleSQL renders the example INSERT statements for c: one statement
// each for restaurants, outlets, categories, dishes and tables. The
// statements are meant to be pasted into a SQL editor and are never run.
func SampleSQL(c *catalog.Catalog) (string, error) {
	if len(c.Restaurants) == 0 || len(c.Outlets) == 0 || len(c.Dishes) == 0 || len(c.Tables) == 0 {
		return "", errors.New("report: sample sql needs a restaurant, outlet, dish and table")
	}

	data := sampleSQLData{
		Restaurant: c.Restaurants[0],
		Outlet:     c.Outlets[0],
		Categories: c.Categories,
		Dish:       c.Dishes[0],
		DishOrder:  c.DisplayOrder(c.Dishes[0]),
		Table:      c.Tables[0],
		DeepLink:   c.Tables[0].DeepLink(c.Outlets[0].Slug),
	}

	var b strings.Builder
	if err := sampleSQLTemplate.Execute(&b, data); err != nil {
		return "", errors.Wrap(err, "report: render sample sql")
	}
	return b.String(), nil
}

// quoteLiteral returns s as a single-quoted SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func boolLiteral(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}
