package web

import (
	"embed"
	"fmt"
	"html/template"
	"math"
	"strconv"
	"time"

	"github.com/unrolled/render"
)

//go:embed templates
var templates embed.FS

// NewRender compiles the embedded view templates.
func NewRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"money":    moneyFormatter,
				"salary":   salaryFormatter,
				"pct":      percentFormatter,
				"rating":   ratingFormatter,
				"date":     dateFormatter,
				"longDate": longDateFormatter,
				"year":     yearFormatter,
				"add":      func(a, b int) int { return a + b },
			},
		},
	})
}

// moneyFormatter prints a value in millions the way scouts write it: €45.5M, €80M.
func moneyFormatter(millions float64) string {
	return "€" + strconv.FormatFloat(millions, 'f', -1, 64) + "M"
}

func salaryFormatter(thousands int) string {
	return fmt.Sprintf("€%dk", thousands)
}

func percentFormatter(v float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(v)))
}

func ratingFormatter(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func dateFormatter(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	return t.Format("2006-01-02")
}

func longDateFormatter(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	return t.Format("Monday, January 2, 2006")
}

func yearFormatter(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	return t.Format("2006")
}
