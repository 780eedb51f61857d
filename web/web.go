// Package web embeds the HTML templates and the offline shell served by the kasir pages.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed static
var static embed.FS

var printer = message.NewPrinter(language.Indonesian)

// Funcs are available to every template
var Funcs = template.FuncMap{
	"rupiah":   Rupiah,
	"number":   Number,
	"datetime": func(t time.Time) string { return t.Format("02-01-2006 15:04:05") },
	"clock":    func(t time.Time) string { return t.Format("15:04:05") },
	"upper":    strings.ToUpper,
}

// Templates parses every page template
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(templates, "templates/*.html")
}

// Static holds the service worker and page scripts, rooted at static/
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err) // the directory is embedded above
	}
	return sub
}

// Number groups thousands the Indonesian way, e.g. 15.000
func Number(v float64) string {
	return printer.Sprintf("%d", int64(math.Round(v)))
}

// Rupiah formats an amount of money, e.g. Rp 15.000
func Rupiah(v float64) string {
	return "Rp " + Number(v)
}
