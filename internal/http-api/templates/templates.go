// Package templates holds the server-rendered pages, embedded in the binary.
package templates

import (
	"embed"
	"html/template"
	"strconv"
	"time"
)

//go:embed *.tmpl
var files embed.FS

// Funcs are the helpers available to every page.
var Funcs = template.FuncMap{
	"decimal":       formatDecimal,
	"datetime":      formatDateTime,
	"date":          formatDate,
	"inputDateTime": func(t time.Time) string { return t.UTC().Format("2006-01-02T15:04") },
	"yesno":         yesNo,
	"nextOrder":     nextOrder,
	"sortMark":      sortMark,
}

// Load parses every embedded page. Pages are addressed by the name in their
// {{define}}, e.g. "rocket_list.html".
func Load() (*template.Template, error) {
	return template.New("pages").Funcs(Funcs).ParseFS(files, "*.tmpl")
}

func formatDecimal(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func formatDateTime(t time.Time) string {
	return t.UTC().Format("02.01.2006 15:04")
}

func formatDate(t time.Time) string {
	return t.UTC().Format("02.01.2006")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// nextOrder is the direction a column header link should request: clicking
// the current ascending column flips it, everything else starts ascending.
func nextOrder(field, currentSort, currentOrder string) string {
	if field == currentSort && currentOrder == "asc" {
		return "desc"
	}
	return "asc"
}

func sortMark(field, currentSort, currentOrder string) string {
	if field != currentSort {
		return ""
	}
	if currentOrder == "desc" {
		return "▼"
	}
	return "▲"
}
