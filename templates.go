package main

import (
	"embed"
	"fmt"
	"html/template"
	"net/url"

	"github.com/kjcma/portfolio/internal/portfolio"
)

//go:embed templates/*.html
var templateFS embed.FS

type sectionHeading struct {
	Number string
	Title  string
}

var templateFuncs = template.FuncMap{
	"sectionHeader": func(n int, title string) sectionHeading {
		return sectionHeading{Number: fmt.Sprintf("%02d", n), Title: title}
	},
	"tabHref": tabHref,
}

// tabHref links to route with tab selected. The all tab gets the bare route
// so the default view has one canonical URL.
func tabHref(route string, tab portfolio.Tab) string {
	if tab == portfolio.TabAll {
		return route
	}
	return route + "?tab=" + url.QueryEscape(string(tab))
}

func loadTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
}
