package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"csheet/callsheet"
	"csheet/common"
	"csheet/config"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context    string
	ID         string
	Title      string
	Project    string
	Client     string
	Date       string
	Day        int
	TotalDays  int
	Format     string
	SourceFile string
}

func expandTemplate(doc *callsheet.Document, src string, name config.TemplateFieldName, field string, format common.OutputFmt) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:    string(name),
		ID:         doc.ID,
		Title:      doc.Title,
		Project:    doc.Project.Name,
		Client:     doc.Project.Client,
		Date:       doc.Day.Date,
		Day:        doc.Day.DayNumber,
		TotalDays:  doc.Day.TotalDays,
		Format:     format.String(),
		SourceFile: strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
