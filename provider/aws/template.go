package aws

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/gobuffalo/packr"

	"github.com/sullis/aws-crt-s3-benchmarks/pkg/templater"
)

var templates = templater.New(packr.NewBox("./formation"), formationHelpers())

func formationHelpers() template.FuncMap {
	return template.FuncMap{
		"join": func(ss []string, j string) string {
			return strings.Join(ss, j)
		},
		"safe": func(s string) template.HTML {
			return template.HTML(fmt.Sprintf("%q", s))
		},
		"upper": func(s string) string {
			return upperName(s)
		},
	}
}

func formationTemplate(name string, data interface{}) ([]byte, error) {
	buf, err := templates.Render(fmt.Sprintf("%s.json.tmpl", name), data)
	if err != nil {
		return nil, err
	}

	var v interface{}

	if err := json.Unmarshal(buf, &v); err != nil {
		switch t := err.(type) {
		case *json.SyntaxError:
			return nil, jsonSyntaxError(t, buf)
		}
		return nil, err
	}

	return json.MarshalIndent(v, "", "  ")
}

func jsonSyntaxError(err *json.SyntaxError, data []byte) error {
	start := bytes.LastIndex(data[:err.Offset], []byte("\n")) + 1
	line := bytes.Count(data[:start], []byte("\n"))
	pos := int(err.Offset) - start - 1
	ltext := strings.Split(string(data), "\n")[line]

	return fmt.Errorf("json syntax error: line %d pos %d: %s: %s", line, pos, err.Error(), ltext)
}
