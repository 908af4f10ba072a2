package render

import (
	"html/template"
	"io"

	"github.com/kovetskiy/optmark/compose"
	"github.com/kovetskiy/optmark/options"
	"github.com/reconquest/karma-go"
)

// RefParam is the form field which carries selected option refs.
const RefParam = "ref"

type PageData struct {
	Title     string
	Source    string
	Sections  []options.Section
	Selection *compose.Selection
}

type pageView struct {
	PageData
	RefParam string
	Output   string
	Preview  template.HTML
}

// Page writes the selection form for the sections. Only non-default options
// get a checkbox, the default one is what's used when nothing is checked.
func Page(writer io.Writer, data PageData) error {
	if data.Title == "" {
		data.Title = "optmark"
	}

	output := compose.Text(data.Sections, data.Selection)

	preview, err := Preview(output)
	if err != nil {
		return err
	}

	tpl, err := template.New("page").Funcs(template.FuncMap{
		"ref": func(s, d, o int) string {
			return compose.Ref{Section: s, Dimension: d, Option: o}.String()
		},
		"checked": func(s, d, o int) bool {
			return data.Selection.IsSelected(compose.Ref{Section: s, Dimension: d, Option: o})
		},
		"slug": options.Slugify,
	}).Parse(pageTemplate)
	if err != nil {
		return karma.Format(err, "unable to parse page template")
	}

	err = tpl.Execute(writer, pageView{
		PageData: data,
		RefParam: RefParam,
		Output:   output,
		// goldmark escapes raw HTML unless WithUnsafe is set
		Preview: template.HTML(preview),
	})
	if err != nil {
		return karma.Format(err, "unable to execute page template")
	}

	return nil
}

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
<style>
body { font-family: sans-serif; max-width: 60em; margin: 1em auto; }
nav a { margin-right: 1em; }
fieldset.dimension { margin-bottom: 1em; }
label.option { display: block; }
textarea { width: 100%; min-height: 10em; }
</style>
</head>
<body>
<h1>{{ .Title }}</h1>
{{- if .Source }}
<p class="source"><a href="{{ .Source }}">source</a></p>
{{- end }}
<nav class="tabs">
{{- range $s, $section := .Sections }}
<a href="#section-{{ $s }}-{{ $section.Key }}">{{ $section.Title }}</a>
{{- end }}
</nav>
<form id="form" method="get" action="">
{{- range $s, $section := .Sections }}
<section class="tab" id="section-{{ $s }}-{{ $section.Key }}">
<h2>{{ $section.Title }}</h2>
{{- range $d, $dimension := $section.Dimensions }}
{{- if $dimension.Toggleable }}
<fieldset class="dimension" data-name="dim_{{ slug $dimension.Title }}_{{ $s }}_{{ $d }}">
<legend>{{ $dimension.Title }}</legend>
{{- range $o, $option := $dimension.Options }}
{{- if ne $o $dimension.DefaultIndex }}
<label class="option" for="opt-{{ ref $s $d $o }}"><input type="checkbox" name="{{ $.RefParam }}" id="opt-{{ ref $s $d $o }}" value="{{ ref $s $d $o }}"{{ if checked $s $d $o }} checked{{ end }}> <span>{{ $option.DisplayText }}</span></label>
{{- end }}
{{- end }}
</fieldset>
{{- end }}
{{- end }}
</section>
{{- end }}
<p><button type="submit">Update</button> <a href="?">Reset</a></p>
</form>
<textarea id="output" readonly>{{ .Output }}</textarea>
<div class="preview">{{ .Preview }}</div>
</body>
</html>
`
