// Package script renders the bash batch script handed to sbatch.
package script

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"

	"github.com/ihn-hpc/ihn-hpc-sbatch/internal/container"
	"github.com/ihn-hpc/ihn-hpc-sbatch/internal/job"
)

// ArrayTaskRef expands to the current task's argument on the compute node.
const ArrayTaskRef = `"${INPUT[$SLURM_ARRAY_TASK_ID]}"`

// TemplateText is the batch script. Each option line ends in a backslash
// continuation; the image and its arguments close the srun line.
const TemplateText = `#!/bin/bash
set -u
export TMPDIR={{ .ScratchDir }}
{{- if .Tasks }}
export REGISTRY_AUTH_FILE={{ .Run.AuthFile }}
INPUT=(
{{ join "\n" .Tasks }}
)
{{- end }}
srun --ntasks=1 {{ .Runtime }} run --rm \
{{- range .Run.OptionLines }}
    {{ . }} \
{{- end }}
    {{ .Run.Image }}{{ with .Trailing }} {{ . }}{{ end }}
`

// Template is the parsed TemplateText.
var Template = template.Must(ParseTemplate(TemplateText))

// ParseTemplate returns a text/template with the sprig function map and
// strict missing-key handling.
func ParseTemplate(text string) (*template.Template, error) {
	return template.New("sbatch").
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(text)
}

// Job is everything needed to render one batch script.
type Job struct {
	// ScratchDir is exported as TMPDIR
	ScratchDir string

	// Run is the podman run line
	Run container.RunConfig

	// Args are appended after the image in single-job mode
	Args []string

	// Tasks switches to array mode: one argument per array index
	Tasks job.TaskArgs
}

// IsArray reports whether the job is submitted as a Slurm job array.
func (j Job) IsArray() bool {
	return len(j.Tasks) > 0
}

type templateData struct {
	Job
	Runtime  string
	Trailing string
}

// Render executes t for j.
func Render(t *template.Template, j Job) (string, error) {
	data := templateData{Job: j, Runtime: container.Runtime}
	if j.IsArray() {
		data.Trailing = ArrayTaskRef
	} else {
		data.Trailing = strings.Join(j.Args, " ")
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to apply data to the batch script template: %w", err)
	}
	return buf.String(), nil
}

// RenderDefault renders j with Template.
func RenderDefault(j Job) (string, error) {
	return Render(Template, j)
}
