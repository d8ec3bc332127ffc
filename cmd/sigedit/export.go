package main

import (
	"fmt"

	"github.com/fwojciec/sigedit"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	html, err := readHTML(deps, c.File)
	if err != nil {
		return fail(deps, err)
	}

	export, err := sigedit.Export(html, c.Format, deps.Now())
	if err != nil {
		return fail(deps, err)
	}

	path, err := deps.NewExportWriter(c.Dir).WriteExport(deps.Ctx, export)
	if err != nil {
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Exported %s\n", path)
	return nil
}

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	html, err := readHTML(deps, c.File)
	if err != nil {
		return fail(deps, err)
	}

	md, err := deps.Previewer.Preview(html)
	if err != nil {
		return fail(deps, err)
	}

	fmt.Fprint(deps.Stdout, md)
	return nil
}
