package main

import (
	"fmt"

	"github.com/fwojciec/sigedit"
	"github.com/fwojciec/sigedit/fs"
)

// Run executes the template save command.
func (c *TemplateSaveCmd) Run(deps *Dependencies) error {
	html, err := readHTML(deps, c.File)
	if err != nil {
		return fail(deps, err)
	}

	tmpl := &sigedit.Template{Name: c.Name, HTML: html}

	if c.Thumbnail && deps.Thumbnailer != nil {
		thumb, err := deps.Thumbnailer.Thumbnail(deps.Ctx, html)
		if err != nil {
			// A template without a thumbnail is still useful.
			fmt.Fprintf(deps.Stderr, "warning: no thumbnail: %s\n", sigedit.ErrorMessage(err))
		}
		tmpl.Thumbnail = thumb
	}

	if err := deps.Templates.CreateTemplate(deps.Ctx, tmpl); err != nil {
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Saved template %d (%s)\n", tmpl.ID, tmpl.Name)
	return nil
}

// Run executes the template list command.
func (c *TemplateListCmd) Run(deps *Dependencies) error {
	filter := sigedit.TemplateFilter{}
	if c.Name != "" {
		filter.Name = &c.Name
	}

	templates, err := deps.Templates.FindTemplates(deps.Ctx, filter)
	if err != nil {
		return fail(deps, err)
	}

	if len(templates) == 0 {
		fmt.Fprintln(deps.Stdout, "No templates found. Use 'sigedit template save' to create one.")
		return nil
	}

	for _, t := range templates {
		thumb := ""
		if t.Thumbnail != "" {
			thumb = "  [thumbnail]"
		}
		fmt.Fprintf(deps.Stdout, "%d  %s  %s%s\n", t.ID, t.Name, t.LastModified.Format("2006-01-02 15:04"), thumb)
	}
	return nil
}

// Run executes the template show command.
func (c *TemplateShowCmd) Run(deps *Dependencies) error {
	tmpl, err := deps.Templates.FindTemplateByID(deps.Ctx, c.ID)
	if err != nil {
		return fail(deps, err)
	}

	fmt.Fprintln(deps.Stdout, tmpl.HTML)
	return nil
}

// Run executes the template export command.
func (c *TemplateExportCmd) Run(deps *Dependencies) error {
	tmpl, err := deps.Templates.FindTemplateByID(deps.Ctx, c.ID)
	if err != nil {
		return fail(deps, err)
	}

	path, err := deps.NewExportWriter(c.Dir).WriteExport(deps.Ctx, &sigedit.ExportResult{
		Content:   tmpl.HTML,
		Filename:  fs.TemplateFilename(tmpl),
		MediaType: "text/html",
	})
	if err != nil {
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Exported %s\n", path)
	return nil
}
