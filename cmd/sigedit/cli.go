package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/sigedit"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Parser    sigedit.SignatureParser
	Editor    sigedit.SignatureEditor
	Images    sigedit.ImageEncoder
	Previewer sigedit.Previewer

	Templates   sigedit.TemplateService
	Signatures  sigedit.SignatureService
	Thumbnailer sigedit.Thumbnailer

	// NewExportWriter returns a writer for the given directory.
	NewExportWriter func(dir string) sigedit.ExportWriter

	Concurrency int
	Now         func() time.Time
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"SIGEDIT_DB" help:"Database path"`
	Config  string `help:"Config file path (default: $XDG_CONFIG_HOME/sigedit/config.yaml)"`
	Verbose bool   `short:"v" help:"Log operations to stderr"`

	Parse     ParseCmd     `cmd:"" help:"Detect editable fields and images in a signature"`
	Edit      EditCmd      `cmd:"" help:"Change fields and images and print the new HTML"`
	Validate  ValidateCmd  `cmd:"" help:"Check signatures for structural problems"`
	Export    ExportCmd    `cmd:"" help:"Save a signature as a downloadable document"`
	Preview   PreviewCmd   `cmd:"" help:"Render a signature as Markdown"`
	Template  TemplateCmd  `cmd:"" help:"Manage saved templates"`
	Signature SignatureCmd `cmd:"" help:"Manage saved signatures"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File string `arg:"" help:"HTML file, or - for stdin"`
	JSON bool   `help:"Print the signature model as JSON"`
	Save bool   `help:"Store the parsed signature"`
}

// EditCmd is the "edit" subcommand.
type EditCmd struct {
	File      string   `arg:"" optional:"" help:"HTML file, or - for stdin"`
	Signature string   `help:"Edit a saved signature by ID instead of a file"`
	Set       []string `short:"s" help:"Set a field: ID=VALUE (repeatable)"`
	Image     []string `short:"i" help:"Replace an image with a file: ID=PATH (repeatable)"`
	Output    string   `short:"o" help:"Write HTML to a file instead of stdout"`
}

// ValidateCmd is the "validate" subcommand.
type ValidateCmd struct {
	Files       []string `arg:"" help:"HTML files to validate"`
	Concurrency int      `short:"c" help:"Files validated at once"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	File   string `arg:"" help:"HTML file, or - for stdin"`
	Format string `short:"f" default:"html" help:"Export format"`
	Dir    string `short:"d" default:"." help:"Output directory"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	File string `arg:"" help:"HTML file, or - for stdin"`
}

// TemplateCmd groups the template subcommands.
type TemplateCmd struct {
	Save   TemplateSaveCmd   `cmd:"" help:"Save a signature as a template"`
	List   TemplateListCmd   `cmd:"" help:"List saved templates"`
	Show   TemplateShowCmd   `cmd:"" help:"Print a template's HTML"`
	Export TemplateExportCmd `cmd:"" help:"Write a template to a file"`
}

// TemplateSaveCmd is the "template save" subcommand.
type TemplateSaveCmd struct {
	File      string `arg:"" help:"HTML file, or - for stdin"`
	Name      string `short:"n" help:"Template name (default: Template <id>)"`
	Thumbnail bool   `help:"Render a thumbnail with headless Chrome"`
}

// TemplateListCmd is the "template list" subcommand.
type TemplateListCmd struct {
	Name string `help:"Only list templates with this name"`
}

// TemplateShowCmd is the "template show" subcommand.
type TemplateShowCmd struct {
	ID int64 `arg:"" help:"Template ID"`
}

// TemplateExportCmd is the "template export" subcommand.
type TemplateExportCmd struct {
	ID  int64  `arg:"" help:"Template ID"`
	Dir string `short:"d" default:"." help:"Output directory"`
}

// SignatureCmd groups the saved signature subcommands.
type SignatureCmd struct {
	List   SignatureListCmd   `cmd:"" help:"List saved signatures"`
	Show   SignatureShowCmd   `cmd:"" help:"Show a saved signature"`
	Delete SignatureDeleteCmd `cmd:"" help:"Delete a saved signature"`
}

// SignatureListCmd is the "signature list" subcommand.
type SignatureListCmd struct {
	Limit int `short:"l" help:"Maximum number of signatures to list"`
}

// SignatureShowCmd is the "signature show" subcommand.
type SignatureShowCmd struct {
	ID   string `arg:"" help:"Signature ID"`
	HTML bool   `help:"Print only the HTML"`
}

// SignatureDeleteCmd is the "signature delete" subcommand.
type SignatureDeleteCmd struct {
	ID    string `arg:"" help:"Signature ID"`
	Force bool   `help:"Confirm deletion"`
}
