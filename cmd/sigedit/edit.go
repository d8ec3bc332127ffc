package main

import (
	"fmt"

	"github.com/fwojciec/sigedit"
	"github.com/fwojciec/sigedit/edit"
	"github.com/fwojciec/sigedit/fs"
)

// Run executes the edit command.
func (c *EditCmd) Run(deps *Dependencies) error {
	if (c.File == "") == (c.Signature == "") {
		return fail(deps, sigedit.Errorf(sigedit.EINVALID, "give either a file or --signature"))
	}

	edits, err := c.edits(deps)
	if err != nil {
		return fail(deps, err)
	}

	session, err := c.session(deps)
	if err != nil {
		return fail(deps, err)
	}

	// The edits were built against the version just loaded.
	_, version := session.Signature()
	result, err := session.ApplyAt(version, edits)
	if err != nil {
		return fail(deps, err)
	}
	for _, id := range result.IgnoredFields {
		fmt.Fprintf(deps.Stderr, "warning: no field with ID %d\n", id)
	}
	for _, id := range result.IgnoredImages {
		fmt.Fprintf(deps.Stderr, "warning: no image with ID %d\n", id)
	}
	for _, id := range result.UnappliedFields {
		fmt.Fprintf(deps.Stderr, "warning: field %d not found in the HTML, left unchanged\n", id)
	}
	for _, id := range result.UnappliedImages {
		fmt.Fprintf(deps.Stderr, "warning: image %d not found in the HTML, left unchanged\n", id)
	}

	if c.Signature != "" {
		if _, err := deps.Signatures.UpdateSignature(deps.Ctx, c.Signature, result.Signature); err != nil {
			return fail(deps, err)
		}
		fmt.Fprintf(deps.Stderr, "Updated signature %s\n", c.Signature)
	}

	if err := writeOutput(deps, c.Output, result.Signature.HTMLContent); err != nil {
		return fail(deps, err)
	}
	return nil
}

// session starts an edit session from the file or the stored signature.
func (c *EditCmd) session(deps *Dependencies) (*edit.Session, error) {
	if c.Signature != "" {
		stored, err := deps.Signatures.FindSignatureByID(deps.Ctx, c.Signature)
		if err != nil {
			return nil, err
		}
		return edit.ResumeSession(deps.Parser, deps.Editor, &stored.Signature)
	}

	html, err := readHTML(deps, c.File)
	if err != nil {
		return nil, err
	}
	return edit.NewSession(deps.Parser, deps.Editor, html)
}

// edits builds the edit set from --set and --image flags. Image files are
// encoded before anything is applied, so a bad image leaves the signature
// untouched.
func (c *EditCmd) edits(deps *Dependencies) (*sigedit.Edits, error) {
	edits := &sigedit.Edits{}

	for _, s := range c.Set {
		id, value, err := parseAssignment("set", s)
		if err != nil {
			return nil, err
		}
		if edits.Fields == nil {
			edits.Fields = make(map[int]string)
		}
		edits.Fields[id] = value
	}

	for _, s := range c.Image {
		id, path, err := parseAssignment("image", s)
		if err != nil {
			return nil, err
		}
		data, err := fs.ReadImage(path)
		if err != nil {
			return nil, err
		}
		encoded, err := deps.Images.Encode(data)
		if err != nil {
			return nil, err
		}
		if edits.Images == nil {
			edits.Images = make(map[int]sigedit.ImageEdit)
		}
		edits.Images[id] = encoded.Edit()
	}

	return edits, nil
}
