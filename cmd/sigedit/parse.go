package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/sigedit"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	html, err := readHTML(deps, c.File)
	if err != nil {
		return fail(deps, err)
	}

	sig, err := deps.Parser.Parse(html)
	if err != nil {
		return fail(deps, err)
	}

	if c.Save {
		stored := &sigedit.StoredSignature{Signature: *sig}
		if err := deps.Signatures.CreateSignature(deps.Ctx, stored); err != nil {
			return fail(deps, err)
		}
		sig = &stored.Signature
		fmt.Fprintf(deps.Stderr, "Saved signature %s\n", stored.ID)
	}

	if c.JSON {
		return printJSON(deps, sig)
	}

	printSignature(deps, sig)
	return nil
}

// printSignature prints detected fields and images, one per line.
func printSignature(deps *Dependencies, sig *sigedit.Signature) {
	if len(sig.Elements) == 0 {
		fmt.Fprintln(deps.Stdout, "No editable fields found.")
	}
	for _, el := range sig.Elements {
		fmt.Fprintf(deps.Stdout, "field %-3d %-8s %-14s %s\n", el.ID, el.Type, el.Label, el.Value)
	}
	for _, img := range sig.Images {
		fmt.Fprintf(deps.Stdout, "image %-3d %-8s %dx%d  %s\n", img.ID, img.Type, img.Dimensions.Width, img.Dimensions.Height, abbreviate(img.Src, 60))
	}
}

func printJSON(deps *Dependencies, v any) error {
	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fail(deps, err)
	}
	return nil
}

// abbreviate shortens long values such as data URIs for display.
func abbreviate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
