package main

import (
	"fmt"

	"github.com/fwojciec/sigedit"
)

// Run executes the signature list command.
func (c *SignatureListCmd) Run(deps *Dependencies) error {
	sigs, err := deps.Signatures.FindSignatures(deps.Ctx, sigedit.SignatureFilter{Limit: c.Limit})
	if err != nil {
		return fail(deps, err)
	}

	if len(sigs) == 0 {
		fmt.Fprintln(deps.Stdout, "No signatures found. Use 'sigedit parse --save' to store one.")
		return nil
	}

	for _, s := range sigs {
		fmt.Fprintf(deps.Stdout, "%s  %d fields  %d images  %s\n",
			s.ID, len(s.Elements), len(s.Images), s.LastModified.Format("2006-01-02 15:04"))
	}
	return nil
}

// Run executes the signature show command.
func (c *SignatureShowCmd) Run(deps *Dependencies) error {
	sig, err := deps.Signatures.FindSignatureByID(deps.Ctx, c.ID)
	if err != nil {
		return fail(deps, err)
	}

	if c.HTML {
		fmt.Fprintln(deps.Stdout, sig.HTMLContent)
		return nil
	}
	return printJSON(deps, sig)
}

// Run executes the signature delete command.
func (c *SignatureDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		return fail(deps, sigedit.Errorf(sigedit.EINVALID, "use --force to confirm deletion"))
	}

	if err := deps.Signatures.DeleteSignature(deps.Ctx, c.ID); err != nil {
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Deleted signature %s\n", c.ID)
	return nil
}
