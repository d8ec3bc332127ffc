package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/sigedit"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// Run executes the validate command. Files are read and validated
// concurrently; results are printed in argument order.
func (c *ValidateCmd) Run(deps *Dependencies) error {
	limit := c.Concurrency
	if limit <= 0 {
		limit = deps.Concurrency
	}
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	results := make([]*sigedit.ValidationResult, len(c.Files))
	errs := make([]error, len(c.Files))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(limit)
	for i, path := range c.Files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			html, err := readHTML(deps, path)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", path, err)
				return nil
			}
			results[i] = sigedit.Validate(html)
			return nil
		})
	}
	_ = g.Wait()

	invalid := 0
	for i, path := range c.Files {
		if errs[i] != nil {
			fmt.Fprintf(deps.Stdout, "%s: error: %s\n", path, sigedit.ErrorMessage(errs[i]))
			continue
		}
		r := results[i]
		if !r.IsValid {
			invalid++
		}
		printValidation(deps, path, r)
	}

	if err := multierr.Combine(errs...); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %d of %d files could not be read\n", len(multierr.Errors(err)), len(c.Files))
		return err
	}
	if invalid > 0 {
		err := sigedit.Errorf(sigedit.EINVALID, "%d of %d signatures are invalid", invalid, len(c.Files))
		return fail(deps, err)
	}
	return nil
}

func printValidation(deps *Dependencies, path string, r *sigedit.ValidationResult) {
	status := "valid"
	if !r.IsValid {
		status = "invalid"
	}
	fmt.Fprintf(deps.Stdout, "%s: %s\n", path, status)
	for _, issue := range r.Issues {
		fmt.Fprintf(deps.Stdout, "  issue: %s\n", issue)
	}
	for _, warning := range r.Warnings {
		fmt.Fprintf(deps.Stdout, "  warning: %s\n", warning)
	}

	var clients []string
	if r.Compatibility.Outlook {
		clients = append(clients, "Outlook")
	}
	if r.Compatibility.Gmail {
		clients = append(clients, "Gmail")
	}
	if r.Compatibility.AppleMail {
		clients = append(clients, "Apple Mail")
	}
	if len(clients) > 0 {
		fmt.Fprintf(deps.Stdout, "  compatible: %s\n", strings.Join(clients, ", "))
	}
}
