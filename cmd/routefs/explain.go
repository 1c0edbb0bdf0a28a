package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/routefs/internal/errors"
)

func explainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain [code]",
		Short: "Describe an error code",
		Long: `Print the message and detail registered for an error code such as E101.
Without a code, list every code routefs can report.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				listCodes(cmd.OutOrStdout())
				return nil
			}
			return explainCode(cmd.OutOrStdout(), args[0])
		},
	}
}

func listCodes(w io.Writer) {
	for _, code := range errors.GetAllCodes() {
		tmpl, _ := errors.GetTemplate(code)
		fmt.Fprintf(w, "%s  %-9s %s\n", code, tmpl.Category, tmpl.Message)
	}
}

func explainCode(w io.Writer, code string) error {
	code = strings.ToUpper(code)
	tmpl, ok := errors.GetTemplate(code)
	if !ok {
		return errors.Newf(errors.CategoryCLI, "unknown error code %q", code).
			WithSuggestion("Run 'routefs explain' to list every code")
	}

	fmt.Fprintf(w, "%s: %s\n\n", code, tmpl.Message)
	fmt.Fprintf(w, "Category: %s\n", tmpl.Category)
	if tmpl.Detail != "" {
		fmt.Fprintf(w, "\n%s\n", tmpl.Detail)
	}
	return nil
}
