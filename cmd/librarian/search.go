package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/floating-librarian/internal/app"
	"github.com/heartmarshall/floating-librarian/internal/config"
	"github.com/heartmarshall/floating-librarian/internal/domain"
)

func newSearchCmd(cfg **config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search the book catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := app.SearchCatalog(cmd.Context(), *cfg, strings.Join(args, " "))
			if err != nil {
				return err
			}
			return printBooks(cmd, books)
		},
	}
}

func printBooks(cmd *cobra.Command, books []domain.Book) error {
	out := cmd.OutOrStdout()
	if len(books) == 0 {
		_, err := fmt.Fprintln(out, "No books found.")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ISBN\tTITLE\tAUTHOR\tCOVER")
	for _, b := range books {
		cover := "-"
		if b.CoverID != nil {
			cover = *b.CoverID
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.ISBN, b.Title, b.AuthorName, cover)
	}
	return tw.Flush()
}
