package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validext/pkg/validator"
)

func newOperatorsCmd() *cobra.Command {
	var allowLike bool

	cmd := &cobra.Command{
		Use:   "operators",
		Short: "List operator tokens accepted in rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, token := range validator.OperatorTokens(allowLike) {
				fmt.Fprintln(cmd.OutOrStdout(), token)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&allowLike, "allow-like", false, "include LIKE and NOT LIKE")
	return cmd
}
