package main

import (
	"io"

	"github.com/spf13/cobra"
)

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "validext",
		Short:         "Validate JSON documents with composable rules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.AddCommand(newCheckCmd(), newOperatorsCmd())
	return root
}
