package root

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func exactArgs(n int, msg string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errors.New(msg)
		}
		return nil
	}
}

func intArg(s string, what string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", what)
	}
	return n, nil
}
