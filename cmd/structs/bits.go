package main

import (
	"fmt"
	"strconv"

	"github.com/moogar0880/structs"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// operand count per op
var bitOps = map[string]int{
	"not":   1,
	"count": 1,
	"int":   1,
	"and":   2,
	"or":    2,
	"xor":   2,
	"rotl":  2,
	"rotr":  2,
}

func newBitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bits <op> <bits> [<bits>|<k>]",
		Short: "Apply a bit array operation",
		Long:  "Ops: not, count, int, and, or, xor, rotl, rotr. Bit strings are read left to right, most significant first.",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  runBits,
	}
}

func runBits(cmd *cobra.Command, args []string) error {
	op := args[0]
	n, ok := bitOps[op]
	if !ok {
		return errors.Errorf("unknown op %q", op)
	}
	if len(args)-1 != n {
		return errors.Errorf("%s takes %d operand(s), got %d", op, n, len(args)-1)
	}
	a, err := structs.Parse(args[1])
	if err != nil {
		return errors.WithMessage(err, "first operand")
	}

	w := cmd.OutOrStdout()
	switch op {
	case "not":
		fmt.Fprintln(w, a.Not())
	case "count":
		fmt.Fprintln(w, a.Count())
	case "int":
		fmt.Fprintln(w, a.Int())
	case "rotl", "rotr":
		k, err := strconv.Atoi(args[2])
		if err != nil {
			return errors.WithMessage(err, "rotation")
		}
		if op == "rotr" {
			k = -k
		}
		fmt.Fprintln(w, a.RotateLeft(k))
	default:
		b, err := structs.Parse(args[2])
		if err != nil {
			return errors.WithMessage(err, "second operand")
		}
		switch op {
		case "and":
			fmt.Fprintln(w, a.And(b))
		case "or":
			fmt.Fprintln(w, a.Or(b))
		case "xor":
			fmt.Fprintln(w, a.Xor(b))
		}
	}
	return nil
}
