package main

import (
	"fmt"
	"strconv"

	"motionlab/internal/core/calc"

	"github.com/spf13/cobra"
)

func newCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "calc <a> <op> <b>",
		Short:   "Run one calculation without opening the window",
		Example: "  motionlab calc 6 / 3\n  motionlab calc 2 multiply 21",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := calc.ParseOperation(args[1])
			if err != nil {
				return err
			}
			expression, err := calc.Evaluate(args[0], args[2], op)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), expression)
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <n...>",
		Short: "Print sum, average, max and min of integers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]int, 0, len(args))
			for _, arg := range args {
				value, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("%w: %q", calc.ErrInvalidNumber, arg)
				}
				values = append(values, value)
			}
			summary := calc.Summarize(values)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sum: %d\n", summary.Sum)
			fmt.Fprintf(out, "average: %.2f\n", summary.Average)
			fmt.Fprintf(out, "max: %d\n", summary.Max)
			fmt.Fprintf(out, "min: %d\n", summary.Min)
			return nil
		},
	}
}
