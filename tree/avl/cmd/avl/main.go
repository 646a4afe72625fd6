package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.lepak.sg/avlset/tree/avl"
	"go.lepak.sg/avlset/tree/iterator"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "avl",
		Short:        "Build, inspect and replay AVL ordered sets",
		SilenceUsage: true,
	}

	root.AddCommand(newRandomCmd(), newReplayCmd())
	return root
}

func newRandomCmd() *cobra.Command {
	var (
		seed int64
		num  int
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Insert [0, n) in a random order and print the tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if num < 0 {
				return fmt.Errorf("-n must not be negative, got %d", num)
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			tr := avl.BuildRandom(num, seed)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "seed:", seed)
			fmt.Fprintln(out, "insert order:", avl.RandomKeys(num, seed))
			return report(out, tr)
		},
	}

	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "seed (default current unix time in ns)")
	cmd.Flags().IntVarP(&num, "num", "n", 10, "number of keys in the tree")
	return cmd
}

func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay FILE",
		Short: "Apply a YAML script of insert/erase/find ops and print the tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := LoadScript(args[0])
			if err != nil {
				return err
			}

			tr := avl.New[int]()
			out := cmd.OutOrStdout()
			if err := s.Run(tr, out); err != nil {
				return err
			}
			return report(out, tr)
		},
	}
}

// report prints the traversals, diagram and height of tr.
func report(out io.Writer, tr *avl.Tree[int]) error {
	for _, order := range []iterator.Traversal{
		iterator.PreOrderTraversal,
		iterator.InOrderTraversal,
		iterator.PostOrderTraversal,
	} {
		keys := make([]int, 0, tr.Len())
		i := tr.Iterator(order)
		for i.Next() {
			keys = append(keys, i.Item())
		}
		fmt.Fprintf(out, "%s: %v\n", order, keys)
	}

	fmt.Fprintln(out, "tree:")
	fmt.Fprint(out, tr.String())

	fmt.Fprintln(out, "size:", tr.Len(), "height:", tr.Height(), "ideal:", avl.IdealHeight(tr.Len()))

	if err := tr.Check(); err != nil {
		return fmt.Errorf("tree is inconsistent: %w", err)
	}
	return nil
}
