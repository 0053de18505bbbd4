package main

import (
	"iter"
	"slices"
	"strconv"

	"github.com/moogar0880/structs/Trees"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type treeOptions struct {
	*rootOptions
	kind  string
	del   []int
	order string
}

var orders = []string{"pre", "in", "post", "level"}

func newTreeCmd(ro *rootOptions) *cobra.Command {
	o := &treeOptions{rootOptions: ro}
	cmd := &cobra.Command{
		Use:   "tree <key>...",
		Short: "Insert integer keys into a tree and print its traversals",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.kind, "kind", "k", "bst", "tree kind: bst or binary")
	f.IntSliceVarP(&o.del, "delete", "d", nil, "keys to delete after inserting")
	f.StringVarP(&o.order, "order", "o", "all", "traversal: pre, in, post, level or all")
	return cmd
}

func traversal(t *Trees.Tree[int, string], order string) iter.Seq[*Trees.Node[int, string]] {
	switch order {
	case "pre":
		return t.PreOrder()
	case "in":
		return t.InOrder()
	case "post":
		return t.PostOrder()
	default:
		return t.LevelOrder()
	}
}

func (o *treeOptions) run(cmd *cobra.Command, args []string) error {
	show := orders
	if o.order != "all" {
		if !slices.Contains(orders, o.order) {
			return errors.Errorf("unknown traversal %q", o.order)
		}
		show = []string{o.order}
	}
	keys := make([]int, len(args))
	for i, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil {
			return errors.WithMessagef(err, "key %q", a)
		}
		keys[i] = k
	}

	log := newLogger(cmd.ErrOrStderr(), o.verbose)
	var (
		t   *Trees.Tree[int, string]
		bst *Trees.BinarySearchTree[int, string]
	)
	switch o.kind {
	case "bst":
		bst = Trees.NewBinarySearchTree[int, string](Trees.WithLogger(log))
		t = &bst.Tree
	case "binary":
		bt := Trees.NewBinaryTree[int, string](Trees.WithLogger(log))
		t = &bt.Tree
	default:
		return errors.Errorf("unknown tree kind %q", o.kind)
	}

	for _, k := range keys {
		t.Put(k, strconv.Itoa(k))
	}
	for _, k := range o.del {
		if err := t.Delete(k); err != nil {
			var nf *Trees.KeyNotFoundError
			if !errors.As(err, &nf) {
				return errors.WithMessage(err, "delete")
			}
			log.Warn().Int("key", k).Msg("not in tree")
		}
	}

	w := cmd.OutOrStdout()
	heading(w, o.kind+" tree, "+strconv.FormatUint(uint64(t.Size()), 10)+" nodes")
	for _, name := range show {
		var ks []int
		for n := range traversal(t, name) {
			ks = append(ks, n.Key)
		}
		row(w, name, ks)
	}
	if bst != nil && !bst.Empty() {
		row(w, "min", bst.Minimum().Key)
		row(w, "max", bst.Maximum().Key)
	}
	return nil
}
