package Trees

import (
	"testing"

	"github.com/google/btree"
	"github.com/openacid/testkeys"
	"github.com/petar/GoLLRB/llrb"
)

// compares BinarySearchTree with https://github.com/google/btree and
// https://github.com/petar/GoLLRB. Neither of them allow duplicates and both
// balance, so the numbers are only meaningful for random insertion orders.

var (
	bAddN = 100000
	bQryN = bAddN / 2
)

var sideEff any

func BenchmarkBST_Put(b *testing.B) {
	keys := rg.Perm(bAddN)
	b.ResetTimer()
	for range b.N {
		tree := NewBinarySearchTree[int, struct{}]()
		for _, k := range keys {
			tree.Put(k, struct{}{})
		}
	}
}

func BenchmarkBTree_Put(b *testing.B) {
	keys := rg.Perm(bAddN)
	b.ResetTimer()
	for range b.N {
		tree := btree.NewG[int](32, func(a, b int) bool { return a < b })
		for _, k := range keys {
			tree.ReplaceOrInsert(k)
		}
	}
}

func BenchmarkLLRB_Put(b *testing.B) {
	keys := rg.Perm(bAddN)
	b.ResetTimer()
	for range b.N {
		tree := llrb.New()
		for _, k := range keys {
			tree.ReplaceOrInsert(llrb.Int(k))
		}
	}
}

func BenchmarkBST_Get(b *testing.B) {
	keys := rg.Perm(bAddN)
	tree := NewBinarySearchTree[int, int]()
	for _, k := range keys {
		tree.Put(k, k)
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range keys[:bQryN] {
			sideEff = tree.Get(k, 0)
		}
	}
}

func BenchmarkLLRB_Get(b *testing.B) {
	keys := rg.Perm(bAddN)
	tree := llrb.New()
	for _, k := range keys {
		tree.ReplaceOrInsert(llrb.Int(k))
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range keys[:bQryN] {
			sideEff = tree.Get(llrb.Int(k))
		}
	}
}

func BenchmarkBST_PutDelete(b *testing.B) {
	keys := rg.Perm(bAddN)
	b.ResetTimer()
	for range b.N {
		tree := NewBinarySearchTree[int, struct{}]()
		for _, k := range keys {
			tree.Put(k, struct{}{})
		}
		for _, k := range keys {
			_ = tree.Delete(k)
		}
	}
}

// string keys from the testkeys corpora. The sets are stored sorted, which is
// the worst case for an unbalanced tree, so they're shuffled first.
func BenchmarkBST_TestKeys(b *testing.B) {
	for _, fn := range testkeys.AssetNames() {
		keys := testkeys.Load(fn)
		if len(keys) < 1000 || len(keys) > 50000 {
			continue
		}
		rg.Shuffle(len(keys), func(i, j int) {
			keys[i], keys[j] = keys[j], keys[i]
		})
		b.Run(fn, func(b *testing.B) {
			for range b.N {
				tree := NewBinarySearchTree[string, struct{}]()
				for _, k := range keys {
					tree.Put(k, struct{}{})
				}
				for _, k := range keys {
					sideEff = tree.Has(k)
				}
			}
		})
	}
}
