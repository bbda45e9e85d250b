// Package gol implements a Hashlife engine for Conway's Game of Life: a
// hash-consed quadtree (see package node) with a memoized step operator
// that lets large, sparse or highly repetitive patterns advance many
// generations in sublinear time by reusing previously computed results for
// identical substructure.
//
// The engine itself lives in node; this package only documents the module
// and names the few constants a caller needs without importing node
// directly.
package gol

import "github.com/jyane/gol/node"

// Rule is the cellular automaton rule this engine implements: B3/S23,
// standard Conway Life. The engine has no notion of alternate rules.
const Rule = "B3/S23"

// MaxDepth is the deepest a Node's quadtree may nest, bounding the
// largest representable universe to roughly
// 2^(node.MaxDepth+4) x 2^(node.MaxDepth+4) cells.
const MaxDepth = node.MaxDepth
