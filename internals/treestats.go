package internals

import "strconv"

// BuildStatisticsTree runs the build phase of the Statistics Pass (C9):
// for each record, it inserts the record's parent path into the tree and
// calls AddHash on the resulting folder node. The returned tree is not yet
// aggregated; call AggregateAndPrune to run the bottom-up pass.
func BuildStatisticsTree(records []Record, invertedIndex map[string]map[string]int) *TreeNode {
	root := NewTreeNode("")
	for _, r := range records {
		folder := root.InsertAtPath(r.Parent)
		size, err := strconv.ParseUint(r.Size, 10, 64)
		if err != nil {
			continue
		}
		AddHash(folder, r.Hash, size, invertedIndex[r.Hash])
	}
	return root
}

// AddHash stores hash->size on a folder node and folds the hash's
// candidate-folder set (supplied by the caller, see BuildInvertedIndex)
// into the node's DupCandidateCounts, incrementing each candidate's count
// by one — once per file, as spec.md §4.10 prescribes ("dict(dups).keys():
// reduce the number of files counted per folder to one", ported from
// fsf_objects.py's FTreeStat.add_count).
func AddHash(node *TreeNode, hash string, size uint64, candidateFolders map[string]int) {
	node.Cargo.HashSizes[hash] = size
	for folderKey := range candidateFolders {
		node.Cargo.DupCandidateCounts[folderKey]++
	}
}

// AggregateAndPrune runs the bottom-up aggregation pass of C9: at every
// non-root node N it rolls file/byte/subfolder counts into N's parent and
// removes N from its parent if N is a leaf with no duplication peer
// (spec.md §4.10, step 5 — the one non-obvious invariant: a leaf whose
// dup-candidate set has exactly one entry is only a candidate of itself).
func AggregateAndPrune(root *TreeNode) {
	root.TraverseBottomUp(func(n *TreeNode) {
		if n.Parent == nil {
			return
		}
		sizeHere := uint64(0)
		for _, size := range n.Cargo.HashSizes {
			sizeHere += size
		}
		filesHere := uint64(len(n.Cargo.HashSizes))

		parent := n.Parent
		parent.Cargo.NumSubfolders++
		parent.Cargo.NumFilesInSubtree += n.Cargo.NumFilesInSubtree + filesHere
		parent.Cargo.BytesInSubtree += n.Cargo.BytesInSubtree + sizeHere

		if n.IsLeaf() && len(n.Cargo.DupCandidateCounts) <= 1 {
			parent.RemoveChild(n.Name)
		}
	})
}

// PruneWeakCandidates is the supplemented second pruning pass from
// fsf_objects.py's FTreeStat.remove_unimportant: a candidate folder is
// dropped from a node's DupCandidateCounts if more than `maxMissing` of
// this node's files are NOT shared with that candidate. The original
// hardcodes maxMissing=2; SPEC_FULL.md generalizes it into a parameter
// (wired to `stats --min-overlap`). It must run before AggregateAndPrune,
// since it can turn a node with exactly one real peer into a node with
// zero, making it eligible for C9's prune rule.
func PruneWeakCandidates(root *TreeNode, maxMissing int) {
	root.TraverseTopDown(func(n *TreeNode) {
		filesHere := len(n.Cargo.HashSizes)
		for folder, count := range n.Cargo.DupCandidateCounts {
			if count < filesHere-maxMissing {
				delete(n.Cargo.DupCandidateCounts, folder)
			}
		}
	})
}
