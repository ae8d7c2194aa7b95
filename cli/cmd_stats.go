package main

import (
	"encoding/json"
	"fmt"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/yoook/FindSimilarFolders/internals"
)

// StatsCommand defines the CLI command parameters
type StatsCommand struct {
	IndexFiles   []string `json:"index-files"`
	MinOverlap   int      `json:"min-overlap"`
	ConfigOutput bool     `json:"config"`
	JSONOutput   bool     `json:"json"`
}

// StatsNode is the JSON-friendly projection of a pruned internals.TreeNode.
type StatsNode struct {
	Name              string      `json:"name"`
	NumSubfolders     uint64      `json:"num-subfolders"`
	NumFilesInSubtree uint64      `json:"num-files-in-subtree"`
	BytesInSubtree    uint64      `json:"bytes-in-subtree"`
	BytesHuman        string      `json:"bytes-human"`
	DupCandidates     []string    `json:"dup-candidates"`
	Children          []StatsNode `json:"children,omitempty"`
}

var statsCommand *StatsCommand
var argMinOverlap int

var statsCmd = &cobra.Command{
	Use:   "stats <index-file>...",
	Short: "Build the pruned folder-statistics tree for one or more indexes",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf(`stats requires at least one index file`)
		}
		statsCommand = &StatsCommand{
			IndexFiles:   args,
			MinOverlap:   argMinOverlap,
			ConfigOutput: argConfigOutput,
			JSONOutput:   argJSONOutput,
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		exitCode, cmdError = statsCommand.Run(w)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().IntVar(&argMinOverlap, "min-overlap", -1, "if >= 0, run the weak-candidate pruning pass with this maxMissing threshold")
}

// Run executes stats: C2 load, build the inverted index and statistics
// tree (C8/C9), optionally run the weak-candidate pruning pass, then print
// the pruned tree.
func (c *StatsCommand) Run(w Output) (int, error) {
	if c.ConfigOutput {
		b, err := json.Marshal(c)
		if err != nil {
			return 6, fmt.Errorf(configJSONErrMsg, err)
		}
		w.Println(string(b))
		return 0, nil
	}

	records, err := internals.LoadIndex(c.IndexFiles)
	if err != nil {
		return 2, err
	}

	invertedIndex := internals.BuildInvertedIndex(records)
	root := internals.BuildStatisticsTree(records, invertedIndex)
	if c.MinOverlap >= 0 {
		internals.PruneWeakCandidates(root, c.MinOverlap)
	}
	internals.AggregateAndPrune(root)

	tree := projectStatsNode(root)

	if c.JSONOutput {
		jsonRepr, err := json.MarshalIndent(&tree, "", "  ")
		if err != nil {
			return 6, fmt.Errorf(resultJSONErrMsg, err)
		}
		w.Println(string(jsonRepr))
	} else {
		printStatsNode(w, tree, 0)
	}

	return 0, nil
}

func projectStatsNode(n *internals.TreeNode) StatsNode {
	candidates := make([]string, 0, len(n.Cargo.DupCandidateCounts))
	for c := range n.Cargo.DupCandidateCounts {
		candidates = append(candidates, c)
	}
	node := StatsNode{
		Name:              n.Name,
		NumSubfolders:     n.Cargo.NumSubfolders,
		NumFilesInSubtree: n.Cargo.NumFilesInSubtree,
		BytesInSubtree:    n.Cargo.BytesInSubtree,
		BytesHuman:        humanize.Bytes(n.Cargo.BytesInSubtree),
		DupCandidates:     candidates,
	}
	for _, child := range n.IterChildren() {
		node.Children = append(node.Children, projectStatsNode(child))
	}
	return node
}

func printStatsNode(w Output, n StatsNode, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	name := n.Name
	if name == "" {
		name = "."
	}
	w.Printfln("%s%s  (%d files, %s, %d candidates)", indent, name, n.NumFilesInSubtree, n.BytesHuman, len(n.DupCandidates))
	for _, child := range n.Children {
		printStatsNode(w, child, depth+1)
	}
}
