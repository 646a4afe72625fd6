package tree

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

// Sprint returns a diagram of the tree rooted at root,
// one key per line. An empty tree is the empty string.
// A complete tree with height 3 looks like this:
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
// If withHeight is true, each key is followed by its stored height
// in parentheses, e.g. "4 (3)".
func Sprint[T constraints.Ordered](root *Node[T], withHeight bool) string {
	if root == nil {
		return ""
	}

	var sb strings.Builder
	printvisit(&sb, root, "", "", true, false, withHeight)
	return sb.String()
}

func printvisit[T constraints.Ordered](
	sb *strings.Builder, n *Node[T], prefix, branch string, initial, isMid, withHeight bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(fmt.Sprint(n.Key))
	if withHeight {
		fmt.Fprintf(sb, " (%d)", n.Height)
	}
	sb.WriteRune('\n')

	if n.Left != nil {
		printvisit(sb, n.Left, prefix, treeLeftBranch, false, n.Right != nil, withHeight)
	}

	if n.Right != nil {
		printvisit(sb, n.Right, prefix, treeRightBranch, false, false, withHeight)
	}
}
