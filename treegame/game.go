// Package treegame sequentializes a bimatrix game as an extensive-form
// game tree implementing cfr.GameTreeNode, so that solvers built on
// github.com/timpalpant/go-cfr can be run on it. The row player moves
// at the root; the column player moves second, but all second-stage
// nodes share a single information set, so the column player cannot
// condition on the row player's choice and the moves are effectively
// simultaneous.
package treegame

import (
	"expvar"
	"fmt"
	"math/rand"

	"github.com/timpalpant/go-cfr"

	"github.com/ksyrros/bimatrix"
)

var (
	nodesVisited         = expvar.NewInt("nodes_visited")
	terminalNodesVisited = expvar.NewInt("nodes_visited/terminal")
	playerNodesVisited   = expvar.NewInt("nodes_visited/player")
)

// stage represents how far play has progressed at a given node.
type stage uint8

const (
	rowTurn stage = iota
	colTurn
	gameOver
)

var stageStr = [...]string{
	"RowTurn",
	"ColumnTurn",
	"GameOver",
}

func (s stage) String() string {
	return stageStr[s]
}

// GameNode implements cfr.GameTreeNode for a two-player game in
// normal form.
type GameNode struct {
	paymat bimatrix.PayoffMatrix
	stage  stage
	// row and col are the actions chosen so far; row is meaningful
	// from colTurn on, col only at gameOver.
	row, col int

	parent   *GameNode
	children []GameNode
}

// Verify that we implement the interface.
var _ cfr.GameTreeNode = &GameNode{}

// NewGame creates the root node of the sequentialized game.
// The matrix must be non-empty and rectangular.
func NewGame(paymat bimatrix.PayoffMatrix) (*GameNode, error) {
	if err := paymat.Validate(); err != nil {
		return nil, err
	}

	return &GameNode{paymat: paymat, stage: rowTurn}, nil
}

// Type implements cfr.GameTreeNode. The tree has no chance nodes.
func (gn *GameNode) Type() cfr.NodeType {
	if gn.stage == gameOver {
		return cfr.TerminalNodeType
	}

	return cfr.PlayerNodeType
}

// Player implements cfr.GameTreeNode.
func (gn *GameNode) Player() int {
	if gn.stage == colTurn {
		return 1
	}

	return 0
}

// InfoSet implements cfr.GameTreeNode. Neither player observes the
// other's move before acting, so each player has exactly one
// information set in the whole game.
func (gn *GameNode) InfoSet(player int) cfr.InfoSet {
	if player == 1 {
		return &infoSet{key: "column"}
	}

	return &infoSet{key: "row"}
}

// Utility implements cfr.GameTreeNode.
func (gn *GameNode) Utility(player int) float64 {
	if gn.Type() != cfr.TerminalNodeType {
		panic("cannot get the utility of a non-terminal node")
	}

	cell := gn.paymat.At(gn.row, gn.col)
	if player == 0 {
		return cell.Row
	}

	return cell.Col
}

// String implements fmt.Stringer.
func (gn *GameNode) String() string {
	switch gn.stage {
	case rowTurn:
		return fmt.Sprintf("%v: %d actions", gn.stage, gn.paymat.NumRows())
	case colTurn:
		return fmt.Sprintf("%v: %d actions (row played %d)", gn.stage, gn.paymat.NumCols(), gn.row)
	default:
		return fmt.Sprintf("%v: profile (%d, %d)", gn.stage, gn.row, gn.col)
	}
}

func (gn *GameNode) buildChildren() {
	if len(gn.children) > 0 {
		return // Already built.
	}

	switch gn.stage {
	case rowTurn:
		gn.children = make([]GameNode, gn.paymat.NumRows())
		for i := range gn.children {
			gn.children[i] = GameNode{paymat: gn.paymat, stage: colTurn, row: i, parent: gn}
		}
	case colTurn:
		gn.children = make([]GameNode, gn.paymat.NumCols())
		for j := range gn.children {
			gn.children[j] = GameNode{paymat: gn.paymat, stage: gameOver, row: gn.row, col: j, parent: gn}
		}
	case gameOver:
	}
}

// NumChildren implements cfr.GameTreeNode.
func (gn *GameNode) NumChildren() int {
	if gn.children == nil {
		gn.buildChildren()
	}

	return len(gn.children)
}

// GetChild implements cfr.GameTreeNode.
func (gn *GameNode) GetChild(i int) cfr.GameTreeNode {
	if gn.children == nil {
		gn.buildChildren()
	}

	return &gn.children[i]
}

// Parent implements cfr.GameTreeNode.
func (gn *GameNode) Parent() cfr.GameTreeNode {
	return gn.parent
}

// GetChildProbability implements cfr.GameTreeNode.
func (gn *GameNode) GetChildProbability(i int) float64 {
	panic("cannot get the probability of a non-chance node")
}

// SampleChild implements cfr.GameTreeNode. The tree has no chance
// nodes; sampling a player node is uniform over its actions, which is
// what playout-style drivers expect of an unvisited node.
func (gn *GameNode) SampleChild() (cfr.GameTreeNode, float64) {
	selected := rand.Intn(gn.NumChildren())
	return gn.GetChild(selected), 1.0 / float64(gn.NumChildren())
}

// Close implements cfr.GameTreeNode.
func (gn *GameNode) Close() {
	nodesVisited.Add(1)
	switch gn.Type() {
	case cfr.TerminalNodeType:
		terminalNodesVisited.Add(1)
	case cfr.PlayerNodeType:
		playerNodesVisited.Add(1)
	}

	gn.children = nil
}

type infoSet struct {
	key string
}

// Key implements cfr.InfoSet.
func (is *infoSet) Key() string {
	return is.key
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (is *infoSet) MarshalBinary() ([]byte, error) {
	return []byte(is.key), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (is *infoSet) UnmarshalBinary(buf []byte) error {
	is.key = string(buf)
	return nil
}
