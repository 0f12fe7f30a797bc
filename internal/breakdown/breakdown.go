// Package breakdown groups trades through a fixed six-level dimension
// order, producing a drillable tree and a flattened heatmap matrix. Every
// call is a stateless recomputation over the input list.
package breakdown

import (
	"wolf-journal/internal/models"
)

// LabelNone is the sentinel group for trades missing a dimension value.
// Such trades are grouped under it, never dropped.
const LabelNone = "N/A"

// Labels for the PD-array presence level.
const (
	LabelWithPDArray = "PD Array"
	LabelNoPDArray   = "No PD Array"
)

// BaseStats aggregates one group of trades. RSamples counts the trades that
// contributed an R-multiple so partial aggregates can merge with a
// count-weighted mean.
type BaseStats struct {
	Trades   int
	Wins     int
	Losses   int
	NetPnL   float64
	WinRate  float64
	AvgR     float64
	RSamples int
}

// add folds one trade into the stats.
func (s *BaseStats) add(t models.TradeRecord) {
	s.Trades++
	switch t.Outcome {
	case models.OutcomeWin:
		s.Wins++
	case models.OutcomeLoss:
		s.Losses++
	}
	if pnl, ok := t.RealizedPnL(); ok {
		s.NetPnL += pnl
	}
	if r, ok := t.RMultiple(); ok {
		s.AvgR = (s.AvgR*float64(s.RSamples) + r) / float64(s.RSamples+1)
		s.RSamples++
	}
	s.refreshWinRate()
}

// Merge combines another partial aggregate into this one. The R-multiple
// average is count-weighted; an unweighted average of averages would skew
// cells combined from groups of different sizes.
func (s *BaseStats) Merge(other BaseStats) {
	s.Trades += other.Trades
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.NetPnL += other.NetPnL
	if s.RSamples+other.RSamples > 0 {
		s.AvgR = (s.AvgR*float64(s.RSamples) + other.AvgR*float64(other.RSamples)) /
			float64(s.RSamples+other.RSamples)
	}
	s.RSamples += other.RSamples
	s.refreshWinRate()
}

// refreshWinRate recomputes the win rate over decided trades only.
func (s *BaseStats) refreshWinRate() {
	if s.Wins+s.Losses == 0 {
		s.WinRate = 0
		return
	}
	s.WinRate = float64(s.Wins) / float64(s.Wins+s.Losses) * 100
}

// Node is one level of the breakdown tree. Children are keyed by the next
// dimension's value; ChildOrder preserves first-seen insertion order for
// deterministic rendering.
type Node struct {
	Label      string
	Dimension  string
	Stats      BaseStats
	Children   map[string]*Node
	ChildOrder []string
}

func newNode(label, dimension string) *Node {
	return &Node{
		Label:     label,
		Dimension: dimension,
		Children:  make(map[string]*Node),
	}
}

func (n *Node) child(label, dimension string) *Node {
	if c, ok := n.Children[label]; ok {
		return c
	}
	c := newNode(label, dimension)
	n.Children[label] = c
	n.ChildOrder = append(n.ChildOrder, label)
	return c
}

// Walk visits the node and its descendants depth-first in insertion order.
func (n *Node) Walk(visit func(node *Node, depth int)) {
	n.walk(visit, 0)
}

func (n *Node) walk(visit func(node *Node, depth int), depth int) {
	visit(n, depth)
	for _, label := range n.ChildOrder {
		n.Children[label].walk(visit, depth+1)
	}
}

// dimension names in grouping order.
const (
	DimHTF       = "htf"
	DimCondition = "condition"
	DimPDArray   = "pdarray"
	DimSession   = "session"
	DimLTF       = "ltf"
	DimTagCombo  = "tags"
)

type dimension struct {
	name    string
	extract func(models.TradeRecord) string
}

// groupingOrder is the fixed drill-down order.
var groupingOrder = []dimension{
	{DimHTF, func(t models.TradeRecord) string { return labelOr(t.HTF) }},
	{DimCondition, conditionLabel},
	{DimPDArray, func(t models.TradeRecord) string { return labelOr(t.PDArray) }},
	{DimSession, func(t models.TradeRecord) string { return labelOr(t.Session) }},
	{DimLTF, func(t models.TradeRecord) string { return labelOr(t.LTF) }},
	{DimTagCombo, func(t models.TradeRecord) string { return labelOr(models.TagComboLabel(t.Tags)) }},
}

func conditionLabel(t models.TradeRecord) string {
	if labelOr(t.PDArray) == LabelNone {
		return LabelNoPDArray
	}
	return LabelWithPDArray
}

func labelOr(value string) string {
	if value == "" || value == LabelNone {
		return LabelNone
	}
	return value
}

// Build folds the trade list into the six-level tree. The root aggregates
// every trade; each deeper level narrows by the next dimension.
func Build(trades []models.TradeRecord) *Node {
	root := newNode("All Trades", "root")
	for _, t := range trades {
		root.Stats.add(t)
		node := root
		for _, dim := range groupingOrder {
			node = node.child(dim.extract(t), dim.name)
			node.Stats.add(t)
		}
	}
	return root
}
