package breakdown

import (
	"sort"

	"wolf-journal/internal/models"
)

// TimeframePriority orders timeframe labels coarsest-first for heatmap
// axes. Lower values sort earlier; labels not in the table sort after all
// recognized ones, keeping their first-seen relative order.
type TimeframePriority map[string]int

// DefaultTimeframePriority returns the standard coarsest-first ordering.
func DefaultTimeframePriority() TimeframePriority {
	return TimeframePriority{
		models.TimeframeMonthly: 0,
		models.TimeframeWeekly:  1,
		models.TimeframeDaily:   2,
		models.TimeframeH4:      3,
		models.TimeframeH1:      4,
		models.TimeframeM30:     5,
		models.TimeframeM15:     6,
		models.TimeframeM5:      7,
		models.TimeframeM3:      8,
		models.TimeframeM1:      9,
	}
}

func (p TimeframePriority) rank(label string) int {
	if r, ok := p[label]; ok {
		return r
	}
	return len(p)
}

// RowKey identifies a heatmap row: the analysis timeframe combined with
// the PD array behind the setup.
type RowKey struct {
	HTF     string
	PDArray string
}

type cellKey struct {
	HTF     string
	PDArray string
	LTF     string
}

// Heatmap is the flattened matrix view: rows are (HTF, PDArray) pairs,
// columns are entry timeframes, and each cell sums every session and
// tag-combo for that triple. It is built independently of the tree by a
// coarser grouping over the same trades.
type Heatmap struct {
	Rows    []RowKey
	Columns []string

	cells    map[cellKey]*BaseStats
	priority TimeframePriority
}

// BuildHeatmap flattens the trade list with the default timeframe ordering.
func BuildHeatmap(trades []models.TradeRecord) *Heatmap {
	return BuildHeatmapWithPriority(trades, DefaultTimeframePriority())
}

// BuildHeatmapWithPriority flattens the trade list ordering rows and
// columns by the supplied priority table.
func BuildHeatmapWithPriority(trades []models.TradeRecord, priority TimeframePriority) *Heatmap {
	h := &Heatmap{
		cells:    make(map[cellKey]*BaseStats),
		priority: priority,
	}

	seenRows := make(map[RowKey]bool)
	seenCols := make(map[string]bool)

	for _, t := range trades {
		key := cellKey{
			HTF:     labelOr(t.HTF),
			PDArray: labelOr(t.PDArray),
			LTF:     labelOr(t.LTF),
		}

		cell, ok := h.cells[key]
		if !ok {
			cell = &BaseStats{}
			h.cells[key] = cell
		}
		cell.add(t)

		row := RowKey{HTF: key.HTF, PDArray: key.PDArray}
		if !seenRows[row] {
			seenRows[row] = true
			h.Rows = append(h.Rows, row)
		}
		if !seenCols[key.LTF] {
			seenCols[key.LTF] = true
			h.Columns = append(h.Columns, key.LTF)
		}
	}

	h.sortAxes()
	return h
}

// sortAxes orders rows and columns coarsest timeframe first. The stable
// sort keeps unrecognized labels in first-seen order after the recognized
// ones.
func (h *Heatmap) sortAxes() {
	sort.SliceStable(h.Rows, func(i, j int) bool {
		ri, rj := h.priority.rank(h.Rows[i].HTF), h.priority.rank(h.Rows[j].HTF)
		if ri != rj {
			return ri < rj
		}
		if h.Rows[i].HTF != h.Rows[j].HTF {
			return false
		}
		return h.Rows[i].PDArray < h.Rows[j].PDArray
	})
	sort.SliceStable(h.Columns, func(i, j int) bool {
		return h.priority.rank(h.Columns[i]) < h.priority.rank(h.Columns[j])
	})
}

// Cell looks up the aggregated stats for one (HTF, PDArray, LTF) triple.
func (h *Heatmap) Cell(htf, pdArray, ltf string) (BaseStats, bool) {
	cell, ok := h.cells[cellKey{HTF: labelOr(htf), PDArray: labelOr(pdArray), LTF: labelOr(ltf)}]
	if !ok {
		return BaseStats{}, false
	}
	return *cell, true
}
