// Package models provides domain models for the trading journal.
package models

// Direction represents the side of a trade.
type Direction string

const (
	DirectionLong  Direction = "LONG"
	DirectionShort Direction = "SHORT"
)

// Outcome represents the result of a trade.
type Outcome string

const (
	OutcomeWin       Outcome = "WIN"
	OutcomeLoss      Outcome = "LOSS"
	OutcomeBreakeven Outcome = "BREAKEVEN"
	OutcomePending   Outcome = "PENDING"
)

// Timeframe labels used for analysis (HTF) and entry (LTF) timeframes.
const (
	TimeframeMonthly = "Monthly"
	TimeframeWeekly  = "Weekly"
	TimeframeDaily   = "Daily"
	TimeframeH4      = "H4"
	TimeframeH1      = "H1"
	TimeframeM30     = "M30"
	TimeframeM15     = "M15"
	TimeframeM5      = "M5"
	TimeframeM3      = "M3"
	TimeframeM1      = "M1"
)

// Session labels for the major trading sessions.
const (
	SessionAsia    = "Asia"
	SessionLondon  = "London"
	SessionNewYork = "New York"
	SessionOverlap = "London/NY Overlap"
)

// PD array labels classifying the price-action structure behind a setup.
const (
	PDArrayFVG            = "Fair Value Gap"
	PDArrayOrderBlock     = "Order Block"
	PDArrayBreaker        = "Breaker"
	PDArrayMitigationBlk  = "Mitigation Block"
	PDArraySwingHighLow   = "Swing High/Low"
	PDArrayPrevDayHighLow = "Prev Day High/Low"
)
