// Package grade maps a finished run's elapsed time to a grade tier.
package grade

import (
	"math"
	"strconv"
)

// Tier is a letter grade.
type Tier string

const (
	TierS Tier = "S"
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
)

// Grade is the tier plus the headline and comment shown on the result screen.
type Grade struct {
	Tier    Tier
	Title   string
	Comment string
}

type threshold struct {
	maxSeconds float64
	grade      Grade
}

// thresholds are checked in ascending order; the first match wins.
var thresholds = []threshold{
	{60, Grade{Tier: TierS, Title: "元素記号マスター!!", Comment: "すごい！反射神経も知識もバッチリ。もうあなたは元素記号マスター！"}},
	{90, Grade{Tier: TierA, Title: "すばらしい！", Comment: "とても良いペース！あと少しでSも見えてきます。"}},
	{120, Grade{Tier: TierB, Title: "順調!", Comment: "迷った問題を復習すると、タイムがぐっと縮みます。"}},
}

var fallback = Grade{Tier: TierC, Title: "これから伸びる", Comment: "大丈夫、伸びしろたっぷり！まずは1〜10を完璧にしてみよう。"}

// For returns the grade for a run that took seconds.
func For(seconds float64) Grade {
	for _, t := range thresholds {
		if seconds <= t.maxSeconds {
			return t.grade
		}
	}
	return fallback
}

// FormatSeconds renders seconds rounded to one decimal place.
func FormatSeconds(seconds float64) string {
	rounded := math.Round(seconds*10) / 10
	return strconv.FormatFloat(rounded, 'f', 1, 64)
}
