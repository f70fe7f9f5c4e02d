package rendering

import (
	"fmt"
	"math"
	"strconv"

	"github.com/jonathan/outfit-curator/internal/types"
)

// EmptyMessage is shown when the service recommends no outfits.
const EmptyMessage = "No outfits found. Try adjusting inputs or inventory."

// ScorePlaceholder is the badge text for an outfit without a numeric score.
const ScorePlaceholder = "—"

// LoadingMessage is shown while a recommendation request is in flight.
const LoadingMessage = "Generating recommendations..."

// unknownItemType labels items the service returned without a type.
const unknownItemType = "unknown"

// ResultKind identifies which panel a Result renders as.
type ResultKind string

// Result kinds.
const (
	ResultError   ResultKind = "error"
	ResultEmpty   ResultKind = "empty"
	ResultOutfits ResultKind = "outfits"
)

// Result is the outcome of one form submission, ready for presentation.
// Exactly one of Message (error and empty kinds) or Cards (outfits kind) is set.
type Result struct {
	Kind    ResultKind `json:"kind"`
	Message string     `json:"message,omitempty"`
	Cards   []Card     `json:"cards,omitempty"`
}

// Card presents a single outfit.
type Card struct {
	Number int        `json:"number"`
	Title  string     `json:"title"`
	Badge  string     `json:"badge"`
	Items  []CardItem `json:"items"`
}

// CardItem is one line of an outfit card.
type CardItem struct {
	Label    string `json:"label"`
	ItemType string `json:"item_type"`
}

func (i CardItem) String() string {
	return fmt.Sprintf("%s (%s)", i.Label, i.ItemType)
}

// RenderOutfits builds the result for a successful response.
// Cards keep response order and are numbered from 1.
func RenderOutfits(outfits []types.Outfit) *Result {
	if len(outfits) == 0 {
		return &Result{Kind: ResultEmpty, Message: EmptyMessage}
	}

	cards := make([]Card, 0, len(outfits))
	for i, outfit := range outfits {
		items := make([]CardItem, 0, len(outfit.Items))
		for _, item := range outfit.Items {
			itemType := string(item.ItemType)
			if itemType == "" {
				itemType = unknownItemType
			}
			items = append(items, CardItem{Label: item.DisplayName(), ItemType: itemType})
		}

		cards = append(cards, Card{
			Number: i + 1,
			Title:  fmt.Sprintf("Outfit #%d", i+1),
			Badge:  ScoreBadge(outfit.ConfidenceScore),
			Items:  items,
		})
	}

	return &Result{Kind: ResultOutfits, Cards: cards}
}

// ErrorResult builds the result for a failed submission.
func ErrorResult(err error) *Result {
	return &Result{Kind: ResultError, Message: err.Error()}
}

// ScoreBadge formats a confidence score as a whole percentage, rounding halves up.
func ScoreBadge(score *float64) string {
	if score == nil || math.IsNaN(*score) || math.IsInf(*score, 0) {
		return ScorePlaceholder
	}
	return strconv.FormatFloat(math.Floor(*score*100+0.5), 'f', 0, 64) + "%"
}
