// Package form turns the recommendation form's raw inputs into a request for the
// recommendation service.
package form

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/jonathan/outfit-curator/internal/fixtures"
	"github.com/jonathan/outfit-curator/internal/schemas"
	"github.com/jonathan/outfit-curator/internal/types"
)

// DefaultMaxOutfits is used when the max outfits field holds no usable integer.
const DefaultMaxOutfits = 2

// Field names posted by the form page.
const (
	FieldOccasionType     = "occasion_type"
	FieldWeather          = "weather"
	FieldMaxOutfits       = "max_outfits"
	FieldConsiderPrevious = "consider_previous"
	FieldInventory        = "inventory"
)

// State holds the raw values of the form's inputs at submit time.
type State struct {
	OccasionType     string
	Weather          string
	MaxOutfits       string
	ConsiderPrevious bool
	InventoryText    string
}

// Options configures request building.
type Options struct {
	// User is the profile sent with the request. Nil means the demo user.
	User *types.UserInfo
	// StrictInventory additionally checks each item against the inventory schema.
	StrictInventory bool
}

// DefaultOptions returns the options the form page uses.
func DefaultOptions() *Options {
	return &Options{}
}

// ErrNotArray is the cause of an InvalidInventoryError for JSON that is not an array.
var ErrNotArray = errors.New("Inventory must be an array") //nolint:staticcheck // shown to users verbatim

// BuildRequest validates the form state and assembles the recommendation request.
// It returns an *InvalidInventoryError when the inventory text is not a JSON array.
func BuildRequest(state State, opts *Options) (*types.RecommendationRequest, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	inventory, err := ParseInventory(state.InventoryText, opts.StrictInventory)
	if err != nil {
		return nil, err
	}

	user := fixtures.DemoUser()
	if opts.User != nil {
		user = *opts.User
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("invalid user profile: %w", err)
	}

	occasionType := types.OccasionType(state.OccasionType)
	return &types.RecommendationRequest{
		UserInfo:                user,
		Occasion:                fixtures.Occasion(occasionType, types.WeatherType(state.Weather)),
		Inventory:               inventory,
		MaxOutfits:              ParseMaxOutfits(state.MaxOutfits),
		ConsiderPreviousOutfits: state.ConsiderPrevious,
	}, nil
}

// ParseInventory parses inventory text into its array elements, each kept verbatim.
func ParseInventory(text string, strict bool) ([]json.RawMessage, error) {
	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, &InvalidInventoryError{Message: err.Error(), Cause: err}
	}
	if _, ok := parsed.([]any); !ok {
		return nil, &InvalidInventoryError{Message: ErrNotArray.Error(), Cause: ErrNotArray}
	}

	if strict {
		if err := schemas.ValidateInventory(text); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return nil, &InvalidInventoryError{Message: validationErr.Summary(), Cause: err}
			}
			return nil, err
		}
	}

	items := make([]json.RawMessage, 0)
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, &InvalidInventoryError{Message: err.Error(), Cause: err}
	}
	return items, nil
}

// ParseMaxOutfits reads the leading integer of s, ignoring leading whitespace and
// any trailing characters. Input without an integer, or one that reads as zero,
// yields DefaultMaxOutfits. Values beyond the int range clamp to its bounds.
func ParseMaxOutfits(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return DefaultMaxOutfits
	}

	n, err := strconv.Atoi(s[:end])
	if (err != nil && !errors.Is(err, strconv.ErrRange)) || n == 0 {
		return DefaultMaxOutfits
	}
	return n
}
