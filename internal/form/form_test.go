package form

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/jonathan/outfit-curator/internal/fixtures"
	"github.com/jonathan/outfit-curator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validState() State {
	return State{
		OccasionType:     "business_casual",
		Weather:          "mild",
		MaxOutfits:       "3",
		ConsiderPrevious: true,
		InventoryText:    `[{"item_id":"top1","item_type":"top","name":"Blue Dress Shirt"}]`,
	}
}

func TestBuildRequest_Payload(t *testing.T) {
	req, err := BuildRequest(validState(), nil)
	require.NoError(t, err)

	data, err := json.Marshal(req)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"user_info": {
			"user_id": "demo-user",
			"body_type": "rectangle",
			"skin_tone": "medium",
			"height_cm": 170,
			"style_preferences": ["casual", "minimalist"],
			"color_preferences": ["blue", "white", "black"],
			"fit_preferences": {}
		},
		"occasion": {
			"occasion_type": "business_casual",
			"weather": "mild",
			"time_of_day": "afternoon",
			"location": "office",
			"dress_code": "business_casual",
			"additional_notes": null
		},
		"inventory": [{"item_id": "top1", "item_type": "top", "name": "Blue Dress Shirt"}],
		"max_outfits": 3,
		"consider_previous_outfits": true
	}`, string(data))
}

func TestBuildRequest_InvalidInventory(t *testing.T) {
	tests := []struct {
		name      string
		inventory string
		contains  string
	}{
		{name: "syntax error", inventory: `[{"item_id": }]`, contains: "Invalid inventory JSON: "},
		{name: "empty text", inventory: ``, contains: "unexpected end of JSON input"},
		{name: "object", inventory: `{"item_id": "top1"}`, contains: "Inventory must be an array"},
		{name: "string", inventory: `"top1"`, contains: "Inventory must be an array"},
		{name: "null", inventory: `null`, contains: "Inventory must be an array"},
		{name: "trailing garbage", inventory: `[] []`, contains: "Invalid inventory JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := validState()
			state.InventoryText = tt.inventory

			req, err := BuildRequest(state, nil)
			require.Error(t, err)
			assert.Nil(t, req)

			var invalid *InvalidInventoryError
			require.ErrorAs(t, err, &invalid)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestBuildRequest_NotArrayUnwraps(t *testing.T) {
	state := validState()
	state.InventoryText = `{}`

	_, err := BuildRequest(state, nil)
	assert.True(t, errors.Is(err, ErrNotArray))
	assert.Equal(t, "Invalid inventory JSON: Inventory must be an array", err.Error())
}

func TestBuildRequest_EmptyArrayIsSentAsArray(t *testing.T) {
	state := validState()
	state.InventoryText = `  []  `

	req, err := BuildRequest(state, nil)
	require.NoError(t, err)

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"inventory":[]`)
}

func TestBuildRequest_ForwardsItemsVerbatim(t *testing.T) {
	state := validState()
	state.InventoryText = `[{"item_id": "x", "custom_field": {"nested": [1, 2]}, "item_type": "hat"}, 42]`

	req, err := BuildRequest(state, nil)
	require.NoError(t, err)
	require.Len(t, req.Inventory, 2)

	assert.JSONEq(t, `{"item_id": "x", "custom_field": {"nested": [1, 2]}, "item_type": "hat"}`, string(req.Inventory[0]))
	assert.JSONEq(t, `42`, string(req.Inventory[1]))
}

func TestBuildRequest_DefaultMaxOutfits(t *testing.T) {
	state := validState()
	state.MaxOutfits = "abc"

	req, err := BuildRequest(state, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, req.MaxOutfits)
}

func TestBuildRequest_FixtureInventory(t *testing.T) {
	text, err := fixtures.InventoryJSON()
	require.NoError(t, err)

	state := validState()
	state.InventoryText = text

	req, err := BuildRequest(state, &Options{StrictInventory: true})
	require.NoError(t, err)
	assert.Len(t, req.Inventory, len(fixtures.Inventory()))
}

func TestBuildRequest_StrictRejectsSchemaViolations(t *testing.T) {
	state := validState()
	state.InventoryText = `[{"item_id": "h1", "item_type": "hat"}]`

	_, err := BuildRequest(state, nil)
	require.NoError(t, err, "lenient mode forwards anything array-shaped")

	_, err = BuildRequest(state, &Options{StrictInventory: true})
	require.Error(t, err)

	var invalid *InvalidInventoryError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), "item_type")
}

func TestBuildRequest_CustomUser(t *testing.T) {
	user := types.UserInfo{
		UserID:   "u-42",
		BodyType: types.BodyOval,
		SkinTone: types.SkinOlive,
		HeightCM: 182,
	}

	req, err := BuildRequest(validState(), &Options{User: &user})
	require.NoError(t, err)
	assert.Equal(t, "u-42", req.UserInfo.UserID)

	user.BodyType = "cube"
	_, err = BuildRequest(validState(), &Options{User: &user})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid user profile")
}

func TestBuildRequest_UnknownOccasionForwarded(t *testing.T) {
	state := validState()
	state.OccasionType = "wedding"
	state.Weather = "foggy"

	req, err := BuildRequest(state, nil)
	require.NoError(t, err)
	assert.Equal(t, types.OccasionType("wedding"), req.Occasion.OccasionType)
	assert.Equal(t, "wedding", req.Occasion.DressCode)
	assert.Equal(t, types.WeatherType("foggy"), req.Occasion.Weather)
}

func TestParseMaxOutfits(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"3", 3},
		{"  4", 4},
		{"\t5\n", 5},
		{"5abc", 5},
		{"3.9", 3},
		{"+7", 7},
		{"-1", -1},
		{"abc", DefaultMaxOutfits},
		{"", DefaultMaxOutfits},
		{"0", DefaultMaxOutfits},
		{"-0", DefaultMaxOutfits},
		{"-", DefaultMaxOutfits},
		{"a12", DefaultMaxOutfits},
		{"99999999999999999999999", math.MaxInt},
		{"-99999999999999999999999", math.MinInt},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseMaxOutfits(tt.input))
		})
	}
}
