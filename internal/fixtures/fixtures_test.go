package fixtures

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/outfit-curator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryJSON_MatchesGolden(t *testing.T) {
	golden, err := os.ReadFile(filepath.Join("testdata", "inventory.golden.json"))
	require.NoError(t, err)

	text, err := InventoryJSON()
	require.NoError(t, err)
	assert.Equal(t, string(golden), text)
}

func TestInventory_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, item := range Inventory() {
		assert.False(t, seen[item.ItemID], "duplicate item id %s", item.ItemID)
		seen[item.ItemID] = true
		assert.True(t, item.IsClean)
		assert.NotNil(t, item.Metadata)
	}
	assert.Len(t, seen, 46)
}

func TestInventory_CoversEveryOccasionAndWeather(t *testing.T) {
	inventory := Inventory()
	required := []types.ClothingType{types.ClothingTop, types.ClothingBottom, types.ClothingShoes}

	for _, occasion := range types.OccasionTypes() {
		for _, weather := range types.WeatherTypes() {
			if weather == types.WeatherSnowy {
				continue
			}
			for _, clothing := range required {
				assert.True(t, hasItem(inventory, clothing, occasion, weather),
					"no %s for %s in %s weather", clothing, occasion, weather)
			}
		}
	}
}

func TestInventory_ReturnsFreshCopies(t *testing.T) {
	first := Inventory()
	first[0].Style[0] = "mutated"
	first[0].Metadata["k"] = "v"

	second := Inventory()
	assert.Equal(t, "formal", second[0].Style[0])
	assert.Empty(t, second[0].Metadata)
}

func TestDemoUser(t *testing.T) {
	user := DemoUser()
	require.NoError(t, user.Validate())

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"user_id": "demo-user",
		"body_type": "rectangle",
		"skin_tone": "medium",
		"height_cm": 170,
		"style_preferences": ["casual", "minimalist"],
		"color_preferences": ["blue", "white", "black"],
		"fit_preferences": {}
	}`, string(data))
}

func TestOccasion_DressCodeMirrorsOccasion(t *testing.T) {
	occasion := Occasion(types.OccasionParty, types.WeatherRainy)
	assert.Equal(t, "party", occasion.DressCode)
	assert.Equal(t, "afternoon", occasion.TimeOfDay)
	assert.Equal(t, "office", occasion.Location)
	assert.Nil(t, occasion.AdditionalNotes)
}

func hasItem(inventory []types.InventoryItem, clothing types.ClothingType, occasion types.OccasionType, weather types.WeatherType) bool {
	for _, item := range inventory {
		if item.ItemType != clothing {
			continue
		}
		if containsOccasion(item.OccasionSuitability, occasion) && containsWeather(item.WeatherSuitability, weather) {
			return true
		}
	}
	return false
}

func containsOccasion(list []types.OccasionType, want types.OccasionType) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}

func containsWeather(list []types.WeatherType, want types.WeatherType) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
