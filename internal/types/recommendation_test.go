package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutfit_UnmarshalConfidenceScore(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected *float64
	}{
		{name: "number", payload: `{"items":[],"confidence_score":0.8}`, expected: ptr(0.8)},
		{name: "zero", payload: `{"items":[],"confidence_score":0}`, expected: ptr(0)},
		{name: "missing", payload: `{"items":[]}`, expected: nil},
		{name: "null", payload: `{"items":[],"confidence_score":null}`, expected: nil},
		{name: "string", payload: `{"items":[],"confidence_score":"0.8"}`, expected: nil},
		{name: "bool", payload: `{"items":[],"confidence_score":true}`, expected: nil},
		{name: "object", payload: `{"items":[],"confidence_score":{"v":1}}`, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var outfit Outfit
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &outfit))
			if tt.expected == nil {
				assert.Nil(t, outfit.ConfidenceScore)
				return
			}
			require.NotNil(t, outfit.ConfidenceScore)
			assert.InDelta(t, *tt.expected, *outfit.ConfidenceScore, 1e-9)
		})
	}
}

func TestOutfit_UnmarshalServiceResponse(t *testing.T) {
	payload := `{
		"outfit_id": "b8e6f3",
		"items": [
			{"item_id": "top1", "item_type": "top", "name": "Blue Dress Shirt", "color": "blue", "metadata": {}},
			{"item_id": "bottom1", "item_type": "bottom"}
		],
		"occasion": "business_casual",
		"confidence_score": 0.72,
		"style_notes": "Classic office look",
		"created_at": "2024-05-01T10:00:00.123456"
	}`

	var outfit Outfit
	require.NoError(t, json.Unmarshal([]byte(payload), &outfit))

	assert.Equal(t, "b8e6f3", outfit.OutfitID)
	assert.Equal(t, OccasionBusinessCasual, outfit.Occasion)
	require.Len(t, outfit.Items, 2)
	assert.Equal(t, "Blue Dress Shirt", outfit.Items[0].DisplayName())
	assert.Equal(t, "bottom1", outfit.Items[1].DisplayName())
	assert.Equal(t, ClothingBottom, outfit.Items[1].ItemType)
	assert.Equal(t, "2024-05-01T10:00:00.123456", outfit.CreatedAt)
}

func TestOccasionRequest_NotesSerializeAsNull(t *testing.T) {
	occasion := OccasionRequest{
		OccasionType: OccasionCasual,
		Weather:      WeatherMild,
		TimeOfDay:    "afternoon",
		Location:     "office",
		DressCode:    "casual",
	}

	data, err := json.Marshal(occasion)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"occasion_type": "casual",
		"weather": "mild",
		"time_of_day": "afternoon",
		"location": "office",
		"dress_code": "casual",
		"additional_notes": null
	}`, string(data))
}

func TestUserInfo_Validate(t *testing.T) {
	valid := UserInfo{
		UserID:   "demo-user",
		BodyType: BodyRectangle,
		SkinTone: SkinMedium,
		HeightCM: 170,
	}
	assert.NoError(t, valid.Validate())

	invalid := valid
	invalid.BodyType = "spherical"
	assert.Error(t, invalid.Validate())

	missing := valid
	missing.UserID = ""
	assert.Error(t, missing.Validate())
}

func TestRawInventory(t *testing.T) {
	items := []InventoryItem{{ItemID: "top1", ItemType: ClothingTop, Name: "Tee", IsClean: true, Metadata: map[string]any{}}}

	raw, err := RawInventory(items)
	require.NoError(t, err)
	require.Len(t, raw, 1)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw[0], &decoded))
	assert.Equal(t, "top1", decoded["item_id"])
	assert.Equal(t, true, decoded["is_clean"])
	assert.NotContains(t, decoded, "brand")
}

func ptr(v float64) *float64 {
	return &v
}
