package types

import (
	"bytes"
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// UserInfo is the profile of the person the outfits are for.
type UserInfo struct {
	UserID           string            `json:"user_id" validate:"required"`
	BodyType         BodyType          `json:"body_type" validate:"required,oneof=hourglass triangle inverted_triangle rectangle oval diamond"`
	SkinTone         SkinTone          `json:"skin_tone" validate:"required,oneof=fair light medium olive brown dark"`
	HeightCM         float64           `json:"height_cm" validate:"gt=0"`
	Age              *int              `json:"age,omitempty" validate:"omitempty,gt=0"`
	StylePreferences []string          `json:"style_preferences"`
	ColorPreferences []string          `json:"color_preferences"`
	FitPreferences   map[string]string `json:"fit_preferences"`
}

// Validate validates the UserInfo using the validator.
func (u *UserInfo) Validate() error {
	validate := validator.New()
	return validate.Struct(u)
}

// OccasionRequest describes the event an outfit is requested for.
// AdditionalNotes is always serialized, as null when unset.
type OccasionRequest struct {
	OccasionType    OccasionType `json:"occasion_type"`
	Weather         WeatherType  `json:"weather"`
	TimeOfDay       string       `json:"time_of_day"`
	Location        string       `json:"location"`
	DressCode       string       `json:"dress_code"`
	AdditionalNotes *string      `json:"additional_notes"`
}

// RecommendationRequest is the body posted to the recommendation endpoint.
// Inventory elements are forwarded exactly as the user supplied them.
type RecommendationRequest struct {
	UserInfo                UserInfo          `json:"user_info"`
	Occasion                OccasionRequest   `json:"occasion"`
	Inventory               []json.RawMessage `json:"inventory"`
	MaxOutfits              int               `json:"max_outfits"`
	ConsiderPreviousOutfits bool              `json:"consider_previous_outfits"`
}

// FilterInventoryRequest is the body posted to the inventory filter endpoint.
type FilterInventoryRequest struct {
	Inventory []json.RawMessage `json:"inventory"`
	UserInfo  UserInfo          `json:"user_info"`
	Occasion  OccasionRequest   `json:"occasion"`
}

// OutfitItem is the subset of a garment that outfit rendering reads.
type OutfitItem struct {
	ItemID   string       `json:"item_id"`
	Name     string       `json:"name,omitempty"`
	ItemType ClothingType `json:"item_type"`
}

// DisplayName returns the item's name, falling back to its id.
func (i OutfitItem) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.ItemID
}

// Outfit is one recommendation returned by the recommendation service.
// ConfidenceScore is nil when the service omitted it or sent a non-number.
type Outfit struct {
	OutfitID        string       `json:"outfit_id,omitempty"`
	Items           []OutfitItem `json:"items"`
	Occasion        OccasionType `json:"occasion,omitempty"`
	ConfidenceScore *float64     `json:"confidence_score,omitempty"`
	StyleNotes      string       `json:"style_notes,omitempty"`
	CreatedAt       string       `json:"created_at,omitempty"`
}

// UnmarshalJSON decodes an outfit, tolerating a confidence score of any JSON type.
func (o *Outfit) UnmarshalJSON(data []byte) error {
	type outfitAlias Outfit
	aux := struct {
		*outfitAlias
		ConfidenceScore json.RawMessage `json:"confidence_score"`
	}{outfitAlias: (*outfitAlias)(o)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	o.ConfidenceScore = nil
	raw := bytes.TrimSpace(aux.ConfidenceScore)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var score float64
	if json.Unmarshal(raw, &score) == nil {
		o.ConfidenceScore = &score
	}
	return nil
}
