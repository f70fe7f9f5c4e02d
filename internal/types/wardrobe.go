// Package types provides type definitions for structured data used throughout the outfit curator.
package types

import "encoding/json"

// ClothingType is the garment category of an inventory item.
type ClothingType string

// Clothing categories understood by the recommendation service.
const (
	ClothingTop       ClothingType = "top"
	ClothingBottom    ClothingType = "bottom"
	ClothingDress     ClothingType = "dress"
	ClothingOuterwear ClothingType = "outerwear"
	ClothingShoes     ClothingType = "shoes"
	ClothingAccessory ClothingType = "accessory"
)

// OccasionType is the kind of event an outfit is requested for.
type OccasionType string

// Occasion types understood by the recommendation service.
const (
	OccasionFormal         OccasionType = "formal"
	OccasionCasual         OccasionType = "casual"
	OccasionBusinessCasual OccasionType = "business_casual"
	OccasionSporty         OccasionType = "sporty"
	OccasionEvening        OccasionType = "evening"
	OccasionBeach          OccasionType = "beach"
	OccasionParty          OccasionType = "party"
)

// WeatherType is the weather condition an outfit must suit.
type WeatherType string

// Weather conditions understood by the recommendation service.
const (
	WeatherHot   WeatherType = "hot"
	WeatherWarm  WeatherType = "warm"
	WeatherMild  WeatherType = "mild"
	WeatherCool  WeatherType = "cool"
	WeatherCold  WeatherType = "cold"
	WeatherRainy WeatherType = "rainy"
	WeatherSnowy WeatherType = "snowy"
)

// BodyType describes a user's body shape.
type BodyType string

// Body shapes accepted in a user profile.
const (
	BodyHourglass        BodyType = "hourglass"
	BodyTriangle         BodyType = "triangle"
	BodyInvertedTriangle BodyType = "inverted_triangle"
	BodyRectangle        BodyType = "rectangle"
	BodyOval             BodyType = "oval"
	BodyDiamond          BodyType = "diamond"
)

// SkinTone describes a user's skin tone.
type SkinTone string

// Skin tones accepted in a user profile.
const (
	SkinFair   SkinTone = "fair"
	SkinLight  SkinTone = "light"
	SkinMedium SkinTone = "medium"
	SkinOlive  SkinTone = "olive"
	SkinBrown  SkinTone = "brown"
	SkinDark   SkinTone = "dark"
)

// OccasionTypes lists every occasion in the order the form offers them.
func OccasionTypes() []OccasionType {
	return []OccasionType{
		OccasionCasual,
		OccasionBusinessCasual,
		OccasionFormal,
		OccasionSporty,
		OccasionEvening,
		OccasionBeach,
		OccasionParty,
	}
}

// WeatherTypes lists every weather condition in the order the form offers them.
func WeatherTypes() []WeatherType {
	return []WeatherType{
		WeatherMild,
		WeatherWarm,
		WeatherHot,
		WeatherCool,
		WeatherCold,
		WeatherRainy,
		WeatherSnowy,
	}
}

// InventoryItem is a single garment in a user's wardrobe.
// Field order matches the wire order used by the form's fixture text.
type InventoryItem struct {
	ItemID              string         `json:"item_id"`
	ItemType            ClothingType   `json:"item_type"`
	Name                string         `json:"name"`
	Brand               string         `json:"brand,omitempty"`
	Color               string         `json:"color"`
	Pattern             string         `json:"pattern,omitempty"`
	Material            string         `json:"material"`
	Size                string         `json:"size"`
	Style               []string       `json:"style"`
	WeatherSuitability  []WeatherType  `json:"weather_suitability"`
	OccasionSuitability []OccasionType `json:"occasion_suitability"`
	ImageURL            string         `json:"image_url,omitempty"`
	LastWorn            string         `json:"last_worn,omitempty"`
	IsClean             bool           `json:"is_clean"`
	Metadata            map[string]any `json:"metadata"`
}

// RawInventory converts typed items into the opaque form the request carries.
func RawInventory(items []InventoryItem) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		out = append(out, data)
	}
	return out, nil
}
