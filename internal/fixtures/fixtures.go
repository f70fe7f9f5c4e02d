// Package fixtures holds the sample wardrobe and demo profile the form starts from.
package fixtures

import (
	"bytes"
	"encoding/json"

	"github.com/jonathan/outfit-curator/internal/types"
)

// DemoUserID identifies the fixed profile every form submission is made for.
const DemoUserID = "demo-user"

// DemoUser returns the demo profile sent with every form submission.
func DemoUser() types.UserInfo {
	return types.UserInfo{
		UserID:           DemoUserID,
		BodyType:         types.BodyRectangle,
		SkinTone:         types.SkinMedium,
		HeightCM:         170,
		StylePreferences: []string{"casual", "minimalist"},
		ColorPreferences: []string{"blue", "white", "black"},
		FitPreferences:   map[string]string{},
	}
}

// Occasion returns the occasion block the form builds for an occasion type and weather.
// The dress code mirrors the occasion type.
func Occasion(occasionType types.OccasionType, weather types.WeatherType) types.OccasionRequest {
	return types.OccasionRequest{
		OccasionType: occasionType,
		Weather:      weather,
		TimeOfDay:    "afternoon",
		Location:     "office",
		DressCode:    string(occasionType),
	}
}

// Inventory returns the sample wardrobe. It contains a complete top, bottom and
// shoes set for every occasion in every weather the form offers except snowy.
func Inventory() []types.InventoryItem {
	items := []types.InventoryItem{
		{
			ItemID: "top1", ItemType: types.ClothingTop, Name: "Blue Dress Shirt",
			Color: "blue", Material: "cotton", Size: "M",
			Style:               []string{"formal", "business"},
			WeatherSuitability:  []types.WeatherType{"cool", "mild", "warm"},
			OccasionSuitability: []types.OccasionType{"business_casual", "casual"},
		},
		{
			ItemID: "bottom1", ItemType: types.ClothingBottom, Name: "Black Dress Pants",
			Color: "black", Material: "wool", Size: "32",
			Style:               []string{"formal", "business"},
			WeatherSuitability:  []types.WeatherType{"cool", "mild"},
			OccasionSuitability: []types.OccasionType{"business_casual", "casual"},
		},
		{
			ItemID: "shoes1", ItemType: types.ClothingShoes, Name: "Black Leather Shoes",
			Color: "black", Material: "leather", Size: "42",
			Style:               []string{"formal", "classic"},
			WeatherSuitability:  []types.WeatherType{"cool", "mild"},
			OccasionSuitability: []types.OccasionType{"business_casual", "casual"},
		},
		{
			ItemID: "top2", ItemType: types.ClothingTop, Name: "White T-Shirt",
			Color: "white", Material: "cotton", Size: "M",
			Style:               []string{"casual", "minimalist"},
			WeatherSuitability:  []types.WeatherType{"warm", "hot", "mild"},
			OccasionSuitability: []types.OccasionType{"casual"},
		},
		{
			ItemID: "bottom2", ItemType: types.ClothingBottom, Name: "Dark Blue Jeans",
			Color: "blue", Material: "denim", Size: "32",
			Style:               []string{"casual"},
			WeatherSuitability:  []types.WeatherType{"cool", "mild", "warm"},
			OccasionSuitability: []types.OccasionType{"casual"},
		},
		{
			ItemID: "shoes2", ItemType: types.ClothingShoes, Name: "White Sneakers",
			Color: "white", Material: "synthetic", Size: "42",
			Style:               []string{"casual", "minimalist"},
			WeatherSuitability:  []types.WeatherType{"mild", "warm", "hot"},
			OccasionSuitability: []types.OccasionType{"casual"},
		},
		{
			ItemID: "outer1", ItemType: types.ClothingOuterwear, Name: "Navy Raincoat",
			Color: "navy", Material: "polyester", Size: "M",
			Style:               []string{"casual", "classic"},
			WeatherSuitability:  []types.WeatherType{"rainy", "cool", "cold"},
			OccasionSuitability: []types.OccasionType{"casual", "business_casual"},
		},
		{
			ItemID: "top3", ItemType: types.ClothingTop, Name: "Black Silk Shirt",
			Color: "black", Material: "silk", Size: "M",
			Style:               []string{"party", "formal"},
			WeatherSuitability:  []types.WeatherType{"mild", "warm"},
			OccasionSuitability: []types.OccasionType{"party", "formal"},
		},
		{
			ItemID: "bottom3", ItemType: types.ClothingBottom, Name: "Slim Chinos",
			Color: "khaki", Material: "cotton", Size: "32",
			Style:               []string{"casual", "smart_casual"},
			WeatherSuitability:  []types.WeatherType{"mild", "warm"},
			OccasionSuitability: []types.OccasionType{"party", "business_casual", "casual"},
		},
		{
			ItemID: "shoes3", ItemType: types.ClothingShoes, Name: "Brown Brogues",
			Color: "brown", Material: "leather", Size: "42",
			Style:               []string{"classic", "business"},
			WeatherSuitability:  []types.WeatherType{"mild", "cool"},
			OccasionSuitability: []types.OccasionType{"business_casual", "party"},
		},
		{
			ItemID: "top4", ItemType: types.ClothingTop, Name: "Moisture-Wicking Tee",
			Color: "gray", Material: "polyester", Size: "M",
			Style:               []string{"sport"},
			WeatherSuitability:  []types.WeatherType{"warm", "hot"},
			OccasionSuitability: []types.OccasionType{"sporty"},
		},
		{
			ItemID: "bottom4", ItemType: types.ClothingBottom, Name: "Running Shorts",
			Color: "black", Material: "synthetic", Size: "M",
			Style:               []string{"sport"},
			WeatherSuitability:  []types.WeatherType{"warm", "hot"},
			OccasionSuitability: []types.OccasionType{"sporty"},
		},
		{
			ItemID: "shoes4", ItemType: types.ClothingShoes, Name: "Running Shoes",
			Color: "blue", Material: "mesh", Size: "42",
			Style:               []string{"sport"},
			WeatherSuitability:  []types.WeatherType{"mild", "warm", "hot"},
			OccasionSuitability: []types.OccasionType{"sporty"},
		},
		{
			ItemID: "shoes5", ItemType: types.ClothingShoes, Name: "Black Chelsea Boots",
			Color: "black", Material: "leather", Size: "42",
			Style:               []string{"classic"},
			WeatherSuitability:  []types.WeatherType{"cold", "cool", "mild"},
			OccasionSuitability: []types.OccasionType{"business_casual", "casual", "party"},
		},
		{
			ItemID: "top5", ItemType: types.ClothingTop, Name: "Navy Dress Shirt",
			Color: "navy", Material: "cotton", Size: "M",
			Style:               []string{"formal", "evening"},
			WeatherSuitability:  []types.WeatherType{"cool", "mild", "warm"},
			OccasionSuitability: []types.OccasionType{"evening", "formal"},
		},
		{
			ItemID: "bottom5", ItemType: types.ClothingBottom, Name: "Charcoal Dress Pants",
			Color: "gray", Material: "wool", Size: "32",
			Style:               []string{"formal", "evening"},
			WeatherSuitability:  []types.WeatherType{"cool", "mild"},
			OccasionSuitability: []types.OccasionType{"evening", "formal"},
		},
		{
			ItemID: "shoes6", ItemType: types.ClothingShoes, Name: "Patent Leather Oxfords",
			Color: "black", Material: "leather", Size: "42",
			Style:               []string{"formal", "evening"},
			WeatherSuitability:  []types.WeatherType{"cool", "mild", "warm"},
			OccasionSuitability: []types.OccasionType{"evening", "formal"},
		},
		{
			ItemID: "top6", ItemType: types.ClothingTop, Name: "White Linen Shirt",
			Color: "white", Material: "linen", Size: "M",
			Style:               []string{"casual", "beach"},
			WeatherSuitability:  []types.WeatherType{"warm", "hot"},
			OccasionSuitability: []types.OccasionType{"beach", "casual"},
		},
		{
			ItemID: "bottom6", ItemType: types.ClothingBottom, Name: "Beige Shorts",
			Color: "beige", Material: "cotton", Size: "M",
			Style:               []string{"casual", "beach"},
			WeatherSuitability:  []types.WeatherType{"warm", "hot"},
			OccasionSuitability: []types.OccasionType{"beach", "casual"},
		},
		{
			ItemID: "shoes7", ItemType: types.ClothingShoes, Name: "Flip Flops",
			Color: "black", Material: "rubber", Size: "42",
			Style:               []string{"casual", "beach"},
			WeatherSuitability:  []types.WeatherType{"warm", "hot"},
			OccasionSuitability: []types.OccasionType{"beach"},
		},
		{
			ItemID: "shoes8", ItemType: types.ClothingShoes, Name: "Rain Boots",
			Color: "black", Material: "rubber", Size: "42",
			Style:               []string{"casual", "classic"},
			WeatherSuitability:  []types.WeatherType{"rainy", "cold", "cool"},
			OccasionSuitability: []types.OccasionType{"casual", "business_casual"},
		},
		{
			ItemID: "outer2", ItemType: types.ClothingOuterwear, Name: "Wool Overcoat",
			Color: "black", Material: "wool", Size: "M",
			Style:               []string{"classic", "formal"},
			WeatherSuitability:  []types.WeatherType{"cold", "cool"},
			OccasionSuitability: []types.OccasionType{"formal", "evening", "business_casual"},
		},
		{
			ItemID: "top_casual_cold", ItemType: types.ClothingTop, Name: "Fleece Hoodie",
			Color: "navy", Material: "fleece", Size: "M",
			Style:               []string{"casual"},
			WeatherSuitability:  []types.WeatherType{"cold", "cool"},
			OccasionSuitability: []types.OccasionType{"casual"},
		},
		{
			ItemID: "outer_casual_cold", ItemType: types.ClothingOuterwear, Name: "Puffer Jacket",
			Color: "black", Material: "synthetic", Size: "M",
			Style:               []string{"casual"},
			WeatherSuitability:  []types.WeatherType{"cold", "cool"},
			OccasionSuitability: []types.OccasionType{"casual"},
		},
		{
			ItemID: "acc1", ItemType: types.ClothingAccessory, Name: "Leather Belt",
			Color: "black", Material: "leather", Size: "L",
			Style:               []string{"classic", "minimalist"},
			WeatherSuitability:  allWeather(),
			OccasionSuitability: []types.OccasionType{"business_casual", "casual", "formal", "party"},
		},
		{
			ItemID: "top_formal_all", ItemType: types.ClothingTop, Name: "All-Weather Formal Shirt",
			Color: "white", Material: "performance_cotton", Size: "M",
			Style:               []string{"formal"},
			WeatherSuitability:  allWeather(),
			OccasionSuitability: []types.OccasionType{"formal"},
		},
		{
			ItemID: "bottom_formal_all", ItemType: types.ClothingBottom, Name: "All-Weather Formal Trousers",
			Color: "charcoal", Material: "tech_wool", Size: "32",
			Style:               []string{"formal"},
			WeatherSuitability:  allWeather(),
			OccasionSuitability: []types.OccasionType{"formal"},
		},
		{
			ItemID: "shoes_formal_all", ItemType: types.ClothingShoes, Name: "Waterproof Formal Oxfords",
			Color: "black", Material: "treated_leather", Size: "42",
			Style:               []string{"formal"},
			WeatherSuitability:  allWeather(),
			OccasionSuitability: []types.OccasionType{"formal"},
		},
		{
			ItemID: "top_biz_all", ItemType: types.ClothingTop, Name: "All-Weather Oxford",
			Color: "light_blue", Material: "performance_cotton", Size: "M",
			Style:               []string{"business", "classic"},
			WeatherSuitability:  allWeather(),
			OccasionSuitability: []types.OccasionType{"business_casual"},
		},
		{
			ItemID: "bottom_biz_all", ItemType: types.ClothingBottom, Name: "Stretch Chinos",
			Color: "navy", Material: "tech_cotton", Size: "32",
			Style:               []string{"business", "classic"},
			WeatherSuitability:  allWeather(),
			OccasionSuitability: []types.OccasionType{"business_casual"},
		},
		{
			ItemID: "shoes_biz_all", ItemType: types.ClothingShoes, Name: "All-Weather Derbies",
			Color: "brown", Material: "treated_leather", Size: "42",
			Style:               []string{"classic", "business"},
			WeatherSuitability:  allWeather(),
			OccasionSuitability: []types.OccasionType{"business_casual"},
		},
		{
			ItemID: "top_casual_all", ItemType: types.ClothingTop, Name: "Tech Tee",
			Color: "gray", Material: "performance_poly", Size: "M",
			Style:               []string{"casual", "minimalist"},
			WeatherSuitability:  allWeather(),
			OccasionSuitability: []types.OccasionType{"casual"},
		},
		{
			ItemID: "bottom_casual_all", ItemType: types.ClothingBottom, Name: "All-Weather Jeans",
			Color: "dark_blue", Material: "tech_denim", Size: "32",
			Style:               []string{"casual"},
			WeatherSuitability:  allWeather(),
			OccasionSuitability: []types.OccasionType{"casual"},
		},
		{
			ItemID: "shoes_casual_all", ItemType: types.ClothingShoes, Name: "Weatherproof Sneakers",
			Color: "white", Material: "treated_mesh", Size: "42",
			Style:               []string{"casual", "minimalist"},
			WeatherSuitability:  allWeather(),
			OccasionSuitability: []types.OccasionType{"casual"},
		},
		{
			ItemID: "top_sporty_all", ItemType: types.ClothingTop, Name: "All-Weather Training Tee",
			Color: "black", Material: "performance_poly", Size: "M",
			Style:               []string{"sport"},
			WeatherSuitability:  allWeather(),
			OccasionSuitability: []types.OccasionType{"sporty"},
		},
		{
			ItemID: "bottom_sporty_all", ItemType: types.ClothingBottom, Name: "All-Weather Joggers",
			Color: "black", Material: "tech_poly", Size: "M",
			Style:               []string{"sport"},
			WeatherSuitability:  allWeather(),
			OccasionSuitability: []types.OccasionType{"sporty"},
		},
		{
			ItemID: "shoes_sporty_all", ItemType: types.ClothingShoes, Name: "Trail Running Shoes",
			Color: "gray", Material: "treated_mesh", Size: "42",
			Style:               []string{"sport"},
			WeatherSuitability:  allWeather(),
			OccasionSuitability: []types.OccasionType{"sporty"},
		},
		{
			ItemID: "top_evening_all", ItemType: types.ClothingTop, Name: "Evening Dress Shirt (All-Weather)",
			Color: "black", Material: "performance_cotton", Size: "M",
			Style:               []string{"evening", "formal"},
			WeatherSuitability:  allWeather(),
			OccasionSuitability: []types.OccasionType{"evening"},
		},
		{
			ItemID: "bottom_evening_all", ItemType: types.ClothingBottom, Name: "Evening Dress Trousers",
			Color: "black", Material: "tech_wool", Size: "32",
			Style:               []string{"evening", "formal"},
			WeatherSuitability:  allWeather(),
			OccasionSuitability: []types.OccasionType{"evening"},
		},
		{
			ItemID: "shoes_evening_all", ItemType: types.ClothingShoes, Name: "Evening Oxfords (Waterproof)",
			Color: "black", Material: "treated_leather", Size: "42",
			Style:               []string{"evening", "formal"},
			WeatherSuitability:  allWeather(),
			OccasionSuitability: []types.OccasionType{"evening"},
		},
		{
			ItemID: "top_beach_all", ItemType: types.ClothingTop, Name: "All-Weather Beach Shirt",
			Color: "white", Material: "quick_dry", Size: "M",
			Style:               []string{"beach", "casual"},
			WeatherSuitability:  allWeather(),
			OccasionSuitability: []types.OccasionType{"beach"},
		},
		{
			ItemID: "bottom_beach_all", ItemType: types.ClothingBottom, Name: "Hybrid Swim Shorts",
			Color: "navy", Material: "quick_dry", Size: "M",
			Style:               []string{"beach", "casual"},
			WeatherSuitability:  allWeather(),
			OccasionSuitability: []types.OccasionType{"beach"},
		},
		{
			ItemID: "shoes_beach_all", ItemType: types.ClothingShoes, Name: "Water Sandals",
			Color: "black", Material: "rubber", Size: "42",
			Style:               []string{"beach", "casual"},
			WeatherSuitability:  allWeather(),
			OccasionSuitability: []types.OccasionType{"beach"},
		},
		{
			ItemID: "top_party_all", ItemType: types.ClothingTop, Name: "All-Weather Party Shirt",
			Color: "burgundy", Material: "performance_blend", Size: "M",
			Style:               []string{"party", "classic"},
			WeatherSuitability:  allWeather(),
			OccasionSuitability: []types.OccasionType{"party"},
		},
		{
			ItemID: "bottom_party_all", ItemType: types.ClothingBottom, Name: "Party Trousers",
			Color: "black", Material: "tech_wool", Size: "32",
			Style:               []string{"party", "classic"},
			WeatherSuitability:  allWeather(),
			OccasionSuitability: []types.OccasionType{"party"},
		},
		{
			ItemID: "shoes_party_all", ItemType: types.ClothingShoes, Name: "Party Loafers (Weatherproof)",
			Color: "black", Material: "treated_leather", Size: "42",
			Style:               []string{"party", "classic"},
			WeatherSuitability:  allWeather(),
			OccasionSuitability: []types.OccasionType{"party"},
		},
	}

	for i := range items {
		items[i].IsClean = true
		items[i].Metadata = map[string]any{}
	}
	return items
}

// InventoryJSON returns the sample wardrobe as the two-space indented JSON the
// form's inventory field is pre-filled with.
func InventoryJSON() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Inventory()); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func allWeather() []types.WeatherType {
	return []types.WeatherType{"cool", "mild", "warm", "hot", "cold", "rainy"}
}
