package prompt

import (
	"testing"

	"github.com/sbilibin2017/fiton/internal/models"
	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }
func s(v string) *string { return &v }

func TestBodyType(t *testing.T) {
	tests := []struct {
		name   string
		height float64
		weight float64
		want   string
	}{
		{"Slim", 180, 55, "slim"},
		{"Average", 175, 70, "average"},
		{"Athletic", 180, 90, "athletic"},
		{"Curvy", 160, 90, "curvy"},
		{"BoundaryAverage", 100, 18.5, "average"},
		{"BoundaryAthletic", 100, 25, "athletic"},
		{"BoundaryCurvy", 100, 30, "curvy"},
		{"ZeroHeight", 0, 70, "curvy"},
		{"ZeroHeightAndWeight", 0, 0, "curvy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BodyType(tt.height, tt.weight))
		})
	}
}

func TestBuildTryOnPrompt_BuildPhrases(t *testing.T) {
	w := &models.Wardrobe{FullOutfitClothes: &models.OutfitDB{Name: "Dress", Color: s("Red")}}

	slim := BuildTryOnPrompt(&models.MeasurementDB{Height: f(180), Weight: f(55)}, w)
	assert.Contains(t, slim, "slim build")
	assert.Contains(t, slim, "approximately 180cm tall. ")

	curvy := BuildTryOnPrompt(&models.MeasurementDB{Height: f(160), Weight: f(90)}, w)
	assert.Contains(t, curvy, "curvy build")

	zero := BuildTryOnPrompt(&models.MeasurementDB{Height: f(0), Weight: f(70)}, w)
	assert.Contains(t, zero, "Body proportions: curvy build, approximately 0cm tall. ")
}

func TestBuildTryOnPrompt_SkinToneAndFullOutfit(t *testing.T) {
	m := &models.MeasurementDB{
		Height:    f(170),
		Weight:    f(70),
		SkinColor: s("olive"),
		Waist:     f(80),
		Hips:      f(95),
	}
	w := &models.Wardrobe{
		FullOutfitClothes: &models.OutfitDB{Name: "Dress", Color: s("Red")},
		TopClothes:        &models.OutfitDB{Name: "Shirt", Color: s("Blue")},
	}

	got := BuildTryOnPrompt(m, w)

	assert.Contains(t, got, "olive complexion")
	assert.Contains(t, got, "a stylish Red Dress")
	assert.Contains(t, got, "Proportions suited for 80cm waist clothing. ")
	assert.NotContains(t, got, "Blue Shirt")
}

func TestBuildTryOnPrompt_Exact(t *testing.T) {
	m := &models.MeasurementDB{
		Height:      f(182.5),
		Weight:      f(80),
		Gender:      s("Male"),
		SkinColor:   s("fair"),
		Description: s("Short dark hair."),
	}
	w := &models.Wardrobe{
		WardrobeDB:    models.WardrobeDB{Accessories: s("Watch")},
		TopClothes:    &models.OutfitDB{Name: "T-Shirt", Color: s("White")},
		BottomClothes: &models.OutfitDB{Name: "Jeans", Color: s("Blue")},
	}

	want := "A professional full-body fashion photograph of an adult male model standing upright. " +
		"Studio lighting, neutral gray background, fashion photography style. " +
		"fair complexion. " +
		"Body proportions: average build, approximately 182.5cm tall. " +
		"Masculine physique. " +
		"Short dark hair. " +
		"Wearing: a White T-Shirt, paired with Blue Jeans. " +
		"Accessories: Watch. " +
		"High-quality fashion photography, professional lighting, sharp details."

	assert.Equal(t, want, BuildTryOnPrompt(m, w))
}

func TestBuildTryOnPrompt_Minimal(t *testing.T) {
	want := "A professional full-body fashion photograph of an adult model standing upright. " +
		"Studio lighting, neutral gray background, fashion photography style. " +
		"Body proportions: Wearing: High-quality fashion photography, professional lighting, sharp details."

	assert.Equal(t, want, BuildTryOnPrompt(&models.MeasurementDB{}, &models.Wardrobe{}))
	assert.Equal(t, want, BuildTryOnPrompt(nil, nil))
}

func TestBuildTryOnPrompt_Deterministic(t *testing.T) {
	m := &models.MeasurementDB{Height: f(165), Weight: f(60), Gender: s("female")}
	w := &models.Wardrobe{TopClothes: &models.OutfitDB{Name: "Blouse", Color: s("Green")}}

	first := BuildTryOnPrompt(m, w)
	assert.Equal(t, first, BuildTryOnPrompt(m, w))
	assert.Contains(t, first, "adult female model")
	assert.Contains(t, first, "Feminine physique. ")
}
