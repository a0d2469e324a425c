package prompt

import (
	"strconv"
	"strings"

	"github.com/sbilibin2017/fiton/internal/models"
)

// BuildTryOnPrompt describes the user's body and the selected look as a
// natural-language prompt for an image generation model.
// The output depends only on its inputs.
func BuildTryOnPrompt(m *models.MeasurementDB, w *models.Wardrobe) string {
	if m == nil {
		m = &models.MeasurementDB{}
	}
	if w == nil {
		w = &models.Wardrobe{}
	}

	var sb strings.Builder
	sb.WriteString("A professional full-body fashion photograph of an adult ")

	gender := str(m.Gender)
	if gender != "" {
		sb.WriteString(strings.ToLower(gender) + " ")
	}

	sb.WriteString("model standing upright. ")
	sb.WriteString("Studio lighting, neutral gray background, fashion photography style. ")

	if skin := str(m.SkinColor); skin != "" {
		sb.WriteString(skin + " complexion. ")
	}

	sb.WriteString("Body proportions: ")

	if m.Height != nil && m.Weight != nil {
		sb.WriteString(BodyType(*m.Height, *m.Weight) + " build, ")
		sb.WriteString("approximately " + formatNumber(*m.Height) + "cm tall. ")
	}

	switch {
	case strings.EqualFold(gender, "male"):
		sb.WriteString("Masculine physique. ")
	case strings.EqualFold(gender, "female"):
		sb.WriteString("Feminine physique. ")
	}

	if m.Waist != nil && m.Hips != nil {
		sb.WriteString("Proportions suited for " + formatNumber(*m.Waist) + "cm waist clothing. ")
	}

	if desc := str(m.Description); desc != "" {
		sb.WriteString(desc + " ")
	}

	sb.WriteString("Wearing: ")
	if w.FullOutfitClothes != nil {
		sb.WriteString("a stylish " + str(w.FullOutfitClothes.Color) + " " + w.FullOutfitClothes.Name + ". ")
	} else {
		if w.TopClothes != nil {
			sb.WriteString("a " + str(w.TopClothes.Color) + " " + w.TopClothes.Name + ", ")
		}
		if w.BottomClothes != nil {
			sb.WriteString("paired with " + str(w.BottomClothes.Color) + " " + w.BottomClothes.Name + ". ")
		}
	}

	if acc := str(w.Accessories); acc != "" {
		sb.WriteString("Accessories: " + acc + ". ")
	}

	sb.WriteString("High-quality fashion photography, professional lighting, sharp details.")
	return sb.String()
}

// BodyType maps BMI (weight kg / height m squared) to a coarse build descriptor.
func BodyType(heightCm, weightKg float64) string {
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)

	switch {
	case bmi < 18.5:
		return "slim"
	case bmi < 25:
		return "average"
	case bmi < 30:
		return "athletic"
	default:
		return "curvy"
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
