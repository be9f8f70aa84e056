package theory

import (
	"strconv"
	"strings"
)

var romanNumerals = [7]string{"I", "II", "III", "IV", "V", "VI", "VII"}

const (
	flatMarker       = "b"
	diminishedMarker = "°"
	halfDimMarker    = "ø"
	augmentedMarker  = "+"
)

// RenderNumeral formats a Roman numeral from its enums.
// Minor and diminished chords use lower case; everything else upper case.
func RenderNumeral(degree int, borrowed bool, quality Quality, ext Extension) string {
	if degree < 0 || degree >= len(romanNumerals) {
		return ""
	}
	base := romanNumerals[degree]
	var b strings.Builder
	if borrowed {
		b.WriteString(flatMarker)
	}

	switch quality {
	case QualityMinor:
		b.WriteString(strings.ToLower(base))
		writeExtension(&b, ext)
	case QualityDiminished:
		b.WriteString(strings.ToLower(base))
		b.WriteString(diminishedMarker)
		writeExtension(&b, ext)
	case QualityAugmented:
		b.WriteString(base)
		b.WriteString(augmentedMarker)
		writeExtension(&b, ext)
	case QualitySus2, QualitySus4:
		b.WriteString(base)
		writeExtension(&b, ext)
		b.WriteString(string(quality))
	case QualityDominant:
		b.WriteString(base)
		if ext == ExtensionNone {
			ext = ExtensionSeventh
		}
		writeExtension(&b, ext)
	default:
		b.WriteString(base)
		writeExtension(&b, ext)
	}
	return b.String()
}

// RenderName formats a chord name such as "Dm7", "B°", "Bb" or "Gsus4"
func RenderName(root PitchClass, spelling Spelling, quality Quality, ext Extension) string {
	var b strings.Builder
	b.WriteString(NoteName(root, spelling))

	if ext == ExtensionSeventh {
		switch quality {
		case QualityDiminished:
			b.WriteString(diminishedMarker + "7")
		case QualityMinor:
			b.WriteString("m7")
		case QualitySus2, QualitySus4:
			b.WriteString("7" + string(quality))
		default:
			b.WriteString("7")
		}
		return b.String()
	}

	switch quality {
	case QualityMinor:
		b.WriteString("m")
	case QualityDiminished:
		b.WriteString(diminishedMarker)
	case QualityAugmented:
		b.WriteString(augmentedMarker)
	case QualityDominant:
		if ext == ExtensionNone {
			b.WriteString("7")
		}
	}
	writeExtension(&b, ext)
	if quality == QualitySus2 || quality == QualitySus4 {
		b.WriteString(string(quality))
	}
	return b.String()
}

func writeExtension(b *strings.Builder, ext Extension) {
	if ext != ExtensionNone {
		b.WriteString(strconv.Itoa(int(ext)))
	}
}
