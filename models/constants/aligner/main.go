package aligner

import (
	"refman/api/models/constants"
	"strings"
)

const (
	Unknown constants.Aligner = "Unknown"

	Tophat   constants.Aligner = "tophat"
	Star     constants.Aligner = "star"
	Hisat2   constants.Aligner = "hisat2"
	Salmon   constants.Aligner = "salmon"
	Kallisto constants.Aligner = "kallisto"
)

func CastToAligner(text string) constants.Aligner {
	switch strings.ToLower(text) {
	case "tophat":
		return Tophat
	case "star":
		return Star
	case "hisat2":
		return Hisat2
	case "salmon":
		return Salmon
	case "kallisto":
		return Kallisto
	default:
		return Unknown
	}
}

func IsKnownAligner(text string) bool {
	// attempt to cast to aligner and
	// return if unknown aligner
	return CastToAligner(text) != Unknown
}
