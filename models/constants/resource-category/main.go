package resourceCategory

import (
	"refman/api/models/constants"
)

const (
	Variation constants.ResourceCategory = "variation"
	RnaSeq    constants.ResourceCategory = "rnaseq"
)
