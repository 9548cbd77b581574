package utils

import (
	"path/filepath"
	"strings"
)

// Known reference-file suffixes, multi-part ones first
// so ".vcf.gz" wins over plain ".gz"
var RecognizedExtensions = []string{
	".vcf.gz",
	".bed.gz",
	".gff3.gz",
	".txt.gz",
	".gtf",
	".gff3",
	".refFlat",
	".fa",
	".ver",
	".gz",
}

func RecognizedExtension(path string) string {
	for _, extension := range RecognizedExtensions {
		if strings.HasSuffix(path, extension) {
			return extension
		}
	}
	return filepath.Ext(path)
}

func HasRecognizedExtension(path string) bool {
	for _, extension := range RecognizedExtensions {
		if strings.HasSuffix(path, extension) {
			return true
		}
	}
	return false
}
