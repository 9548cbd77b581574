package manifests

import (
	"fmt"
	"io/ioutil"

	"refman/api/models/manifests"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"
)

// Raised when a manifest document is not valid YAML, or its
// shape cannot be mapped onto a GenomeResourceManifest
type MalformedDocumentError struct {
	Path string
	Err  error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed manifest document %s : %v", e.Path, e.Err)
}
func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}

// Raised when a required top-level key is absent ; absence
// must fail, never silently default
type MissingFieldError struct {
	Path  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("manifest %s is missing required field %s", e.Path, e.Field)
}

var requiredFields = []string{"version", "variation", "rnaseq"}

/*
Load reads one genome resource manifest from disk and returns its typed,
read-only representation. Decoding happens in two phases : the document is
first unmarshalled into a generic map to check the required top-level keys,
then cast onto the typed struct. Alias values are kept as opaque scalars
since other manifests of this family may carry types beyond string|bool.
*/
func Load(path string) (*manifests.GenomeResourceManifest, error) {
	contents, readErr := ioutil.ReadFile(path)
	if readErr != nil {
		return nil, readErr
	}

	var rawDocument map[string]interface{}
	if yamlErr := yaml.Unmarshal(contents, &rawDocument); yamlErr != nil {
		return nil, &MalformedDocumentError{Path: path, Err: yamlErr}
	}

	for _, field := range requiredFields {
		if _, present := rawDocument[field]; !present {
			return nil, &MissingFieldError{Path: path, Field: field}
		}
	}

	// cast generic map to manifest (rnaseq handled separately,
	// its values are a union of strings and nested mappings)
	var manifest manifests.GenomeResourceManifest
	if decodeErr := mapstructure.Decode(rawDocument, &manifest); decodeErr != nil {
		return nil, &MalformedDocumentError{Path: path, Err: decodeErr}
	}

	if manifest.Version < 0 {
		return nil, &MalformedDocumentError{
			Path: path,
			Err:  fmt.Errorf("version %d is negative", manifest.Version),
		}
	}

	rnaSeq, rnaSeqErr := shapeRnaSeq(path, rawDocument["rnaseq"])
	if rnaSeqErr != nil {
		return nil, rnaSeqErr
	}
	manifest.RnaSeq = rnaSeq

	return &manifest, nil
}

func shapeRnaSeq(path string, rawRnaSeq interface{}) (manifests.RnaSeqResources, error) {
	rnaSeq := manifests.RnaSeqResources{
		Paths:              map[string]string{},
		TranscriptomeIndex: map[string]string{},
	}

	entries, isMapping := rawRnaSeq.(map[interface{}]interface{})
	if !isMapping {
		return rnaSeq, &MalformedDocumentError{
			Path: path,
			Err:  fmt.Errorf("rnaseq is not a mapping"),
		}
	}

	for rawKey, rawValue := range entries {
		key, keyIsString := rawKey.(string)
		if !keyIsString {
			return rnaSeq, &MalformedDocumentError{
				Path: path,
				Err:  fmt.Errorf("rnaseq contains a non-string key %v", rawKey),
			}
		}

		switch value := rawValue.(type) {
		case string:
			rnaSeq.Paths[key] = value
		case map[interface{}]interface{}:
			// the only nested mapping in this manifest family
			// holds per-aligner transcriptome index artifacts
			if key != "transcriptome_index" {
				return rnaSeq, &MalformedDocumentError{
					Path: path,
					Err:  fmt.Errorf("unexpected nested mapping under rnaseq key %s", key),
				}
			}
			if decodeErr := mapstructure.Decode(value, &rnaSeq.TranscriptomeIndex); decodeErr != nil {
				return rnaSeq, &MalformedDocumentError{Path: path, Err: decodeErr}
			}
		default:
			return rnaSeq, &MalformedDocumentError{
				Path: path,
				Err:  fmt.Errorf("rnaseq entry %s is neither a path nor a mapping", key),
			}
		}
	}

	return rnaSeq, nil
}
