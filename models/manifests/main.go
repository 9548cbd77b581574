package manifests

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

/*
	In-memory representation of a single genome's
	resource manifest ("<genomeId>-resources.yaml"),
	mapping logical resource names to file paths
	relative to the manifest's own directory.
*/
type GenomeResourceManifest struct {
	Version   int                    `json:"version" mapstructure:"version"`
	Aliases   map[string]interface{} `json:"aliases" mapstructure:"aliases"`
	Variation map[string]string      `json:"variation" mapstructure:"variation"`
	RnaSeq    RnaSeqResources        `json:"rnaseq" mapstructure:"-"`
}

type RnaSeqResources struct {
	// flat relative-path entries (transcripts, refflat, etc..)
	Paths map[string]string `json:"paths"`
	// per-aligner precomputed index artifacts, keyed by aligner name
	TranscriptomeIndex map[string]string `json:"transcriptome_index"`
}

// A genome manifest as loaded from a data root,
// i.e. <root>/<genomeId>/seq/<genomeId>-resources.yaml
type Genome struct {
	Id           string                  `json:"id"`
	ManifestPath string                  `json:"manifestPath"`
	Manifest     *GenomeResourceManifest `json:"manifest"`
}

type UnknownResourceError struct {
	GenomeId string
	Key      string
}

func (e *UnknownResourceError) Error() string {
	return fmt.Sprintf("genome %s has no resource keyed %s", e.GenomeId, e.Key)
}

// ResourcePaths flattens all resource entries into a single
// logical-key -> relative-path mapping ; nested transcriptome
// indexes use the dotted form "transcriptome_index.<aligner>"
func (g *Genome) ResourcePaths() map[string]string {
	paths := make(map[string]string)
	for key, relativePath := range g.Manifest.Variation {
		paths[key] = relativePath
	}
	for key, relativePath := range g.Manifest.RnaSeq.Paths {
		paths[key] = relativePath
	}
	for alignerName, relativePath := range g.Manifest.RnaSeq.TranscriptomeIndex {
		paths["transcriptome_index."+alignerName] = relativePath
	}
	return paths
}

func (g *Genome) ResourceKeys() []string {
	keys := make([]string, 0)
	for key := range g.ResourcePaths() {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ResolvePath joins the manifest's directory with the relative
// path stored under the given logical key (relative paths use
// `../` to escape into sibling directories such as variation/)
func (g *Genome) ResolvePath(key string) (string, error) {
	relativePath, found := g.relativePath(key)
	if !found {
		return "", &UnknownResourceError{GenomeId: g.Id, Key: key}
	}
	return filepath.Join(filepath.Dir(g.ManifestPath), relativePath), nil
}

func (g *Genome) relativePath(key string) (string, bool) {
	if strings.HasPrefix(key, "transcriptome_index.") {
		alignerName := strings.TrimPrefix(key, "transcriptome_index.")
		relativePath, found := g.Manifest.RnaSeq.TranscriptomeIndex[alignerName]
		return relativePath, found
	}
	if relativePath, found := g.Manifest.Variation[key]; found {
		return relativePath, true
	}
	relativePath, found := g.Manifest.RnaSeq.Paths[key]
	return relativePath, found
}
