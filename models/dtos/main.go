package dtos

import (
	"time"

	"refman/api/models/manifests"
)

type GenomesResponseDTO struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Genomes []GenomeSummary `json:"genomes"`
}
type GenomeSummary struct {
	Id      string `json:"id"`
	Version int    `json:"version"`
}

type GenomeGetResponseDTO struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Genome  *manifests.Genome `json:"genome"`
}

type GenomesOverviewDTO struct {
	GenomeResourceCounts map[string]int `json:"genomeResourceCounts" mapstructure:"genomeResourceCounts"`
	CategoryCounts       map[string]int `json:"categoryCounts" mapstructure:"categoryCounts"`
	ExtensionCounts      map[string]int `json:"extensionCounts" mapstructure:"extensionCounts"`
}

type ResourceResolveResponseDTO struct {
	Status   int    `json:"status"`
	Message  string `json:"message"`
	GenomeId string `json:"genomeId"`
	Key      string `json:"key"`
	Path     string `json:"path"`
}

type ResourceVerification struct {
	Key    string `json:"key"`
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}
type ResourcesVerifyResponseDTO struct {
	Status       int                    `json:"status"`
	Message      string                 `json:"message"`
	GenomeId     string                 `json:"genomeId"`
	MissingCount int                    `json:"missingCount"`
	Results      []ResourceVerification `json:"results"`
}

// ----

type GeneralErrorResponseDto struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Errors    []GeneralError `json:"errors"`
}
type GeneralError struct {
	Message string `json:"message"`
}
