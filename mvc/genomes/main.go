package genomes

import (
	"fmt"
	"net/http"
	"time"

	"refman/api/models/dtos"
	"refman/api/models/dtos/errors"
	"refman/api/models/refresh"
	"refman/api/mvc"

	"github.com/labstack/echo"
	"github.com/mitchellh/mapstructure"
)

func GenomesGetAll(c echo.Context) error {
	fmt.Printf("[%s] - GenomesGetAll hit!\n", time.Now())
	registry, _, _ := mvc.RetrieveCommonElements(c)

	summaries := []dtos.GenomeSummary{}
	for _, genome := range registry.GetGenomes() {
		summaries = append(summaries, dtos.GenomeSummary{
			Id:      genome.Id,
			Version: genome.Manifest.Version,
		})
	}

	return c.JSON(http.StatusOK, dtos.GenomesResponseDTO{
		Status:  200,
		Message: "Success",
		Genomes: summaries,
	})
}

func GetGenomesOverview(c echo.Context) error {
	fmt.Printf("[%s] - GetGenomesOverview hit!\n", time.Now())
	registry, _, _ := mvc.RetrieveCommonElements(c)

	overview := registry.GetResourcesOverview()

	// cast generic overview map to a typed response
	var overviewDto dtos.GenomesOverviewDTO
	if decodeErr := mapstructure.Decode(overview, &overviewDto); decodeErr != nil {
		return c.JSON(http.StatusInternalServerError,
			errors.CreateSimpleInternalServerError(decodeErr.Error()))
	}

	return c.JSON(http.StatusOK, overviewDto)
}

func GenomesGetByGenomeId(c echo.Context) error {
	fmt.Printf("[%s] - GenomesGetByGenomeId hit!\n", time.Now())
	registry, genomeId, _ := mvc.RetrieveCommonElements(c)

	genome, found := registry.GetGenome(genomeId)
	if !found {
		return c.JSON(http.StatusNotFound,
			errors.CreateSimpleNotFound(fmt.Sprintf("Genome %s not found!", genomeId)))
	}

	return c.JSON(http.StatusOK, dtos.GenomeGetResponseDTO{
		Status:  200,
		Message: "Success",
		Genome:  genome,
	})
}

func ResourcesResolveByResourceKey(c echo.Context) error {
	fmt.Printf("[%s] - ResourcesResolveByResourceKey hit!\n", time.Now())
	registry, genomeId, resourceKey := mvc.RetrieveCommonElements(c)

	genome, found := registry.GetGenome(genomeId)
	if !found {
		return c.JSON(http.StatusNotFound,
			errors.CreateSimpleNotFound(fmt.Sprintf("Genome %s not found!", genomeId)))
	}

	resolvedPath, resolveErr := genome.ResolvePath(resourceKey)
	if resolveErr != nil {
		return c.JSON(http.StatusNotFound, errors.CreateSimpleNotFound(resolveErr.Error()))
	}

	return c.JSON(http.StatusOK, dtos.ResourceResolveResponseDTO{
		Status:   200,
		Message:  "Success",
		GenomeId: genomeId,
		Key:      resourceKey,
		Path:     resolvedPath,
	})
}

func ResourcesVerifyByGenomeId(c echo.Context) error {
	fmt.Printf("[%s] - ResourcesVerifyByGenomeId hit!\n", time.Now())
	registry, genomeId, _ := mvc.RetrieveCommonElements(c)

	genome, found := registry.GetGenome(genomeId)
	if !found {
		return c.JSON(http.StatusNotFound,
			errors.CreateSimpleNotFound(fmt.Sprintf("Genome %s not found!", genomeId)))
	}

	results := registry.VerifyGenomeResources(genome)

	missingCount := 0
	for _, result := range results {
		if !result.Exists {
			missingCount++
		}
	}

	return c.JSON(http.StatusOK, dtos.ResourcesVerifyResponseDTO{
		Status:       200,
		Message:      "Success",
		GenomeId:     genomeId,
		MissingCount: missingCount,
		Results:      results,
	})
}

func GenomesRefreshRun(c echo.Context) error {
	fmt.Printf("[%s] - GenomesRefreshRun hit!\n", time.Now())
	registry, _, _ := mvc.RetrieveCommonElements(c)

	request := registry.RunRefresh("api")

	return c.JSON(http.StatusOK, refresh.RefreshResponseDTO{
		Id:      request.Id,
		Trigger: request.Trigger,
		State:   request.State,
		Message: "Successfully queued..",
	})
}

func GetAllGenomesRefreshRequests(c echo.Context) error {
	fmt.Printf("[%s] - GetAllGenomesRefreshRequests hit!\n", time.Now())
	registry, _, _ := mvc.RetrieveCommonElements(c)

	return c.JSON(http.StatusOK, registry.GetRefreshRequests())
}
