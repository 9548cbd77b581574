package registry

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"
	"time"

	"refman/api/models"
	"refman/api/models/constants/aligner"
	resourceCategory "refman/api/models/constants/resource-category"
	"refman/api/models/dtos"
	"refman/api/models/manifests"
	"refman/api/models/refresh"
	manifestService "refman/api/services/manifests"
	"refman/api/utils"

	"github.com/cenkalti/backoff"
	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	. "github.com/ahmetb/go-linq"
)

type (
	RegistryService struct {
		Initialized bool
		Config      *models.Config

		GenomeMap    map[string]*manifests.Genome
		GenomeMapMux sync.RWMutex

		RefreshRequestMap    map[string]*refresh.RefreshRequest
		RefreshRequestMapMux sync.RWMutex
	}
)

func NewRegistryService(cfg *models.Config) *RegistryService {
	rs := &RegistryService{
		Initialized:       false,
		Config:            cfg,
		GenomeMap:         map[string]*manifests.Genome{},
		RefreshRequestMap: map[string]*refresh.RefreshRequest{},
	}

	rs.Init()

	return rs
}

func (rs *RegistryService) Init() {
	// initialization if necessary
	if !rs.Initialized {
		// - wait for the reference-data volume to be mounted ;
		//   services regularly come up before their data root does
		retryBackoff := backoff.NewExponentialBackOff()
		if rs.Config.Data.ScanMaxElapsedSeconds > 0 {
			retryBackoff.MaxElapsedTime = time.Duration(rs.Config.Data.ScanMaxElapsedSeconds) * time.Second
		}
		waitErr := backoff.Retry(func() error {
			_, statErr := os.Stat(rs.Config.Data.RootPath)
			return statErr
		}, retryBackoff)

		if waitErr != nil {
			fmt.Printf("[%s] - Data root %s unavailable : %v..\n", time.Now(), rs.Config.Data.RootPath, waitErr)
		} else {
			// synchronous startup scan so lookups can be
			// served as soon as the server begins listening
			rs.refresh(rs.newRefreshRequest("startup"))
		}

		// - spin up a go routine that will periodically
		//   re-scan the data root so long-running services
		//   pick up newly published reference builds
		go func() {
			// setup cron job
			s := gocron.NewScheduler(time.UTC)

			intervalMinutes := rs.Config.Data.RefreshIntervalMinutes
			if intervalMinutes <= 0 {
				intervalMinutes = 60
			}

			s.Every(intervalMinutes).Minutes().Do(func() {
				fmt.Printf("[%s] - Running scheduled genome manifest refresh..\n", time.Now())
				rs.refresh(rs.newRefreshRequest("scheduled"))
			})

			// starts the scheduler in blocking mode, which blocks
			// the current execution path
			s.StartBlocking()
		}()

		rs.Initialized = true
		fmt.Println("Registry Service Initialized ..")
	}
}

// RunRefresh queues a re-scan of the data root and returns
// immediately with a snapshot of the tracking request ; the
// snapshot is taken before the background scan starts
// mutating the tracked request
func (rs *RegistryService) RunRefresh(trigger string) refresh.RefreshRequest {
	request := rs.newRefreshRequest(trigger)
	response := *request

	go rs.refresh(request)

	return response
}

func (rs *RegistryService) newRefreshRequest(trigger string) *refresh.RefreshRequest {
	request := &refresh.RefreshRequest{
		Id:        uuid.New(),
		Trigger:   trigger,
		State:     refresh.Queued,
		CreatedAt: fmt.Sprintf("%v", time.Now()),
	}

	rs.RefreshRequestMapMux.Lock()
	rs.RefreshRequestMap[request.Id.String()] = request
	rs.RefreshRequestMapMux.Unlock()

	return request
}

func (rs *RegistryService) refresh(request *refresh.RefreshRequest) {
	rs.updateRefreshRequest(request, refresh.Running, "")

	genomeIds, discoverErr := rs.discoverGenomeIds()
	if discoverErr != nil {
		fmt.Printf("[%s] - Error scanning data root %s : %v..\n", time.Now(), rs.Config.Data.RootPath, discoverErr)
		rs.updateRefreshRequest(request, refresh.Error, discoverErr.Error())
		return
	}

	var eg errgroup.Group
	for _, genomeId := range genomeIds {
		genomeId := genomeId
		eg.Go(func() error {
			genome, loadErr := rs.loadGenome(genomeId)
			if loadErr != nil {
				// one bad genome must not take down lookups for the others
				fmt.Printf("[%s] - Skipping genome %s : %v..\n", time.Now(), genomeId, loadErr)
				return nil
			}
			rs.publishGenome(genome)
			return nil
		})
	}
	eg.Wait()

	rs.GenomeMapMux.RLock()
	availableCount := len(rs.GenomeMap)
	rs.GenomeMapMux.RUnlock()

	rs.updateRefreshRequest(request, refresh.Done, fmt.Sprintf("%d genome(s) available", availableCount))
}

// tracked requests are read concurrently by API handlers,
// every mutation goes through the request map mutex
func (rs *RegistryService) updateRefreshRequest(request *refresh.RefreshRequest, state refresh.State, message string) {
	rs.RefreshRequestMapMux.Lock()
	defer rs.RefreshRequestMapMux.Unlock()

	request.State = state
	if len(message) > 0 {
		request.Message = message
	}
	request.UpdatedAt = fmt.Sprintf("%v", time.Now())
}

// data roots are laid out as <root>/<genomeId>/seq/<genomeId>-resources.yaml
func ManifestPath(rootPath string, genomeId string) string {
	return filepath.Join(rootPath, genomeId, "seq", fmt.Sprintf("%s-resources.yaml", genomeId))
}

func (rs *RegistryService) discoverGenomeIds() ([]string, error) {
	entries, readErr := ioutil.ReadDir(rs.Config.Data.RootPath)
	if readErr != nil {
		return nil, readErr
	}

	genomeIds := make([]string, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if utils.FileExists(ManifestPath(rs.Config.Data.RootPath, entry.Name())) {
			genomeIds = append(genomeIds, entry.Name())
		}
	}
	return genomeIds, nil
}

func (rs *RegistryService) loadGenome(genomeId string) (*manifests.Genome, error) {
	manifestPath := ManifestPath(rs.Config.Data.RootPath, genomeId)

	manifest, loadErr := manifestService.Load(manifestPath)
	if loadErr != nil {
		return nil, loadErr
	}

	for alignerName := range manifest.RnaSeq.TranscriptomeIndex {
		if !aligner.IsKnownAligner(alignerName) {
			fmt.Printf("[%s] - Genome %s references unknown aligner %s..\n", time.Now(), genomeId, alignerName)
		}
	}

	return &manifests.Genome{
		Id:           genomeId,
		ManifestPath: manifestPath,
		Manifest:     manifest,
	}, nil
}

// publishGenome swaps a freshly loaded genome into the registry ;
// a manifest whose version went backwards is rejected and the
// previously published value kept (versions never decrease)
func (rs *RegistryService) publishGenome(genome *manifests.Genome) {
	rs.GenomeMapMux.Lock()
	defer rs.GenomeMapMux.Unlock()

	existing, present := rs.GenomeMap[genome.Id]
	if present && genome.Manifest.Version < existing.Manifest.Version {
		fmt.Printf("[%s] - Rejecting genome %s manifest version %d : registry already holds version %d..\n",
			time.Now(), genome.Id, genome.Manifest.Version, existing.Manifest.Version)
		return
	}

	rs.GenomeMap[genome.Id] = genome
}

func (rs *RegistryService) GetGenome(genomeId string) (*manifests.Genome, bool) {
	rs.GenomeMapMux.RLock()
	defer rs.GenomeMapMux.RUnlock()

	genome, found := rs.GenomeMap[genomeId]
	return genome, found
}

func (rs *RegistryService) GetGenomes() []*manifests.Genome {
	rs.GenomeMapMux.RLock()
	defer rs.GenomeMapMux.RUnlock()

	genomes := make([]*manifests.Genome, 0)
	for _, genome := range rs.GenomeMap {
		genomes = append(genomes, genome)
	}

	sortedGenomes := make([]*manifests.Genome, 0)
	From(genomes).
		OrderByT(func(genome *manifests.Genome) string {
			return genome.Id
		}).
		ToSlice(&sortedGenomes)

	return sortedGenomes
}

// GetRefreshRequests returns snapshot copies so callers can
// serialize them without racing the background scans
func (rs *RegistryService) GetRefreshRequests() []refresh.RefreshRequest {
	rs.RefreshRequestMapMux.RLock()
	defer rs.RefreshRequestMapMux.RUnlock()

	requests := make([]refresh.RefreshRequest, 0)
	for _, request := range rs.RefreshRequestMap {
		requests = append(requests, *request)
	}
	return requests
}

// GetResourcesOverview gathers registry-wide statistics :
// resource counts per genome, per category and per
// recognized file extension
func (rs *RegistryService) GetResourcesOverview() map[string]interface{} {
	rs.GenomeMapMux.RLock()
	defer rs.GenomeMapMux.RUnlock()

	allRelativePaths := make([]string, 0)
	genomeResourceCounts := map[string]int{}
	categoryCounts := map[string]int{}

	for genomeId, genome := range rs.GenomeMap {
		resourcePaths := genome.ResourcePaths()
		genomeResourceCounts[genomeId] = len(resourcePaths)

		categoryCounts[string(resourceCategory.Variation)] += len(genome.Manifest.Variation)
		categoryCounts[string(resourceCategory.RnaSeq)] += len(genome.Manifest.RnaSeq.Paths) + len(genome.Manifest.RnaSeq.TranscriptomeIndex)

		for _, relativePath := range resourcePaths {
			allRelativePaths = append(allRelativePaths, relativePath)
		}
	}

	extensionCounts := map[string]int{}
	From(allRelativePaths).
		GroupByT(
			func(relativePath string) string {
				return utils.RecognizedExtension(relativePath)
			},
			func(relativePath string) string {
				return relativePath
			}).
		ToMapByT(&extensionCounts,
			func(group Group) string {
				return group.Key.(string)
			},
			func(group Group) int {
				return len(group.Group)
			})

	return map[string]interface{}{
		"genomeResourceCounts": genomeResourceCounts,
		"categoryCounts":       categoryCounts,
		"extensionCounts":      extensionCounts,
	}
}

// VerifyGenomeResources stats every resolved path of a genome ;
// a manifest only records paths, whether the referenced files
// actually exist on disk is for consumers like us to detect
func (rs *RegistryService) VerifyGenomeResources(genome *manifests.Genome) []dtos.ResourceVerification {
	results := make([]dtos.ResourceVerification, 0)
	for _, key := range genome.ResourceKeys() {
		resolvedPath, resolveErr := genome.ResolvePath(key)
		if resolveErr != nil {
			continue
		}
		results = append(results, dtos.ResourceVerification{
			Key:    key,
			Path:   resolvedPath,
			Exists: utils.FileExists(resolvedPath),
		})
	}
	return results
}
