package genomes

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"net/http"
	"net/http/httptest"

	"refman/api/contexts"
	"refman/api/models"
	registryService "refman/api/services/registry"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
)

const testManifestContents = "version: 18\n" +
	"aliases:\n" +
	"  human: true\n" +
	"variation:\n" +
	"  dbsnp: ../variation/dbsnp-150.vcf.gz\n" +
	"rnaseq:\n" +
	"  transcripts: ../rnaseq/ref-transcripts.gtf\n" +
	"  transcriptome_index:\n" +
	"    tophat: ../rnaseq/tophat/hg38-noalt_transcriptome.ver\n"

func initTestRegistry(t *testing.T) *registryService.RegistryService {
	rootPath := t.TempDir()

	seqDir := filepath.Join(rootPath, "hg38", "seq")
	assert.Nil(t, os.MkdirAll(seqDir, 0755))
	assert.Nil(t, ioutil.WriteFile(
		filepath.Join(seqDir, "hg38-resources.yaml"),
		[]byte(testManifestContents), 0644))

	cfg := &models.Config{}
	cfg.Data.RootPath = rootPath
	cfg.Data.ScanMaxElapsedSeconds = 1
	cfg.Data.RefreshIntervalMinutes = 60

	return registryService.NewRegistryService(cfg)
}

func setUpEcho(rs *registryService.RegistryService, path string) (*contexts.RefmanContext, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	rc := &contexts.RefmanContext{
		Context:         c,
		Config:          &models.Config{},
		RegistryService: rs,
	}
	return rc, rec
}

func getJsonBody(rec *httptest.ResponseRecorder) map[string]interface{} {
	// - extract body bytes from response
	body, _ := io.ReadAll(rec.Body)
	// - unmarshal or decode the JSON to a declared empty interface.
	var bodyJson map[string]interface{}
	json.Unmarshal(body, &bodyJson)

	return bodyJson
}

func TestGenomesGetAll(t *testing.T) {
	rs := initTestRegistry(t)

	t.Run("should return 200 status ok and the loaded genomes", func(t *testing.T) {
		rc, rec := setUpEcho(rs, "/genomes")

		GenomesGetAll(rc)

		assert.Equal(t, http.StatusOK, rec.Code)

		body := getJsonBody(rec)
		genomes := body["genomes"].([]interface{})
		assert.Equal(t, 1, len(genomes))

		firstGenome := genomes[0].(map[string]interface{})
		assert.Equal(t, "hg38", firstGenome["id"].(string))
		assert.Equal(t, float64(18), firstGenome["version"].(float64))
	})
}

func TestGenomesGetByGenomeId(t *testing.T) {
	rs := initTestRegistry(t)

	t.Run("should return 200 status ok and the full manifest", func(t *testing.T) {
		rc, rec := setUpEcho(rs, "/genomes/get/by/genomeId?genomeId=hg38")

		GenomesGetByGenomeId(rc)

		assert.Equal(t, http.StatusOK, rec.Code)

		body := getJsonBody(rec)
		genome := body["genome"].(map[string]interface{})
		manifest := genome["manifest"].(map[string]interface{})
		assert.Equal(t, float64(18), manifest["version"].(float64))
	})

	t.Run("should return 404 status for an unknown genome", func(t *testing.T) {
		rc, rec := setUpEcho(rs, "/genomes/get/by/genomeId?genomeId=hg19")

		GenomesGetByGenomeId(rc)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestResourcesResolveByResourceKey(t *testing.T) {
	rs := initTestRegistry(t)

	t.Run("should resolve a variation key to an on-disk path", func(t *testing.T) {
		rc, rec := setUpEcho(rs, "/resources/resolve/by/resourceKey?genomeId=hg38&key=dbsnp")

		ResourcesResolveByResourceKey(rc)

		assert.Equal(t, http.StatusOK, rec.Code)

		body := getJsonBody(rec)
		assert.Equal(t, "dbsnp", body["key"].(string))

		resolvedPath := body["path"].(string)
		assert.True(t,
			filepath.IsAbs(resolvedPath),
			fmt.Sprintf("resolved path %s should be absolute", resolvedPath))
		assert.Equal(t,
			filepath.Join("hg38", "variation", "dbsnp-150.vcf.gz"),
			filepath.Join(filepath.Base(filepath.Dir(filepath.Dir(resolvedPath))), filepath.Base(filepath.Dir(resolvedPath)), filepath.Base(resolvedPath)))
	})

	t.Run("should resolve a dotted transcriptome index key", func(t *testing.T) {
		rc, rec := setUpEcho(rs, "/resources/resolve/by/resourceKey?genomeId=hg38&key=transcriptome_index.tophat")

		ResourcesResolveByResourceKey(rc)

		assert.Equal(t, http.StatusOK, rec.Code)

		body := getJsonBody(rec)
		assert.Equal(t, "hg38-noalt_transcriptome.ver", filepath.Base(body["path"].(string)))
	})

	t.Run("should return 404 status for an unknown key", func(t *testing.T) {
		rc, rec := setUpEcho(rs, "/resources/resolve/by/resourceKey?genomeId=hg38&key=qsignature")

		ResourcesResolveByResourceKey(rc)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestResourcesVerifyByGenomeId(t *testing.T) {
	rs := initTestRegistry(t)

	t.Run("should report every path as missing on an empty data root", func(t *testing.T) {
		rc, rec := setUpEcho(rs, "/resources/verify/by/genomeId?genomeId=hg38")

		ResourcesVerifyByGenomeId(rc)

		assert.Equal(t, http.StatusOK, rec.Code)

		body := getJsonBody(rec)
		assert.Equal(t, float64(3), body["missingCount"].(float64))
		assert.Equal(t, 3, len(body["results"].([]interface{})))
	})
}

func TestGetGenomesOverview(t *testing.T) {
	rs := initTestRegistry(t)

	t.Run("should return typed per-genome and per-extension counts", func(t *testing.T) {
		rc, rec := setUpEcho(rs, "/genomes/overview")

		GetGenomesOverview(rc)

		assert.Equal(t, http.StatusOK, rec.Code)

		body := getJsonBody(rec)
		genomeResourceCounts := body["genomeResourceCounts"].(map[string]interface{})
		assert.Equal(t, float64(3), genomeResourceCounts["hg38"].(float64))

		extensionCounts := body["extensionCounts"].(map[string]interface{})
		assert.Equal(t, float64(1), extensionCounts[".vcf.gz"].(float64))
	})
}

func TestGenomesRefreshRun(t *testing.T) {
	rs := initTestRegistry(t)

	t.Run("should queue a refresh and track its request", func(t *testing.T) {
		rc, rec := setUpEcho(rs, "/genomes/refresh/run")

		GenomesRefreshRun(rc)

		assert.Equal(t, http.StatusOK, rec.Code)

		body := getJsonBody(rec)
		assert.Equal(t, "api", body["trigger"].(string))
		assert.NotEmpty(t, body["id"].(string))
	})
}
