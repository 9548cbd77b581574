package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
)

func runMiddleware(mw echo.MiddlewareFunc, path string) (*httptest.ResponseRecorder, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	handler := mw(func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	})
	handler(c)

	return rec, nextCalled
}

func getJsonBody(rec *httptest.ResponseRecorder) map[string]interface{} {
	body, _ := io.ReadAll(rec.Body)

	var bodyJson map[string]interface{}
	json.Unmarshal(body, &bodyJson)

	return bodyJson
}

func TestMandateGenomeIdAttribute(t *testing.T) {
	t.Run("passes through when genomeId is present", func(t *testing.T) {
		rec, nextCalled := runMiddleware(MandateGenomeIdAttribute, "/genomes/get/by/genomeId?genomeId=hg38")
		assert.True(t, nextCalled)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects a missing genomeId with a 400 error response", func(t *testing.T) {
		rec, nextCalled := runMiddleware(MandateGenomeIdAttribute, "/genomes/get/by/genomeId")
		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		body := getJsonBody(rec)
		assert.Equal(t, float64(400), body["code"].(float64))
		assert.Equal(t, "Bad Request", body["message"].(string))
	})
}

func TestMandateResourceKeyAttribute(t *testing.T) {
	t.Run("passes through when key is present", func(t *testing.T) {
		rec, nextCalled := runMiddleware(MandateResourceKeyAttribute, "/resources/resolve/by/resourceKey?key=dbsnp")
		assert.True(t, nextCalled)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects a missing key with a 400 error response", func(t *testing.T) {
		rec, nextCalled := runMiddleware(MandateResourceKeyAttribute, "/resources/resolve/by/resourceKey")
		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		body := getJsonBody(rec)
		assert.Equal(t, float64(400), body["code"].(float64))
	})
}
