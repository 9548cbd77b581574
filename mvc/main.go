package mvc

import (
	"refman/api/contexts"
	registryService "refman/api/services/registry"

	"github.com/labstack/echo"
)

func RetrieveCommonElements(c echo.Context) (*registryService.RegistryService, string, string) {
	rc := c.(*contexts.RefmanContext)
	registry := rc.RegistryService

	genomeId := c.QueryParam("genomeId")
	resourceKey := c.QueryParam("key")

	return registry, genomeId, resourceKey
}
