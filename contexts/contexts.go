package contexts

import (
	"refman/api/models"
	registryService "refman/api/services/registry"

	"github.com/labstack/echo"
)

type (
	// "Helper" Context to pass into routes that need
	//  the genome manifest registry and other variables
	RefmanContext struct {
		echo.Context
		Config          *models.Config
		RegistryService *registryService.RegistryService
	}
)
