package middleware

import (
	"net/http"

	"refman/api/models/dtos/errors"

	"github.com/labstack/echo"
)

/*
Echo middleware to ensure a `genomeId` HTTP query parameter was provided
*/
func MandateGenomeIdAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		genomeId := c.QueryParam("genomeId")
		if len(genomeId) == 0 {
			// if no id was provided, return an error
			return c.JSON(http.StatusBadRequest,
				errors.CreateSimpleBadRequest("Missing genomeId!"))
		}

		return next(c)
	}
}

/*
Echo middleware to ensure a `key` HTTP query parameter was provided
(a logical resource key, e.g. `dbsnp` or `transcriptome_index.tophat`)
*/
func MandateResourceKeyAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		resourceKey := c.QueryParam("key")
		if len(resourceKey) == 0 {
			return c.JSON(http.StatusBadRequest,
				errors.CreateSimpleBadRequest("Missing resource key!"))
		}

		return next(c)
	}
}
