package handler

import (
	"net/http"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	client  *firestore.Client
	project string
}

var healthHandler *HealthHandler

func NewHealthHandler(client *firestore.Client, project string) *HealthHandler {
	return &HealthHandler{
		client:  client,
		project: project,
	}
}

func SetupHealthHandler(client *firestore.Client, project string) {
	healthHandler = NewHealthHandler(client, project)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "MLBB Account Store API running",
	})
}

// TestStore reports store reachability and the collection listing. Store
// errors land in the body rather than an error status so the endpoint stays
// usable as a diagnostic.
func (h *HealthHandler) TestStore(c echo.Context) error {
	result := map[string]interface{}{
		"backend":           "running",
		"database":          "not available",
		"project":           h.project,
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if h.client == nil {
		return c.JSON(http.StatusOK, result)
	}

	result["database"] = "available"

	collections := []string{}
	iter := h.client.Collections(c.Request().Context())
	for {
		col, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			result["database"] = "connected but error: " + truncate(err.Error(), 80)
			return c.JSON(http.StatusOK, result)
		}
		collections = append(collections, col.ID)
	}

	result["database"] = "connected"
	result["connection_status"] = "connected"
	result["collections"] = collections

	return c.JSON(http.StatusOK, result)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
