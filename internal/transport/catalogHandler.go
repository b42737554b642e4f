package transport

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/ds124wfegd/event-catalog/internal/service"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) FullCatalog(c *gin.Context) {
	tracks, err := h.catalogService.FullCatalog(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tracks)
}

func (h *CatalogHandler) Wipe(c *gin.Context) {
	if err := h.catalogService.Wipe(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "all data wiped"})
}

// GenerateHash hands out a random 32-char hex token, used by clients
// as a one-off upload identifier.
func (h *CatalogHandler) GenerateHash(c *gin.Context) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hash": hex.EncodeToString(buf)})
}
