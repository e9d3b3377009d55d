package http

import (
	"net/http"

	"github.com/dyncarl8-oss/herbal-roots/internal/content"
	"github.com/dyncarl8-oss/herbal-roots/internal/entity"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves the static masterclass library. The library ships
// with the binary; there is no storage behind it.
type ContentHandler struct{}

func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

// ListMasterclasses godoc
// @Summary      Masterclass library
// @Tags         masterclasses
// @Produce      json
// @Security     PlatformToken
// @Success      200  {object}  map[string]interface{}
// @Router       /masterclasses [get]
func (h *ContentHandler) ListMasterclasses(c *gin.Context) {
	classes := content.Masterclasses()

	formatted := make([]gin.H, 0, len(classes))
	for i := range classes {
		formatted = append(formatted, formatMasterclass(&classes[i]))
	}

	c.JSON(http.StatusOK, gin.H{"masterclasses": formatted})
}

// GetMasterclass godoc
// @Summary      Single masterclass
// @Tags         masterclasses
// @Produce      json
// @Security     PlatformToken
// @Param        id path string true "Masterclass ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /masterclasses/{id} [get]
func (h *ContentHandler) GetMasterclass(c *gin.Context) {
	class, ok := content.GetMasterclassByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Masterclass not found"})
		return
	}

	c.JSON(http.StatusOK, formatMasterclass(class))
}

func formatMasterclass(m *entity.Masterclass) gin.H {
	return gin.H{
		"id":          m.ID,
		"title":       m.Title,
		"type":        m.Type,
		"duration":    m.Duration,
		"category":    m.Category,
		"videoUrl":    m.VideoURL,
		"description": m.Description,
		"content":     m.Content,
	}
}
