package geo

import (
	"net/http"

	"github.com/Sheddybata/sdp.app/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

// Option is one entry of a cascading select.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Handler struct {
	provider Provider
}

func NewHandler(provider Provider) *Handler {
	return &Handler{provider: provider}
}

// States handles GET /geo/states.
func (h *Handler) States(c *gin.Context) {
	states := h.provider.States()
	options := make([]Option, len(states))
	for i, s := range states {
		options[i] = Option{ID: s.ID, Name: s.Name}
	}
	c.JSON(http.StatusOK, options)
}

// LGAs handles GET /geo/states/:state/lgas.
func (h *Handler) LGAs(c *gin.Context) {
	stateID := c.Param("state")
	if _, ok := h.provider.State(stateID); !ok {
		handler.RespondDomainError(c, ErrStateNotFound)
		return
	}

	lgas := h.provider.LGAs(stateID)
	options := make([]Option, len(lgas))
	for i, l := range lgas {
		options[i] = Option{ID: l.ID, Name: l.Name}
	}
	c.JSON(http.StatusOK, options)
}

// Wards handles GET /geo/states/:state/lgas/:lga/wards.
func (h *Handler) Wards(c *gin.Context) {
	stateID, lgaID := c.Param("state"), c.Param("lga")
	if _, ok := h.provider.State(stateID); !ok {
		handler.RespondDomainError(c, ErrStateNotFound)
		return
	}

	wards := h.provider.Wards(stateID, lgaID)
	if wards == nil {
		handler.RespondDomainError(c, ErrLGANotFound)
		return
	}

	options := make([]Option, len(wards))
	for i, w := range wards {
		options[i] = Option{ID: w.ID, Name: w.Name}
	}
	c.JSON(http.StatusOK, options)
}
