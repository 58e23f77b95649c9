package health

import (
	"net/http"
	"time"

	"github.com/kboat10/babs10/pkg/utils"
)

type Response struct {
	Status    string    `json:"status" example:"healthy"`
	Storage   string    `json:"storage" example:"postgres"`
	Timestamp time.Time `json:"timestamp" example:"2025-08-24T12:50:34Z"`
}

type HealthHandler struct {
	storage string
	now     func() time.Time
}

func New(storage string) *HealthHandler {
	return &HealthHandler{
		storage: storage,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Health godoc
//
//	@Summary	Service health
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	health.Response
//	@Router		/api/health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, Response{
		Status:    "healthy",
		Storage:   h.storage,
		Timestamp: h.now(),
	})
}
