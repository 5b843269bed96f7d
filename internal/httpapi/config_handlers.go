package httpapi

import (
	"net/http"

	"github.com/Falakejaz786/company-jobs-web-scraper/internal/config"
)

type ConfigHandler struct {
	Cfg config.Config
}

func (h ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Cfg)
}

func (h ConfigHandler) Validate(w http.ResponseWriter, r *http.Request) {
	_, vr := config.NormalizeAndValidate(h.Cfg)
	WriteJSON(w, http.StatusOK, vr)
}
