package models

import (
	"github.com/EngBahadin/portfolio/internal/nav"
	"github.com/EngBahadin/portfolio/internal/site"
)

type IndexPageData struct {
	Site     site.Config
	NavLinks []nav.Link
	Loading  bool
	Session  string
	Version  string
}

type LoadingStatus struct {
	Loading bool   `json:"loading"`
	Phase   string `json:"phase"`
}

type SetLoadingRequest struct {
	Loading *bool `json:"loading"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
