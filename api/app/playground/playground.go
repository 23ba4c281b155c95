// Package playground serves a small embedded html form to poke the token
// endpoints from a browser, it is a development convenience and carries
// no logic of its own
package playground

import (
	"embed"
	"net/http"

	"github.com/google/safehtml/template"
	"go.uber.org/zap"
)

type PlaygroundRessource struct {
	log  *zap.Logger
	page *template.Template
}

func NewPlaygroundRessource(logger *zap.Logger, fs embed.FS) (*PlaygroundRessource, error) {
	page, err := template.ParseFS(template.TrustedFSFromEmbed(fs), "templates/playground.html")
	if err != nil {
		return nil, err
	}
	return &PlaygroundRessource{
		log:  logger,
		page: page,
	}, nil
}

func (p *PlaygroundRessource) Index(w http.ResponseWriter, _ *http.Request) {
	err := p.page.Execute(w, nil)
	if err != nil {
		p.log.Error("unable to render playground page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
