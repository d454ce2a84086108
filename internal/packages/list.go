package packages

import (
	"github.com/oumar782/Jessback/pkg/enums"
	"github.com/oumar782/Jessback/pkg/pagination"
)

// sortColumns is the allow-list of sortable columns, keyed by the wire name.
var sortColumns = map[string]string{
	"id":              "id",
	"expediteurNom":   "expediteur_nom",
	"destinataireNom": "destinataire_nom",
	"codeSuivi":       "code_suivi",
	"poids":           "poids",
	"statut":          "statut",
	"createdAt":       "created_at",
}

const defaultSortColumn = "id"

// ListParams captures the list inputs accepted by the colis endpoint.
type ListParams struct {
	Pagination pagination.Params
	Search     string
	SortBy     string
	SortAsc    bool
	Statut     *enums.PackageStatus
}

type listQuery struct {
	pagination pagination.Params
	search     string
	sortColumn string
	sortAsc    bool
	statut     *enums.PackageStatus
}

func (p ListParams) toQuery() listQuery {
	column, ok := sortColumns[p.SortBy]
	if !ok {
		column = defaultSortColumn
	}
	return listQuery{
		pagination: pagination.Normalize(p.Pagination),
		search:     p.Search,
		sortColumn: column,
		sortAsc:    p.SortAsc,
		statut:     p.Statut,
	}
}

// ListResult is one page of colis plus its metadata.
type ListResult struct {
	Packages []PackageDTO
	Meta     pagination.Meta
}
