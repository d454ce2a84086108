package slots

import "github.com/oumar782/Jessback/pkg/pagination"

// sortColumns is the allow-list of sortable columns, keyed by the wire name.
var sortColumns = map[string]string{
	"id":             "id",
	"destination":    "destination",
	"lieuDepart":     "lieu_depart",
	"dateDepart":     "date_depart",
	"dateExpedition": "date_expedition",
	"capaciteMax":    "capacite_max",
	"createdAt":      "created_at",
}

const defaultSortColumn = "id"

// ListParams captures the list inputs accepted by the slots endpoint.
type ListParams struct {
	Pagination pagination.Params
	Search     string
	SortBy     string
	SortAsc    bool
}

type listQuery struct {
	pagination pagination.Params
	search     string
	sortColumn string
	sortAsc    bool
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
	}
}

// ListResult is one page of slots plus its metadata.
type ListResult struct {
	Slots []SlotDTO
	Meta  pagination.Meta
}
