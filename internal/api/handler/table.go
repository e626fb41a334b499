package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/remiblancher/qoid/internal/api/dto"
	"github.com/remiblancher/qoid/pkg/oid"
	"github.com/remiblancher/qoid/pkg/oiddb"
)

// TableHandler serves lookups against the named tables.
type TableHandler struct {
	defaultTable string
}

// NewTableHandler creates a TableHandler. Routes without a {table}
// parameter use defaultTable.
func NewTableHandler(defaultTable string) *TableHandler {
	if defaultTable == "" {
		defaultTable = oiddb.TableAll
	}
	return &TableHandler{defaultTable: defaultTable}
}

// table selects the table named in the route, or the default one.
func (h *TableHandler) table(r *http.Request) (string, oiddb.Database, error) {
	name := chi.URLParam(r, "table")
	if name == "" {
		name = h.defaultTable
	}
	db, err := oiddb.Table(name)
	return name, db, err
}

func tableInfo(name string, db oiddb.Database) dto.TableInfo {
	return dto.TableInfo{
		Name:        name,
		Description: oiddb.TableDescription(name),
		Entries:     db.Len(),
	}
}

// List handles GET /api/v1/tables
func (h *TableHandler) List(w http.ResponseWriter, r *http.Request) {
	resp := dto.TableListResponse{Default: h.defaultTable}
	for _, name := range oiddb.TableNames() {
		db, err := oiddb.Table(name)
		if err != nil {
			handleError(w, r, err)
			return
		}
		resp.Tables = append(resp.Tables, tableInfo(name, db))
	}

	respond(w, r, http.StatusOK, resp)
}

// Get handles GET /api/v1/tables/{table}
func (h *TableHandler) Get(w http.ResponseWriter, r *http.Request) {
	name, db, err := h.table(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp := dto.TableResponse{
		TableInfo: tableInfo(name, db),
		Items:     make([]dto.Entry, 0, db.Len()),
	}
	for _, n := range db.All() {
		resp.Items = append(resp.Items, dto.NewEntry(n))
	}

	respond(w, r, http.StatusOK, resp)
}

// ByOID handles GET /api/v1/[tables/{table}/]oids/{oid}
func (h *TableHandler) ByOID(w http.ResponseWriter, r *http.Request) {
	_, db, err := h.table(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	input := chi.URLParam(r, "oid")
	id, err := oid.Parse(input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	n := db.ByOID(id)
	if n == nil {
		handleError(w, r, fmt.Errorf("%w: %s", oiddb.ErrNotFound, id))
		return
	}

	respond(w, r, http.StatusOK, dto.NewEntry(n))
}

// ByName handles GET /api/v1/[tables/{table}/]names/{name}
func (h *TableHandler) ByName(w http.ResponseWriter, r *http.Request) {
	_, db, err := h.table(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	name := chi.URLParam(r, "name")
	n := db.ByName(name)
	if n == nil {
		handleError(w, r, fmt.Errorf("%w: name %q", oiddb.ErrNotFound, name))
		return
	}

	respond(w, r, http.StatusOK, dto.NewEntry(n))
}

// Resolve handles GET /api/v1/[tables/{table}/]resolve/{oid}. An
// unregistered OID is not an error: the input comes back as the name.
func (h *TableHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	table, db, err := h.table(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	input := chi.URLParam(r, "oid")
	name, err := db.Resolve(input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	// registered names never look like dotted OIDs
	respond(w, r, http.StatusOK, dto.ResolveResponse{
		Table: table,
		Input: input,
		Name:  name,
		Found: name != input,
	})
}
