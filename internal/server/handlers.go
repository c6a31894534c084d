package server

import (
	"encoding/json"
	"net/http"

	"github.com/trojanworks/resourcehub/internal/utils"
	"github.com/trojanworks/resourcehub/pkg/query"
	"github.com/trojanworks/resourcehub/pkg/resource"
	"github.com/trojanworks/resourcehub/pkg/sources"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, err error) {
	utils.Log.Errorf("request failed: %v", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(errorResponse{Error: "Failed to process resources"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func paramsFromRequest(r *http.Request) query.Params {
	q := r.URL.Query()
	return query.Params{
		Query:    q.Get("q"),
		Category: q.Get("category"),
		Type:     q.Get("type"),
	}
}

// handleResources returns the merged flat resource list from both sources,
// internal first. Both fetches run concurrently; if either fails the whole
// request fails.
func (s *Server) handleResources(w http.ResponseWriter, r *http.Request) {
	all, err := sources.FetchAll(r.Context(), s.Internal, s.External)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, all)
}

// handleGrouped serves one source's resources grouped by category, with
// optional q/category filters applied to the groups.
func (s *Server) handleGrouped(w http.ResponseWriter, r *http.Request, src sources.Source) {
	resources, err := sources.FetchNormalized(r.Context(), src)
	if err != nil {
		writeError(w, err)
		return
	}

	groups := resource.GroupByCategory(resources)
	if p := paramsFromRequest(r); p.Active() {
		groups = query.FilterGroups(groups, p)
	}
	writeJSON(w, groups)
}

func (s *Server) handleInternalResources(w http.ResponseWriter, r *http.Request) {
	s.handleGrouped(w, r, s.Internal)
}

func (s *Server) handleExternalResources(w http.ResponseWriter, r *http.Request) {
	s.handleGrouped(w, r, s.External)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	all, err := sources.FetchAll(r.Context(), s.Internal, s.External)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, query.Filter(all, paramsFromRequest(r)))
}

// handleFavorites materializes the favorite set against the full resource
// list, so each entry carries its provenance type and grouping key.
func (s *Server) handleFavorites(w http.ResponseWriter, r *http.Request) {
	all, err := sources.FetchAll(r.Context(), s.Internal, s.External)
	if err != nil {
		writeError(w, err)
		return
	}

	matched, err := s.Favorites.Materialize(r.Context(), all)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, matched)
}

type toggleRequest struct {
	Name string `json:"name"`
}

type toggleResponse struct {
	Name     string `json:"name"`
	Favorite bool   `json:"favorite"`
}

func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	fav, err := s.Favorites.Toggle(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, toggleResponse{Name: req.Name, Favorite: fav})
}
