package server

import (
	"net/http"

	"github.com/trojanworks/resourcehub/internal/utils"
	"github.com/trojanworks/resourcehub/pkg/favorites"
	"github.com/trojanworks/resourcehub/pkg/sources"
)

type Server struct {
	Internal  sources.Source
	External  sources.Source
	Favorites *favorites.Overlay
	Username  string
	Password  string
}

func New(internal, external sources.Source, fav *favorites.Overlay, user, pass string) *Server {
	return &Server{
		Internal:  internal,
		External:  external,
		Favorites: fav,
		Username:  user,
		Password:  pass,
	}
}

// Handler builds the API routes. Split out of Start so tests can drive the
// mux directly.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/resources", s.basicAuth(s.handleResources))
	mux.HandleFunc("GET /api/internal-resources", s.basicAuth(s.handleInternalResources))
	mux.HandleFunc("GET /api/external-resources", s.basicAuth(s.handleExternalResources))
	mux.HandleFunc("GET /api/search", s.basicAuth(s.handleSearch))
	mux.HandleFunc("GET /api/favorites", s.basicAuth(s.handleFavorites))
	mux.HandleFunc("POST /api/favorites/toggle", s.basicAuth(s.handleToggleFavorite))

	return mux
}

func (s *Server) Start(addr string) error {
	utils.Log.Infof("Starting server on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Username == "" && s.Password == "" {
			next(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.Username || pass != s.Password {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}
