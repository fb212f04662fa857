package httpapi

import "net/http"

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	views, err := s.categories.Categories(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, views)
}
