package rest

import "net/http"

type welcomeResponse struct {
	Message string `json:"message"`
}

// Root handles GET / with a static welcome message.
func Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, welcomeResponse{Message: "Welcome to the Dabia API"})
}
