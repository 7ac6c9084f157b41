package httpx

import "net/http"

const (
	corsMethods = "GET, POST, PUT, DELETE"
	corsHeaders = "Content-Type, Authorization"
)

// cors sets cross-origin headers for the configured front-end origin and
// short-circuits preflight requests. An empty origin disables CORS entirely.
func (r *Router) cors(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if r.allowedOrigin != "" {
			headers := w.Header()
			headers.Set("Access-Control-Allow-Origin", r.allowedOrigin)
			headers.Add("Vary", "Origin")
			headers.Set("Access-Control-Allow-Methods", corsMethods)
			headers.Set("Access-Control-Allow-Headers", corsHeaders)
		}
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next(w, req)
	}
}
