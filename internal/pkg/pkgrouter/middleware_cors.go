package pkgrouter

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/samber/lo"
)

// CORS returns a middleware that only grants cross-origin access to the given origins.
//
// An allowed Origin is echoed back in Access-Control-Allow-Origin. Requests with
// an unknown Origin, or no Origin at all, get no CORS headers. The origin set is
// built once and never mutated.
func CORS(origins []string) Middleware {
	allowed := lo.SliceToMap(origins, func(origin string) (string, struct{}) {
		return origin, struct{}{}
	})

	c := cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool {
			_, ok := allowed[origin]
			return ok
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{HeaderCorrelationID},
	})

	return c.Handler
}
