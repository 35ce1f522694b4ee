// Package http connects the service container to net/http.
//
// # Request scopes
//
// ScopeMiddleware derives a scope from the application container for every
// request and releases its Scoped instances once the handler returns.
//
//	root := container.New()
//	root.Register("db", openDB, container.Singleton)
//	root.Register("tx", func(c *container.Container) (any, error) {
//	    r := container.MustResolve[*http.Request](c, gohttp.RequestKey)
//	    db := container.MustResolve[*sql.DB](c, "db")
//	    return db.BeginTx(r.Context(), nil)
//	}, container.Scoped)
//
//	router := routing.New(gohttp.ScopeMiddleware(root))
//	router.Post("/orders", func(w http.ResponseWriter, r *http.Request) {
//	    tx, err := gohttp.Resolve[*sql.Tx](r, "tx")
//	    if err != nil {
//	        gohttp.NewResponse(w).ResolveError(err)
//	        return
//	    }
//	    ...
//	})
//
// # Response
//
//	res := gohttp.NewResponse(w)
//	res.Success(v)                     // 200 {"data": v}
//	res.Error(http.StatusBadRequest, "bad input")
//	res.NotFound()
//	res.ResolveError(err)              // 500 for container failures
package http
