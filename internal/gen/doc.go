// Package gen derives artifacts from a discovered route tree.
//
// Every generator works from the same input, the routes.Tree returned by
// routes.Discover, so docs, client and OpenAPI output always agree on the set
// of routes:
//
//	tree, err := routes.Discover("api")
//	if err != nil {
//	    return err
//	}
//	docs := gen.GenerateDocs(tree.Paths())
//	client, err := gen.GenerateClient(tree, "http://localhost:3000")
//
// # Methods
//
// GenerateDocs lists GET, POST, PUT and DELETE for every route. GenerateClient
// and GenerateOpenAPI only emit the methods routes.InferMethods finds in the
// route file, so a route can be documented with methods it does not serve.
package gen
