// Package nodes contains the workflow nodes this module contributes to the
// host catalog.
package nodes

import (
	"github.com/wavekit/wave-nodes-http/pkg/catalog"
	"github.com/wavekit/wave-nodes-http/pkg/wave"
)

// Version is the release version of the bundled nodes.
const Version = "1.0.0"

// NodeNameHTTPGet is the display name the HTTP GET node registers under.
const NodeNameHTTPGet = "HTTP GET"

// DefaultCatalog wires up the nodes handed to the host loader.
func DefaultCatalog() *catalog.Catalog {
	return CatalogWithClient(nil)
}

// CatalogWithClient builds the catalog with every node using the given client
// factory. A nil factory leaves each node on its default HTTP client.
func CatalogWithClient(factory ClientFactory) *catalog.Catalog {
	c := catalog.New()
	c.MustRegister(catalog.Entry{
		Name:        NodeNameHTTPGet,
		Description: "Performs an HTTP GET against the login endpoint of the configured host",
		Icon:        "icons/http-get.svg",
		Version:     Version,
		New:         func() wave.Node { return NewHTTPGetNodeWithClient(factory) },
	})
	return c
}
