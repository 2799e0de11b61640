package es

import (
	"github.com/elastic/go-elasticsearch/v8"
)

// Connect builds an Elasticsearch client for the given node URL. The client
// lazily establishes connections, so this never touches the network; the
// readiness of the search service is observed per request.
func Connect(url string) (*elasticsearch.Client, error) {
	return elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{url},
	})
}
