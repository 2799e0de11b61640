package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"clees-keys/internal/domain"
	"github.com/elastic/go-elasticsearch/v8"
)

// Index names the document-search service mirrors from the relational store.
const (
	IndexOrders      = "orders"
	IndexServiceLogs = "service_logs"
	IndexInventory   = "key_inventory"
	IndexCustomers   = "customers"
)

type elasticBackend struct {
	client *elasticsearch.Client
	logger *log.Logger
}

// NewElastic builds the document-index search backend. Queries express the
// same intent as the relational variant in the search service's own terms:
// match/prefix/fuzzy queries and date-histogram/terms aggregations.
func NewElastic(client *elasticsearch.Client, logger *log.Logger) Backend {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &elasticBackend{client: client, logger: logger}
}

// query runs a search request against one index and decodes the envelope
// into out. Transport failures surface as ErrUnavailable.
func (b *elasticBackend) query(ctx context.Context, index string, body map[string]interface{}, out interface{}) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return err
	}

	res, err := b.client.Search(
		b.client.Search.WithContext(ctx),
		b.client.Search.WithIndex(index),
		b.client.Search.WithBody(&buf),
	)
	if err != nil {
		b.logger.Printf("search es: index=%s error=%v", index, err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		b.logger.Printf("search es: index=%s status=%s", index, res.Status())
		return fmt.Errorf("search index %s: %s", index, res.Status())
	}
	return json.NewDecoder(res.Body).Decode(out)
}

type hitsEnvelope[T any] struct {
	Hits struct {
		Hits []struct {
			Source T `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func collectHits[T any](env hitsEnvelope[T]) []T {
	var out []T
	for _, h := range env.Hits.Hits {
		out = append(out, h.Source)
	}
	return out
}

func (b *elasticBackend) AutocompleteOrders(ctx context.Context, prefix string) ([]OrderSuggestion, error) {
	body := map[string]interface{}{
		"size": 10,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  prefix,
				"type":   "phrase_prefix",
				"fields": []string{"description", "key_type"},
			},
		},
		"_source": []string{"id", "description", "key_type"},
	}
	var env hitsEnvelope[OrderSuggestion]
	if err := b.query(ctx, IndexOrders, body, &env); err != nil {
		return nil, err
	}
	return collectHits(env), nil
}

func (b *elasticBackend) SearchInventory(ctx context.Context, term string, filters InventoryFilters) ([]domain.KeyInventoryItem, error) {
	filter := []map[string]interface{}{}
	if filters.KeyType != "" {
		filter = append(filter, termClause("key_type.keyword", filters.KeyType))
	}
	if filters.Brand != "" {
		filter = append(filter, termClause("brand.keyword", filters.Brand))
	}
	body := map[string]interface{}{
		"size": 50,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": map[string]interface{}{
					"multi_match": map[string]interface{}{
						"query":  term,
						"fields": []string{"sku", "brand", "description"},
					},
				},
				"filter": filter,
			},
		},
	}
	var env hitsEnvelope[domain.KeyInventoryItem]
	if err := b.query(ctx, IndexInventory, body, &env); err != nil {
		return nil, err
	}
	return collectHits(env), nil
}

func (b *elasticBackend) SearchServiceLogs(ctx context.Context, term string, window LogWindow) ([]domain.ServiceLog, error) {
	filter := []map[string]interface{}{}
	if window.Since != nil || window.Until != nil {
		rng := map[string]interface{}{}
		if window.Since != nil {
			rng["gte"] = window.Since
		}
		if window.Until != nil {
			rng["lt"] = window.Until
		}
		filter = append(filter, map[string]interface{}{
			"range": map[string]interface{}{"timestamp": rng},
		})
	}
	body := map[string]interface{}{
		"size": 50,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": map[string]interface{}{
					"match": map[string]interface{}{"message": term},
				},
				"filter": filter,
			},
		},
		"sort": []map[string]interface{}{
			{"timestamp": map[string]interface{}{"order": "desc"}},
		},
	}
	var env hitsEnvelope[domain.ServiceLog]
	if err := b.query(ctx, IndexServiceLogs, body, &env); err != nil {
		return nil, err
	}
	return collectHits(env), nil
}

func (b *elasticBackend) FuzzyServiceLogs(ctx context.Context, term string) ([]domain.ServiceLog, error) {
	body := map[string]interface{}{
		"size": 50,
		"query": map[string]interface{}{
			"match": map[string]interface{}{
				"message": map[string]interface{}{
					"query":     term,
					"fuzziness": "AUTO",
				},
			},
		},
	}
	var env hitsEnvelope[domain.ServiceLog]
	if err := b.query(ctx, IndexServiceLogs, body, &env); err != nil {
		return nil, err
	}
	return collectHits(env), nil
}

func (b *elasticBackend) SearchCustomers(ctx context.Context, term string) ([]domain.Customer, error) {
	body := map[string]interface{}{
		"size": 50,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  term,
				"fields": []string{"name", "email", "phone", "address"},
			},
		},
	}
	var env hitsEnvelope[domain.Customer]
	if err := b.query(ctx, IndexCustomers, body, &env); err != nil {
		return nil, err
	}
	return collectHits(env), nil
}

func (b *elasticBackend) LookupCustomersByPhone(ctx context.Context, prefix string) ([]domain.Customer, error) {
	body := map[string]interface{}{
		"size": 50,
		"query": map[string]interface{}{
			"prefix": map[string]interface{}{
				"phone.keyword": prefix,
			},
		},
	}
	var env hitsEnvelope[domain.Customer]
	if err := b.query(ctx, IndexCustomers, body, &env); err != nil {
		return nil, err
	}
	return collectHits(env), nil
}

func (b *elasticBackend) NearbyCustomers(ctx context.Context, address string) ([]domain.Customer, error) {
	body := map[string]interface{}{
		"size": 20,
		"query": map[string]interface{}{
			"match": map[string]interface{}{
				"address": map[string]interface{}{
					"query":     address,
					"fuzziness": "AUTO",
				},
			},
		},
	}
	var env hitsEnvelope[domain.Customer]
	if err := b.query(ctx, IndexCustomers, body, &env); err != nil {
		return nil, err
	}
	return collectHits(env), nil
}

func termClause(field string, value interface{}) map[string]interface{} {
	return map[string]interface{}{
		"term": map[string]interface{}{field: value},
	}
}
