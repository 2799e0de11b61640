package search

import (
	"context"
	"sort"
	"time"
)

type metricValue struct {
	Value float64 `json:"value"`
}

type statsValue struct {
	Count int64   `json:"count"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Avg   float64 `json:"avg"`
	Sum   float64 `json:"sum"`
}

func (b *elasticBackend) SearchTechnicians(ctx context.Context, term string) ([]TechnicianHit, error) {
	body := map[string]interface{}{
		"size": 0,
		"query": map[string]interface{}{
			"wildcard": map[string]interface{}{
				"technician.keyword": map[string]interface{}{
					"value":            "*" + term + "*",
					"case_insensitive": true,
				},
			},
		},
		"aggs": map[string]interface{}{
			"technician": map[string]interface{}{
				"terms": map[string]interface{}{"field": "technician.keyword", "size": 100},
			},
		},
	}
	var out struct {
		Aggregations struct {
			Technician struct {
				Buckets []struct {
					Key      string `json:"key"`
					DocCount int64  `json:"doc_count"`
				} `json:"buckets"`
			} `json:"technician"`
		} `json:"aggregations"`
	}
	if err := b.query(ctx, IndexServiceLogs, body, &out); err != nil {
		return nil, err
	}

	var hits []TechnicianHit
	for _, bk := range out.Aggregations.Technician.Buckets {
		hits = append(hits, TechnicianHit{Technician: bk.Key, Jobs: bk.DocCount})
	}
	return hits, nil
}

func (b *elasticBackend) TechnicianPerformance(ctx context.Context, since *time.Time) ([]PerformanceRow, error) {
	body := map[string]interface{}{
		"size": 0,
		"aggs": map[string]interface{}{
			"technician": map[string]interface{}{
				"terms": map[string]interface{}{"field": "technician.keyword", "size": 100},
				"aggs": map[string]interface{}{
					"service_type": map[string]interface{}{
						"terms": map[string]interface{}{"field": "service_type.keyword", "size": 100},
						"aggs": map[string]interface{}{
							"week": map[string]interface{}{
								"date_histogram": map[string]interface{}{
									"field":             "timestamp",
									"calendar_interval": "week",
								},
								"aggs": map[string]interface{}{
									"duration": map[string]interface{}{
										"stats": map[string]interface{}{"field": "duration_ms"},
									},
								},
							},
						},
					},
				},
			},
		},
	}
	if since != nil {
		body["query"] = map[string]interface{}{
			"range": map[string]interface{}{
				"timestamp": map[string]interface{}{"gt": since},
			},
		}
	}

	var out struct {
		Aggregations struct {
			Technician struct {
				Buckets []struct {
					Key         string `json:"key"`
					ServiceType struct {
						Buckets []struct {
							Key  string `json:"key"`
							Week struct {
								Buckets []struct {
									Key      int64      `json:"key"`
									DocCount int64      `json:"doc_count"`
									Duration statsValue `json:"duration"`
								} `json:"buckets"`
							} `json:"week"`
						} `json:"buckets"`
					} `json:"service_type"`
				} `json:"buckets"`
			} `json:"technician"`
		} `json:"aggregations"`
	}
	if err := b.query(ctx, IndexServiceLogs, body, &out); err != nil {
		return nil, err
	}

	var rows []PerformanceRow
	for _, tb := range out.Aggregations.Technician.Buckets {
		for _, sb := range tb.ServiceType.Buckets {
			for _, wb := range sb.Week.Buckets {
				if wb.DocCount == 0 {
					continue
				}
				rows = append(rows, PerformanceRow{
					Technician:    tb.Key,
					ServiceType:   sb.Key,
					Week:          time.UnixMilli(wb.Key).UTC(),
					JobsCompleted: wb.DocCount,
					AvgDurationMS: wb.Duration.Avg,
					FastestJob:    wb.Duration.Min,
					SlowestJob:    wb.Duration.Max,
				})
			}
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Week.Equal(rows[j].Week) {
			return rows[i].Week.After(rows[j].Week)
		}
		return rows[i].Technician < rows[j].Technician
	})
	return rows, nil
}

func (b *elasticBackend) TechnicianLeaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	body := map[string]interface{}{
		"size": 0,
		"query": map[string]interface{}{
			"range": map[string]interface{}{
				"timestamp": map[string]interface{}{"gte": "now/M"},
			},
		},
		"aggs": map[string]interface{}{
			"technician": map[string]interface{}{
				"terms": map[string]interface{}{"field": "technician.keyword", "size": 10},
			},
		},
	}
	var out struct {
		Aggregations struct {
			Technician struct {
				Buckets []struct {
					Key      string `json:"key"`
					DocCount int64  `json:"doc_count"`
				} `json:"buckets"`
			} `json:"technician"`
		} `json:"aggregations"`
	}
	if err := b.query(ctx, IndexServiceLogs, body, &out); err != nil {
		return nil, err
	}

	var entries []LeaderboardEntry
	for _, bk := range out.Aggregations.Technician.Buckets {
		entries = append(entries, LeaderboardEntry{Technician: bk.Key, JobsCompleted: bk.DocCount})
	}
	return entries, nil
}

func (b *elasticBackend) TechnicianUtilization(ctx context.Context, since *time.Time, technician string) ([]UtilizationRow, error) {
	filter := []map[string]interface{}{}
	if since != nil {
		filter = append(filter, map[string]interface{}{
			"range": map[string]interface{}{
				"timestamp": map[string]interface{}{"gt": since},
			},
		})
	}
	if technician != "" {
		filter = append(filter, termClause("technician.keyword", technician))
	}
	body := map[string]interface{}{
		"size": 0,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{"filter": filter},
		},
		"aggs": map[string]interface{}{
			"technician": map[string]interface{}{
				"terms": map[string]interface{}{"field": "technician.keyword", "size": 100},
				"aggs": map[string]interface{}{
					"total": map[string]interface{}{
						"sum": map[string]interface{}{"field": "duration_ms"},
					},
					"pct": map[string]interface{}{
						"percentiles": map[string]interface{}{
							"field":    "duration_ms",
							"percents": []float64{50, 95},
						},
					},
				},
			},
		},
	}
	var out struct {
		Aggregations struct {
			Technician struct {
				Buckets []struct {
					Key      string      `json:"key"`
					DocCount int64       `json:"doc_count"`
					Total    metricValue `json:"total"`
					Pct      struct {
						Values map[string]float64 `json:"values"`
					} `json:"pct"`
				} `json:"buckets"`
			} `json:"technician"`
		} `json:"aggregations"`
	}
	if err := b.query(ctx, IndexServiceLogs, body, &out); err != nil {
		return nil, err
	}

	var rows []UtilizationRow
	for _, bk := range out.Aggregations.Technician.Buckets {
		rows = append(rows, UtilizationRow{
			Technician:       bk.Key,
			Jobs:             bk.DocCount,
			TotalDurationMS:  bk.Total.Value,
			MedianDurationMS: bk.Pct.Values["50.0"],
			P95DurationMS:    bk.Pct.Values["95.0"],
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalDurationMS > rows[j].TotalDurationMS
	})
	return rows, nil
}

func (b *elasticBackend) RevenueBreakdown(ctx context.Context) ([]RevenueBucket, error) {
	body := map[string]interface{}{
		"size": 0,
		"aggs": map[string]interface{}{
			"week": map[string]interface{}{
				"date_histogram": map[string]interface{}{
					"field":             "order_date",
					"calendar_interval": "week",
				},
				"aggs": map[string]interface{}{
					"store": map[string]interface{}{
						"terms": map[string]interface{}{"field": "store.keyword", "size": 50},
						"aggs": map[string]interface{}{
							"key_type": map[string]interface{}{
								"terms": map[string]interface{}{"field": "key_type.keyword", "size": 50},
								"aggs": map[string]interface{}{
									"revenue": map[string]interface{}{
										"sum": map[string]interface{}{"field": "price"},
									},
									"avg_order_value": map[string]interface{}{
										"avg": map[string]interface{}{"field": "price"},
									},
								},
							},
						},
					},
				},
			},
		},
	}
	var out struct {
		Aggregations struct {
			Week struct {
				Buckets []struct {
					Key   int64 `json:"key"`
					Store struct {
						Buckets []struct {
							Key     string `json:"key"`
							KeyType struct {
								Buckets []struct {
									Key           string      `json:"key"`
									DocCount      int64       `json:"doc_count"`
									Revenue       metricValue `json:"revenue"`
									AvgOrderValue metricValue `json:"avg_order_value"`
								} `json:"buckets"`
							} `json:"key_type"`
						} `json:"buckets"`
					} `json:"store"`
				} `json:"buckets"`
			} `json:"week"`
		} `json:"aggregations"`
	}
	if err := b.query(ctx, IndexOrders, body, &out); err != nil {
		return nil, err
	}

	var buckets []RevenueBucket
	for _, wb := range out.Aggregations.Week.Buckets {
		week := time.UnixMilli(wb.Key).UTC()
		for _, sb := range wb.Store.Buckets {
			for _, kb := range sb.KeyType.Buckets {
				buckets = append(buckets, RevenueBucket{
					Week:          week,
					Store:         sb.Key,
					KeyType:       kb.Key,
					OrderCount:    kb.DocCount,
					Revenue:       kb.Revenue.Value,
					AvgOrderValue: kb.AvgOrderValue.Value,
				})
			}
		}
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		if !buckets[i].Week.Equal(buckets[j].Week) {
			return buckets[i].Week.After(buckets[j].Week)
		}
		return buckets[i].Revenue > buckets[j].Revenue
	})
	return buckets, nil
}

func (b *elasticBackend) ServiceBreakdown(ctx context.Context) ([]ServiceBucket, error) {
	body := map[string]interface{}{
		"size": 0,
		"aggs": map[string]interface{}{
			"service_type": map[string]interface{}{
				"terms": map[string]interface{}{"field": "service_type.keyword", "size": 50},
				"aggs": map[string]interface{}{
					"total": map[string]interface{}{
						"sum": map[string]interface{}{"field": "duration_ms"},
					},
					"avg": map[string]interface{}{
						"avg": map[string]interface{}{"field": "duration_ms"},
					},
				},
			},
		},
	}
	var out struct {
		Aggregations struct {
			ServiceType struct {
				Buckets []struct {
					Key      string      `json:"key"`
					DocCount int64       `json:"doc_count"`
					Total    metricValue `json:"total"`
					Avg      metricValue `json:"avg"`
				} `json:"buckets"`
			} `json:"service_type"`
		} `json:"aggregations"`
	}
	if err := b.query(ctx, IndexServiceLogs, body, &out); err != nil {
		return nil, err
	}

	var buckets []ServiceBucket
	for _, bk := range out.Aggregations.ServiceType.Buckets {
		buckets = append(buckets, ServiceBucket{
			ServiceType:     bk.Key,
			Jobs:            bk.DocCount,
			TotalDurationMS: bk.Total.Value,
			AvgDurationMS:   bk.Avg.Value,
		})
	}
	return buckets, nil
}

func (b *elasticBackend) InventoryFacets(ctx context.Context) ([]InventoryFacet, error) {
	body := map[string]interface{}{
		"size": 0,
		"aggs": map[string]interface{}{
			"brand": map[string]interface{}{
				"terms": map[string]interface{}{"field": "brand.keyword", "size": 50},
				"aggs": map[string]interface{}{
					"key_type": map[string]interface{}{
						"terms": map[string]interface{}{"field": "key_type.keyword", "size": 50},
						"aggs": map[string]interface{}{
							"total_quantity": map[string]interface{}{
								"sum": map[string]interface{}{"field": "quantity"},
							},
							"avg_price": map[string]interface{}{
								"avg": map[string]interface{}{"field": "price"},
							},
						},
					},
				},
			},
		},
	}
	var out struct {
		Aggregations struct {
			Brand struct {
				Buckets []struct {
					Key     string `json:"key"`
					KeyType struct {
						Buckets []struct {
							Key           string      `json:"key"`
							DocCount      int64       `json:"doc_count"`
							TotalQuantity metricValue `json:"total_quantity"`
							AvgPrice      metricValue `json:"avg_price"`
						} `json:"buckets"`
					} `json:"key_type"`
				} `json:"buckets"`
			} `json:"brand"`
		} `json:"aggregations"`
	}
	if err := b.query(ctx, IndexInventory, body, &out); err != nil {
		return nil, err
	}

	var facets []InventoryFacet
	for _, bb := range out.Aggregations.Brand.Buckets {
		for _, kb := range bb.KeyType.Buckets {
			facets = append(facets, InventoryFacet{
				Brand:         bb.Key,
				KeyType:       kb.Key,
				Items:         kb.DocCount,
				TotalQuantity: int64(kb.TotalQuantity.Value),
				AvgPrice:      kb.AvgPrice.Value,
			})
		}
	}
	sort.SliceStable(facets, func(i, j int) bool {
		if facets[i].Items != facets[j].Items {
			return facets[i].Items > facets[j].Items
		}
		return facets[i].Brand < facets[j].Brand
	})
	return facets, nil
}
