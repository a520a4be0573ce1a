// Package metrics counts what happens during a session. Every Collector owns
// its own registry so sessions and tests never share counters.
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Collector holds the session's counters
type Collector struct {
	registry *prometheus.Registry

	// Event Metrics
	EventsPublished     *prometheus.CounterVec
	EventDecodeFailures *prometheus.CounterVec

	// Game Metrics
	DrinksPurchased   *prometheus.CounterVec
	PurchasesRejected *prometheus.CounterVec
	MoneySpent        prometheus.Counter
	Fights            *prometheus.CounterVec
	FightRounds       prometheus.Histogram
	LootGranted       *prometheus.CounterVec
	FleeAttempts      *prometheus.CounterVec
	EquipmentChanges  *prometheus.CounterVec
	SessionsEnded     *prometheus.CounterVec
}

// NewCollector creates a Collector backed by a fresh registry
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	counterVec := func(name, help string, labels ...string) *prometheus.CounterVec {
		return factory.NewCounterVec(
			prometheus.CounterOpts{Namespace: Namespace, Name: name, Help: help},
			labels,
		)
	}

	return &Collector{
		registry: reg,

		EventsPublished:     counterVec(MetricNameEventsPublished, HelpTextEventsPublished, LabelType),
		EventDecodeFailures: counterVec(MetricNameEventDecodeFailures, HelpTextEventDecodeFailures, LabelType),

		DrinksPurchased:   counterVec(MetricNameDrinksPurchased, HelpTextDrinksPurchased, LabelDrink),
		PurchasesRejected: counterVec(MetricNamePurchasesRejected, HelpTextPurchasesRejected, LabelDrink),
		MoneySpent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameMoneySpent,
			Help:      HelpTextMoneySpent,
		}),
		Fights: counterVec(MetricNameFights, HelpTextFights, LabelOutcome),
		FightRounds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameFightRounds,
			Help:      HelpTextFightRounds,
			Buckets:   FightRoundBuckets,
		}),
		LootGranted:      counterVec(MetricNameLootGranted, HelpTextLootGranted, LabelItem),
		FleeAttempts:     counterVec(MetricNameFleeAttempts, HelpTextFleeAttempts, LabelResult),
		EquipmentChanges: counterVec(MetricNameEquipmentChanges, HelpTextEquipmentChanges, LabelAction),
		SessionsEnded:    counterVec(MetricNameSessionsEnded, HelpTextSessionsEnded, LabelReason),
	}
}

// Registry exposes the underlying registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Summary gathers the registry into a flat map keyed by metric name and labels,
// e.g. `tavern_fights_total{outcome="character_won"}`. Histograms contribute
// their _count and _sum. Series never touched are absent.
func (c *Collector) Summary() (map[string]float64, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	summary := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := seriesKey(mf.GetName(), m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				summary[key] = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				summary[key] = m.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				summary[seriesKey(mf.GetName()+"_count", m.GetLabel())] = float64(m.GetHistogram().GetSampleCount())
				summary[seriesKey(mf.GetName()+"_sum", m.GetLabel())] = m.GetHistogram().GetSampleSum()
			}
		}
	}
	return summary, nil
}

// SortedKeys returns the keys of a summary in lexical order
func SortedKeys(summary map[string]float64) []string {
	keys := make([]string, 0, len(summary))
	for k := range summary {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func seriesKey(name string, labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return name
	}
	parts := make([]string, 0, len(labels))
	for _, lp := range labels {
		parts = append(parts, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
	}
	return name + "{" + strings.Join(parts, ",") + "}"
}
