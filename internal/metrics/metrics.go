package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Giveaway Metrics
var (
	GiveawaysCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGiveawaysCreated,
			Help: HelpTextGiveawaysCreated,
		},
		[]string{LabelGuild},
	)

	GiveawaysFinalized = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGiveawaysFinalized,
			Help: HelpTextGiveawaysFinalized,
		},
		[]string{LabelGuild},
	)

	GiveawayEntries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGiveawayEntries,
			Help: HelpTextGiveawayEntries,
		},
		[]string{LabelOutcome},
	)

	GiveawayRerolls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGiveawayRerolls,
			Help: HelpTextGiveawayRerolls,
		},
		[]string{LabelGuild},
	)
)

// Leveling Metrics
var (
	XPAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameXPAwarded,
			Help: HelpTextXPAwarded,
		},
		[]string{LabelGuild},
	)

	LevelUps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
		[]string{LabelGuild},
	)
)

// Command Metrics
var (
	CommandsHandled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsHandled,
			Help: HelpTextCommandsHandled,
		},
		[]string{LabelCommand},
	)

	CommandErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandErrors,
			Help: HelpTextCommandErrors,
		},
		[]string{LabelCommand},
	)

	CommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameCommandDuration,
			Help:    HelpTextCommandDuration,
			Buckets: prometheus.DefBuckets,
		},
		[]string{LabelCommand},
	)
)
