// Package metrics holds the Prometheus collectors for the matching core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LikesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_likes_total",
		Help: "Like toggles by outcome (liked, unliked, matched).",
	}, []string{"outcome"})

	MatchesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_matches_created_total",
		Help: "Matches created by origin (like, request, dice).",
	}, []string{"origin"})

	FriendRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_friend_requests_total",
		Help: "Friend request transitions (sent, accepted, rejected).",
	}, []string{"action"})

	PairsPurged = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_pairs_purged_total",
		Help: "Pairs reset to strangers, by cause.",
	}, []string{"cause"})

	MessagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campus_messages_sent_total",
		Help: "Messages accepted by the messaging channel.",
	})

	MessagesRefused = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_messages_refused_total",
		Help: "Messages refused, by reason.",
	}, []string{"reason"})

	DiceRolls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_dice_rolls_total",
		Help: "Dice rolls by face.",
	}, []string{"face"})

	DiceSelections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campus_dice_selections_total",
		Help: "Completed dice partner selections.",
	})

	DiceExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campus_dice_matches_expired_total",
		Help: "Dice matches removed because nobody chatted in time.",
	})

	SweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "campus_dice_sweep_duration_seconds",
		Help:    "Duration of one dice expiry sweep.",
		Buckets: prometheus.DefBuckets,
	})

	Warnings = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campus_warnings_total",
		Help: "Warnings issued.",
	})

	Bans = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_bans_total",
		Help: "Bans created, by kind (manual, auto, deletion).",
	}, []string{"kind"})

	RPCs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_grpc_requests_total",
		Help: "Handled RPCs by method and status code.",
	}, []string{"method", "code"})

	RPCDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "campus_grpc_request_duration_seconds",
		Help:    "RPC latency by method.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
)
