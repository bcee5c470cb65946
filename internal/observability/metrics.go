// Package observability provides metrics and tracing for the service.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// PostsCreated counts successfully created posts.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ripple_posts_created_total",
		Help: "Total number of posts created",
	})

	// LikesToggled counts like toggles by resulting state.
	LikesToggled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_likes_toggled_total",
		Help: "Total number of like toggles by resulting state",
	}, []string{"state"})

	// MediaUploads counts upload attempts by outcome.
	MediaUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_media_uploads_total",
		Help: "Total number of media uploads by outcome",
	}, []string{"outcome"})
)
