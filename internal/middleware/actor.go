package middleware

import (
	"context"
	"net/http"

	"github.com/webshop-oms/order-service/internal/entities"
)

// The auth gateway in front of this service verifies the session and
// forwards the caller's identity as headers. This middleware turns them into
// an explicit entities.Actor so no core operation ever reads identity
// ambiently.
const (
	headerActorRole = "X-Actor-Role"
	headerActorID   = "X-Actor-Id"
	headerActorName = "X-Actor-Name"
)

type actorKey struct{}

func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := entities.Actor{
			Role: entities.Role(r.Header.Get(headerActorRole)),
			ID:   r.Header.Get(headerActorID),
			Name: r.Header.Get(headerActorName),
		}

		if actor.Role.Valid() && actor.ID != "" {
			r = r.WithContext(context.WithValue(r.Context(), actorKey{}, actor))
		}

		next.ServeHTTP(w, r)
	})
}

func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(entities.Actor)
	return actor, ok
}
