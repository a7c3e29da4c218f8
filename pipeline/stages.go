package pipeline

import (
	"chat-gate/domain"
	"chat-gate/policy"
	"context"
	"log/slog"

	"github.com/google/uuid"
)

const (
	StageTimeWindow  = "time_window"
	StageRateLimit   = "rate_limit"
	StageRole        = "role"
	StageParticipant = "participant"
)

// TargetResolver loads the entities a participant check needs.
// Failures keep their own kind (not found, store unavailable) and are
// never turned into an authorization failure.
type TargetResolver interface {
	ResolveConversation(id uuid.UUID) (domain.Conversation, error)
	ResolveMessage(id uuid.UUID) (domain.Message, domain.Conversation, error)
}

func fromErr(err error) Outcome {
	if err != nil {
		return Reject(err)
	}
	return Admit()
}

// TimeWindowStage applies to every request regardless of identity.
func TimeWindowStage(gate policy.TimeWindowGate) Stage {
	return Stage{
		Name: StageTimeWindow,
		Eval: func(_ context.Context, req Request) Outcome {
			return fromErr(gate.Admit(req.Now))
		},
	}
}

// RateLimitStage only counts message creations; reads bypass it.
func RateLimitStage(limiter *policy.RateLimiter) Stage {
	return Stage{
		Name: StageRateLimit,
		Eval: func(_ context.Context, req Request) Outcome {
			if !req.IsMessageCreation() {
				return Admit()
			}
			return fromErr(limiter.Admit(req.ClientKey, req.Now))
		},
	}
}

// RoleStage only looks at non-create mutations.
func RoleStage(gate policy.RoleGate) Stage {
	return Stage{
		Name: StageRole,
		Eval: func(_ context.Context, req Request) Outcome {
			return fromErr(gate.Authorize(req.Identity, req.Method))
		},
	}
}

// ParticipantStage checks membership of the targeted conversation.
// Callers holding one of bypassRoles skip the membership check (but not
// authentication); by default nobody does.
func ParticipantStage(resolver TargetResolver, bypassRoles ...domain.Role) Stage {
	p := policy.ParticipantPolicy{}
	return Stage{
		Name: StageParticipant,
		Eval: func(_ context.Context, req Request) Outcome {
			if err := p.Authenticated(req.Identity); err != nil {
				return Reject(err)
			}
			if len(bypassRoles) > 0 && domain.HasRole(req.Identity, bypassRoles...) {
				return Admit()
			}
			switch {
			case req.MessageID != nil:
				message, conversation, err := resolver.ResolveMessage(*req.MessageID)
				if err != nil {
					return Reject(err)
				}
				return fromErr(p.Authorize(req.Identity, policy.MessageTarget{Message: message, Conversation: conversation}))
			case req.ConversationID != nil:
				conversation, err := resolver.ResolveConversation(*req.ConversationID)
				if err != nil {
					return Reject(err)
				}
				return fromErr(p.Authorize(req.Identity, policy.ConversationTarget{Conversation: conversation}))
			default:
				// Listings are scoped by the service to the caller's conversations
				return Admit()
			}
		},
	}
}

// Gates groups the policies of the default pipeline.
type Gates struct {
	TimeWindow  policy.TimeWindowGate
	RateLimiter *policy.RateLimiter
	Role        policy.RoleGate
	Resolver    TargetResolver
	BypassRoles []domain.Role
}

// NewDefault builds time window -> rate limit -> role -> participant.
func NewDefault(log *slog.Logger, gates Gates) *Pipeline {
	return New(log,
		TimeWindowStage(gates.TimeWindow),
		RateLimitStage(gates.RateLimiter),
		RoleStage(gates.Role),
		ParticipantStage(gates.Resolver, gates.BypassRoles...),
	)
}
