package streamerhandlers

import (
	"context"
	"errors"

	streamerevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/streamer"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
)

// HandleRegister signs a caster up for one side of a match.
func (h *StreamerHandlers) HandleRegister(ctx context.Context, payload *streamerevents.StreamerRegisterRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.Register(ctx, payload)
	if err != nil {
		return nil, err
	}
	return mapOperationResult(result,
		streamerevents.StreamerRegisteredV1,
		streamerevents.StreamerRegistrationFailedV1,
	), nil
}

// HandleUnregister removes a caster's signup.
func (h *StreamerHandlers) HandleUnregister(ctx context.Context, payload *streamerevents.StreamerUnregisterRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.Unregister(ctx, payload)
	if err != nil {
		return nil, err
	}
	return mapOperationResult(result,
		streamerevents.StreamerUnregisteredV1,
		streamerevents.StreamerUnregistrationFailedV1,
	), nil
}

// HandleList returns the streamers signed up for a match.
func (h *StreamerHandlers) HandleList(ctx context.Context, payload *streamerevents.StreamerListRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.List(ctx, payload)
	if err != nil {
		return nil, err
	}
	return mapOperationResult(result,
		streamerevents.StreamerListV1,
		streamerevents.StreamerListRetrievalFailed,
	), nil
}
