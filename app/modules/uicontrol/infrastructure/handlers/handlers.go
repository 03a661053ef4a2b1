package uicontrolhandlers

import (
	"context"
	"errors"

	uicontrolservice "github.com/The-Bracket-Club/tourney-bot/app/modules/uicontrol/application"
	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	uicontrolevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/uicontrol"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// UIControlHandlers implements the Handlers interface for uicontrol events.
type UIControlHandlers struct {
	service uicontrolservice.Service
	helpers utils.Helpers
}

// NewUIControlHandlers creates a new UIControlHandlers instance.
func NewUIControlHandlers(service uicontrolservice.Service, helpers utils.Helpers) *UIControlHandlers {
	return &UIControlHandlers{
		service: service,
		helpers: helpers,
	}
}

// mapOperationResult converts a service OperationResult to handler Results.
func mapOperationResult(
	result results.OperationResult,
	successTopic, failureTopic string,
) []handlerwrapper.Result {
	handlerResults := result.MapToHandlerResults(successTopic, failureTopic)

	wrapperResults := make([]handlerwrapper.Result, len(handlerResults))
	for i, hr := range handlerResults {
		wrapperResults[i] = handlerwrapper.Result{
			Topic:    hr.Topic,
			Payload:  hr.Payload,
			Metadata: hr.Metadata,
		}
	}
	return wrapperResults
}

// HandleUpsert persists a control the gateway posted or changed.
func (h *UIControlHandlers) HandleUpsert(ctx context.Context, payload *uicontrolevents.ControlUpsertRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.Upsert(ctx, payload)
	if err != nil {
		return nil, err
	}
	return mapOperationResult(result,
		uicontrolevents.ControlUpsertedV1,
		uicontrolevents.ControlUpsertFailedV1,
	), nil
}

// HandleDeactivate marks a control dead.
func (h *UIControlHandlers) HandleDeactivate(ctx context.Context, payload *uicontrolevents.ControlDeactivateRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.Deactivate(ctx, payload)
	if err != nil {
		return nil, err
	}
	return mapOperationResult(result,
		uicontrolevents.ControlDeactivatedV1,
		uicontrolevents.ControlDeactivateFailedV1,
	), nil
}

// HandleRestore runs the startup restoration pass.
func (h *UIControlHandlers) HandleRestore(ctx context.Context, payload *uicontrolevents.RestoreRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.RestoreAll(ctx, payload)
	if err != nil {
		return nil, err
	}
	return mapOperationResult(result,
		uicontrolevents.RestoreCompletedV1,
		uicontrolevents.RestoreFailedV1,
	), nil
}

// HandleMatchDeleted drops every control belonging to a deleted match.
func (h *UIControlHandlers) HandleMatchDeleted(ctx context.Context, payload *matchevents.MatchDeletedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	if _, err := h.service.PurgeMatch(ctx, payload.MatchID); err != nil {
		return nil, err
	}
	return nil, nil
}
