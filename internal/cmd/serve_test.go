package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/dyapi/dyctl/api"
	apimock "github.com/dyapi/dyctl/api/mock"
	"github.com/dyapi/dyctl/internal/dyctl"
	"github.com/dyapi/dyctl/internal/http"
	uimock "github.com/dyapi/dyctl/internal/ui/mock"
	"github.com/dyapi/dyctl/session"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestChooseCmd_Run(t *testing.T) {
	raw := json.RawMessage(`{"choices":[]}`)

	tests := []struct {
		name          string
		cmd           ChooseCmd
		expectedError string
		setupMocks    func(ctrl *gomock.Controller) (dyctl.ServiceFactory, *uimock.MockProvider)
	}{
		{
			name: "json",
			cmd: ChooseCmd{
				Selectors: []string{"Hero", "Recs"},
				Groups:    []string{"home"},
				PageFlags: PageFlags{PageType: "HOMEPAGE", Location: "https://example.com"},
				Output:    "json",
			},
			setupMocks: func(ctrl *gomock.Controller) (dyctl.ServiceFactory, *uimock.MockProvider) {
				mockService := apimock.NewMockService(ctrl)
				mockUI := uimock.NewMockProvider(ctrl)

				body := api.Envelope{
					"selector": map[string]any{"names": []any{"Hero", "Recs"}, "groups": []any{"home"}},
					"context": map[string]any{"page": map[string]any{
						"type":     "HOMEPAGE",
						"location": "https://example.com",
					}},
				}
				gomock.InOrder(
					runSpinner(mockUI),
					mockService.EXPECT().ChooseVariations(gomock.Any(), body).
						Return(&api.ServeResponse{Response: &api.Response{StatusCode: 200, Body: raw}}, nil),
					mockUI.EXPECT().ShowJSON(raw).Return(nil),
				)
				return factoryFor(mockService), mockUI
			},
		},
		{
			name: "yaml",
			cmd:  ChooseCmd{Output: "yaml"},
			setupMocks: func(ctrl *gomock.Controller) (dyctl.ServiceFactory, *uimock.MockProvider) {
				mockService := apimock.NewMockService(ctrl)
				mockUI := uimock.NewMockProvider(ctrl)

				gomock.InOrder(
					runSpinner(mockUI),
					mockService.EXPECT().ChooseVariations(gomock.Any(), api.Envelope{}).
						Return(&api.ServeResponse{Response: &api.Response{StatusCode: 200, Body: raw}}, nil),
					mockUI.EXPECT().ShowYAML(raw).Return(nil),
				)
				return factoryFor(mockService), mockUI
			},
		},
		{
			name: "text",
			cmd:  ChooseCmd{Selectors: []string{"Hero"}, Output: "text"},
			setupMocks: func(ctrl *gomock.Controller) (dyctl.ServiceFactory, *uimock.MockProvider) {
				mockService := apimock.NewMockService(ctrl)
				mockUI := uimock.NewMockProvider(ctrl)

				resp := &api.ServeResponse{
					Response: &api.Response{StatusCode: 200, Body: raw},
					Choices: []api.Choice{
						{
							Name:       "Hero",
							Type:       "DECISION",
							DecisionID: "d1",
							Variations: []api.Variation{
								{ID: "1", Payload: api.Payload{Type: "CUSTOM_JSON"}},
								{ID: "2", Payload: api.Payload{Type: "CUSTOM_JSON"}},
							},
						},
						{Name: "Recs", Type: "RECS_DECISION", DecisionID: "d2"},
					},
				}
				gomock.InOrder(
					runSpinner(mockUI),
					mockService.EXPECT().ChooseVariations(gomock.Any(), gomock.Any()).Return(resp, nil),
					mockUI.EXPECT().ShowHeading("Hero"),
					mockUI.EXPECT().ShowKeyValue("Type", "DECISION"),
					mockUI.EXPECT().ShowKeyValue("Decision", "d1"),
					mockUI.EXPECT().ShowKeyValue("Variations", "1 (CUSTOM_JSON), 2 (CUSTOM_JSON)"),
					mockUI.EXPECT().NewLine(),
					mockUI.EXPECT().ShowHeading("Recs"),
					mockUI.EXPECT().ShowKeyValue("Type", "RECS_DECISION"),
					mockUI.EXPECT().ShowKeyValue("Decision", "d2"),
					mockUI.EXPECT().ShowKeyValue("Variations", ""),
				)
				return factoryFor(mockService), mockUI
			},
		},
		{
			name: "text without choices",
			cmd:  ChooseCmd{Output: "text"},
			setupMocks: func(ctrl *gomock.Controller) (dyctl.ServiceFactory, *uimock.MockProvider) {
				mockService := apimock.NewMockService(ctrl)
				mockUI := uimock.NewMockProvider(ctrl)

				gomock.InOrder(
					runSpinner(mockUI),
					mockService.EXPECT().ChooseVariations(gomock.Any(), gomock.Any()).
						Return(&api.ServeResponse{Response: &api.Response{Body: raw}}, nil),
					mockUI.EXPECT().ShowInfo("No campaigns were chosen."),
				)
				return factoryFor(mockService), mockUI
			},
		},
		{
			name:          "factory error",
			cmd:           ChooseCmd{Output: "json"},
			expectedError: "no api key configured",
			setupMocks: func(ctrl *gomock.Controller) (dyctl.ServiceFactory, *uimock.MockProvider) {
				factory := func(_ http.HTTPDoer, _ session.Store) (api.Service, error) {
					return nil, dyctl.ErrAPIKey
				}
				return factory, uimock.NewMockProvider(ctrl)
			},
		},
		{
			name:          "api error",
			cmd:           ChooseCmd{Output: "json"},
			expectedError: "chooseVariations failed: 401",
			setupMocks: func(ctrl *gomock.Controller) (dyctl.ServiceFactory, *uimock.MockProvider) {
				mockService := apimock.NewMockService(ctrl)
				mockUI := uimock.NewMockProvider(ctrl)

				gomock.InOrder(
					runSpinner(mockUI),
					mockService.EXPECT().ChooseVariations(gomock.Any(), gomock.Any()).
						Return(nil, &api.HTTPStatusError{Operation: api.OpChooseVariations, StatusCode: 401}),
				)
				return factoryFor(mockService), mockUI
			},
		},
		{
			name:          "invalid set",
			cmd:           ChooseCmd{BodyFlags: BodyFlags{Set: []string{"=x"}}, Output: "json"},
			expectedError: "expected key=value",
			setupMocks: func(ctrl *gomock.Controller) (dyctl.ServiceFactory, *uimock.MockProvider) {
				return factoryFor(apimock.NewMockService(ctrl)), uimock.NewMockProvider(ctrl)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			factory, mockUI := tt.setupMocks(ctrl)
			err := tt.cmd.Run(context.Background(), nil, session.NewMemoryStore(), factory, mockUI)

			if tt.expectedError != "" {
				assert.ErrorContains(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSearchCmd_Run(t *testing.T) {
	raw := json.RawMessage(`{"choices":[{"id":1}]}`)

	tests := []struct {
		name          string
		cmd           SearchCmd
		body          api.Envelope
		err           error
		expectedError string
	}{
		{
			name: "text and pagination",
			cmd:  SearchCmd{Text: "red shoes", NumItems: 5, Offset: 10, Output: "json"},
			body: api.Envelope{"query": map[string]any{
				"text":       "red shoes",
				"pagination": map[string]any{"numItems": 5, "offset": 10},
			}},
		},
		{
			name: "page context",
			cmd:  SearchCmd{Text: "hats", PageFlags: PageFlags{PageType: "CATEGORY", PageData: []string{"Hats"}}, Output: "json"},
			body: api.Envelope{
				"query":   map[string]any{"text": "hats"},
				"context": map[string]any{"page": map[string]any{"type": "CATEGORY", "data": []any{"Hats"}}},
			},
		},
		{
			name:          "missing identity",
			cmd:           SearchCmd{Output: "json"},
			body:          api.Envelope{},
			err:           &api.PreconditionError{Operation: api.OpSearch, Missing: []string{"session.id"}},
			expectedError: "search: missing required session.id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := apimock.NewMockService(ctrl)
			mockUI := uimock.NewMockProvider(ctrl)

			runSpinner(mockUI)
			if tt.err != nil {
				mockService.EXPECT().Search(gomock.Any(), tt.body).Return(nil, tt.err)
			} else {
				mockService.EXPECT().Search(gomock.Any(), tt.body).
					Return(&api.ServeResponse{Response: &api.Response{Body: raw}}, nil)
				mockUI.EXPECT().ShowJSON(raw).Return(nil)
			}

			err := tt.cmd.Run(context.Background(), nil, session.NewMemoryStore(), factoryFor(mockService), mockUI)
			if tt.expectedError != "" {
				assert.ErrorContains(t, err, tt.expectedError)
				assert.True(t, errors.Is(err, api.ErrPrecondition))
				return
			}
			assert.NoError(t, err)
		})
	}
}
