package cmd

import (
	"github.com/dyapi/dyctl/api"
	"github.com/dyapi/dyctl/internal/dyctl"
	"github.com/dyapi/dyctl/internal/http"
	uimock "github.com/dyapi/dyctl/internal/ui/mock"
	"github.com/dyapi/dyctl/session"
	"go.uber.org/mock/gomock"
)

// runSpinner makes the mock run every operation handed to RunWithSpinner.
func runSpinner(mockUI *uimock.MockProvider) *gomock.Call {
	return mockUI.EXPECT().RunWithSpinner(gomock.Any(), gomock.Any()).DoAndReturn(func(_ string, op func() error) error {
		return op()
	})
}

// factoryFor returns a ServiceFactory handing out svc.
func factoryFor(svc api.Service) dyctl.ServiceFactory {
	return func(_ http.HTTPDoer, _ session.Store) (api.Service, error) {
		return svc, nil
	}
}
