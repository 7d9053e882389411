package service

import (
	"github.com/brsv-srg/qodefly-dashboard/internal/adapter"
	"github.com/brsv-srg/qodefly-dashboard/internal/logger"
	"github.com/brsv-srg/qodefly-dashboard/internal/validators"
	"github.com/brsv-srg/qodefly-dashboard/models"
)

type Services struct {
	AccountService AccountService
	ProjectService ProjectService
	AppInfoService AppInfoService
}

func NewServices(api adapter.APIClient, info models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	if api == nil {
		return nil, ErrNilAPIClient
	}

	return &Services{
		AccountService: NewAccountService(api, validators.NewCredentialsValidator(), logger),
		ProjectService: NewProjectService(),
		AppInfoService: NewAppInfoService(info),
	}, nil
}
