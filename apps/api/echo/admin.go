package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Bshaarr/Morox-platform/core"
	"github.com/Bshaarr/Morox-platform/core/admin"
)

type adminApi struct {
	conf     *core.Config
	svc      *admin.Service
	validate *validator.Validate
}

func registerAdminAPI(g *echo.Group, conf *core.Config, svc *admin.Service, validate *validator.Validate) {
	api := adminApi{conf: conf, svc: svc, validate: validate}

	ag := g.Group("/admins")
	ag.POST("/login", api.login)
}

// Handlers

func (api *adminApi) login(ctx echo.Context) error {
	var data admin.Credentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	adm, err := api.svc.Authenticate(ctx.Request().Context(), data)
	if err != nil {
		if errors.Cause(err) == admin.ErrNotFound {
			return errAuthenticationFailed
		}
		return errors.Wrap(err, "authenticating")
	}

	token, err := GenerateToken(api.conf, GetAdminClaims(api.conf, adm))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

type LoginResponse struct {
	Token string `json:"token"`
}
