package controller

import (
	"context"
	"net/http"

	localCache "stockdock/cache"
	"stockdock/config"
	"stockdock/model"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ConfigController struct {
	runtime *config.ConfigManager
	symbols *model.SymbolConfig
	adminMw func(huma.Context, func(huma.Context))
}

func NewConfigController(runtime *config.ConfigManager, symbols *model.SymbolConfig, adminMw func(huma.Context, func(huma.Context))) *ConfigController {
	return &ConfigController{
		runtime: runtime,
		symbols: symbols,
		adminMw: adminMw,
	}
}

func (ctrl *ConfigController) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-predefined-symbols",
		Method:      http.MethodGet,
		Path:        "/api/config/symbols",
		Summary:     "Get Predefined Symbols",
		Tags:        []string{"Config"},
	}, ctrl.getSymbols)

	huma.Register(api, huma.Operation{
		OperationID: "get-runtime-config",
		Method:      http.MethodGet,
		Path:        "/api/config/runtime",
		Summary:     "Get Active Runtime Configuration",
		Tags:        []string{"Config"},
	}, ctrl.getRuntimeConfig)

	huma.Register(api, huma.Operation{
		OperationID: "update-runtime-config",
		Method:      http.MethodPatch,
		Path:        "/api/config/runtime",
		Summary:     "Update Runtime Configuration",
		Middlewares: huma.Middlewares{ctrl.adminMw},
		Security:    []map[string][]string{{"bearer": {}}},
		Tags:        []string{"Config (Admin)"},
	}, ctrl.updateRuntimeConfig)
}

func (ctrl *ConfigController) getSymbols(ctx context.Context, input *struct{}) (*model.SymbolsOutput, error) {
	return &model.SymbolsOutput{Body: *ctrl.symbols}, nil
}

func (ctrl *ConfigController) getRuntimeConfig(ctx context.Context, input *struct{}) (*model.RuntimeConfigResponse, error) {
	return &model.RuntimeConfigResponse{Body: *ctrl.runtime.GetConfig()}, nil
}

func (ctrl *ConfigController) updateRuntimeConfig(ctx context.Context, input *model.Request) (*model.DefaultResponse, error) {
	if len(input.Body) == 0 {
		return nil, huma.Error400BadRequest("Invalid Request")
	}

	next, err := ctrl.runtime.Patch(input.Body)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	ApplyLogLevel(next)
	localCache.ChartResponseCache.Flush()

	log.Info().Interface("config", next).Msg("runtime config updated")
	return NewResponse(next, "Runtime config updated successfully"), nil
}

// ApplyLogLevel switches the global zerolog level to match the debug flag.
func ApplyLogLevel(cfg *model.RuntimeConfig) {
	if cfg.DebugMode {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}
