package controllers

import (
	"errors"
	"net/http"

	"github.com/lintang-b-s/geo-aggregator/pkg"

	"go.uber.org/zap"
)

// errorResponse model info
//
//	@Description	error response body.
type errorResponse struct {
	Status string `json:"status" example:"error"`
	Error  struct {
		Code    string `json:"code" example:"bad_request"`
		Message string `json:"message" example:"radius must be a finite number greater than 0, got -1"`
	} `json:"error"`
}

func (api *aggregateAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	env := envelope{
		"status": "error",
		"error": envelope{
			"code":    code,
			"message": message,
		},
	}

	if err := api.writeJSON(w, status, env, nil); err != nil {
		api.log.Error("failed to write error response", zap.String("path", r.URL.Path), zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *aggregateAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, "bad_request", err.Error())
}

func (api *aggregateAPI) NotFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusNotFound, "not_found", err.Error())
}

func (api *aggregateAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.log.Error("internal server error", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
	api.errorResponse(w, r, http.StatusInternalServerError, "internal_server_error", pkg.MessageInternalServerError)
}

// serviceErrorResponse writes the response that matches the code of a pkg.Error, anything else is a 500.
func (api *aggregateAPI) serviceErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var pkgErr *pkg.Error
	if !errors.As(err, &pkgErr) {
		api.ServerErrorResponse(w, r, err)
		return
	}

	switch pkgErr.Code() {
	case pkg.ErrBadParamInput:
		api.BadRequestResponse(w, r, errors.New(pkgErr.Message()))
	case pkg.ErrNotFound:
		api.NotFoundResponse(w, r, errors.New(pkgErr.Message()))
	default:
		api.ServerErrorResponse(w, r, err)
	}
}
