// Copyright (c) 2026 Librarium. All rights reserved.
// Author: thirawat.bk@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts the router's parameter extraction and common body decoding
patterns so handlers share consistent error handling.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/thirawat/librarium/internal/platform/apperr"
	"github.com/thirawat/librarium/internal/platform/validate"
	"github.com/thirawat/librarium/pkg/convert"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntParam retrieves a named URL parameter and parses it as a positive integer id.

Returns:
  - int: The parsed id
  - error: apperr.ValidationError when the parameter is not a positive integer
*/
func IntParam(request *http.Request, name string) (int, error) {
	id := convert.ToInt(chi.URLParam(request, name))
	if id < 1 {
		return 0, apperr.ValidationError("Invalid " + name + " parameter")
	}
	return id, nil
}
