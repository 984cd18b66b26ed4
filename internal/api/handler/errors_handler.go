package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medibook/appointment-portal/internal/core/state"
)

// ErrorsHandler dismisses error banners on resource slices.
type ErrorsHandler struct {
	store *state.Store
}

func NewErrorsHandler(store *state.Store) *ErrorsHandler {
	return &ErrorsHandler{store: store}
}

// Clear dismisses the error stored on the named slice.
//
// @Summary      Dismiss a slice error
// @Tags         state
// @Param        slice  path  string  true  "Slice name"
// @Success      204
// @Failure      404  {object}  errorBody
// @Router       /errors/{slice} [delete]
func (h *ErrorsHandler) Clear(c echo.Context) error {
	if err := h.store.ClearError(c.Param("slice")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
