package service

import (
	"context"

	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/widget"
)

// WidgetService exposes a shared widget to API clients.
type WidgetService struct {
	w *widget.Widget
}

// NewWidgetService creates a new WidgetService.
func NewWidgetService(w *widget.Widget) *WidgetService {
	return &WidgetService{w: w}
}

// State returns the current widget state.
func (s *WidgetService) State() model.WidgetState {
	return stateToResponse(s.w.State())
}

// Update applies a partial configuration change. Lengths are clamped to the
// slider range rather than rejected.
func (s *WidgetService) Update(req model.WidgetPatchRequest) (model.WidgetState, error) {
	st, err := s.w.Update(widget.Patch{
		Length:         req.Length,
		IncludeDigits:  req.Numbers,
		IncludeSymbols: req.Symbols,
	})
	if err != nil {
		return model.WidgetState{}, err
	}
	return stateToResponse(st), nil
}

// Regenerate draws a new password with the current configuration.
func (s *WidgetService) Regenerate() (model.WidgetState, error) {
	st, err := s.w.Regenerate()
	if err != nil {
		return model.WidgetState{}, err
	}
	return stateToResponse(st), nil
}

// Copy copies the current password to the host clipboard.
func (s *WidgetService) Copy(ctx context.Context) model.CopyResponse {
	res := s.w.Copy(ctx)

	resp := model.CopyResponse{
		Outcome: res.Outcome.String(),
		Message: res.Message(),
	}
	if res.Err != nil {
		resp.Error = res.Err.Error()
	}
	return resp
}

func stateToResponse(st widget.State) model.WidgetState {
	return model.WidgetState{
		Password: st.Password,
		Length:   st.Config.Length,
		Numbers:  st.Config.IncludeDigits,
		Symbols:  st.Config.IncludeSymbols,
		Strength: st.Strength,
	}
}
